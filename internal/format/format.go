// Package format holds pure display helpers consumed by the UI layer and
// the CLI. Parse failures fall back to returning the input unchanged.
package format

import (
	"bytes"
	"encoding/json"
	"time"
)

// displayLayout approximates the locale string the mobile screens render.
const displayLayout = "Jan 2, 2006 3:04 PM"

// DisplayTime converts an RFC 3339 timestamp into its display form.
// A string that does not parse is returned as-is.
func DisplayTime(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.Local().Format(displayLayout)
}

// PrettyJSON re-encodes a stored JSON blob with indentation for
// inspection. Invalid JSON is returned as-is; an empty string renders as
// "Empty", matching the original admin panel.
func PrettyJSON(raw string) string {
	if raw == "" {
		return "Empty"
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(raw), "", "  "); err != nil {
		return raw
	}
	return buf.String()
}
