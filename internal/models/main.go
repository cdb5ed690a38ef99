// Package models defines the core data structures for sessions, the user
// directory, and certificate requests.
package models

// SessionFlags is the persisted record of the single active device session.
type SessionFlags struct {
	// LoggedIn reports whether a user is currently authenticated.
	LoggedIn bool `json:"loggedIn"`
	// CurrentUser is the username of the authenticated user; empty means none.
	CurrentUser string `json:"currentUser"`
	// IsAdmin marks the administrator role.
	IsAdmin bool `json:"isAdmin"`
}

// UserDirectory maps a username to its stored password.
// The administrator account is never part of the directory.
type UserDirectory map[string]string

// RequestStatus is the processing state of a certificate request.
type RequestStatus string

const (
	// StatusPending is the initial state of every submitted request.
	StatusPending RequestStatus = "Pending"
	// StatusReadyToReceive marks a request whose certificate can be picked up.
	StatusReadyToReceive RequestStatus = "Ready to Receive"
	// StatusDone marks a completed request.
	StatusDone RequestStatus = "Done"
)

// Valid reports whether s is one of the known request statuses.
func (s RequestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusReadyToReceive, StatusDone:
		return true
	}
	return false
}

// rank orders statuses along the processing flow.
func (s RequestStatus) rank() int {
	switch s {
	case StatusPending:
		return 0
	case StatusReadyToReceive:
		return 1
	case StatusDone:
		return 2
	}
	return -1
}

// CanTransitionTo reports whether moving from s to next is a forward step.
// Requests only ever advance: Pending may become Ready to Receive or Done,
// Ready to Receive may become Done, and Done is terminal.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	return next.rank() > s.rank()
}

// CertificateRequest is a single civil-registry certificate request.
// Field tags match the persisted JSON form of the requests ledger.
type CertificateRequest struct {
	// ID is the unique identifier assigned at creation.
	ID string `json:"id"`
	// CertType is one of the certificate type catalog values.
	CertType string `json:"certType"`
	// FullName is the name the certificate is requested for.
	FullName string `json:"fullName"`
	// Address is the requester's complete address.
	Address string `json:"address"`
	// Birthdate is a YYYY-MM-DD date string; optional under the basic policy.
	Birthdate string `json:"birthdate"`
	// ContactNum is the requester's phone number.
	ContactNum string `json:"contactNum"`
	// Email is the requester's email address.
	Email string `json:"email"`
	// Status is the processing state, starting at Pending.
	Status RequestStatus `json:"status"`
	// SubmittedAt is the RFC 3339 submission timestamp.
	SubmittedAt string `json:"submittedAt"`
	// SubmittedBy is the username of the submitter, used for ownership checks.
	SubmittedBy string `json:"submittedBy"`
}

// Certificate type catalog.
const (
	CertBirth     = "Birth Certificate"
	CertDeath     = "Death Certificate"
	CertMarriage  = "Marriage Certificate"
	CertCenomar   = "Cenomar"
	CertCenoDeath = "Ceno Death"
)

// CertTypes lists every requestable certificate type in display order.
var CertTypes = []string{
	CertBirth,
	CertDeath,
	CertMarriage,
	CertCenomar,
	CertCenoDeath,
}

// CertTypeLabels maps a certificate type to the long form shown by the UI.
var CertTypeLabels = map[string]string{
	CertBirth:     "Birth Certificate",
	CertDeath:     "Death Certificate",
	CertMarriage:  "Marriage Certificate",
	CertCenomar:   "Certificate of No Marriage Record (Cenomar)",
	CertCenoDeath: "Certificate of No Death Record (Ceno Death)",
}

// ValidCertType reports whether t is in the certificate type catalog.
func ValidCertType(t string) bool {
	_, ok := CertTypeLabels[t]
	return ok
}
