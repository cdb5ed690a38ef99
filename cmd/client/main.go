// Package main implements the interactive shell client for the registry
// daemon, mirroring the mobile app's screens: login, signup, the request
// list, the submission form, settings, and the administrator panel.
package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/swiftserve/registry/internal/format"
	"github.com/swiftserve/registry/internal/models"
	"github.com/swiftserve/registry/internal/service"
)

var (
	version   string
	buildDate string
)

// call sends a JSON request to the daemon and returns the response status
// and body.
func call(client *http.Client, method, url string, payload any) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, err
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	return resp.StatusCode, data, err
}

// prompt reads one trimmed line from the scanner after printing label.
func prompt(scanner *bufio.Scanner, label string) string {
	fmt.Print(label)
	scanner.Scan()
	return strings.TrimSpace(scanner.Text())
}

// promptRequest walks the submission form fields.
func promptRequest(scanner *bufio.Scanner) service.SubmitInput {
	fmt.Println("Certificate types:")
	for _, t := range models.CertTypes {
		fmt.Printf("  %s — %s\n", t, models.CertTypeLabels[t])
	}
	return service.SubmitInput{
		CertType:   prompt(scanner, "Certificate type: "),
		FullName:   prompt(scanner, "Full name: "),
		Address:    prompt(scanner, "Address: "),
		Birthdate:  prompt(scanner, "Birthdate (YYYY-MM-DD, optional): "),
		ContactNum: prompt(scanner, "Contact number (optional): "),
		Email:      prompt(scanner, "Email (optional): "),
	}
}

// printRequests renders the list the way the home screen does.
func printRequests(data []byte) {
	var requests []models.CertificateRequest
	if err := json.Unmarshal(data, &requests); err != nil {
		fmt.Println(string(data))
		return
	}
	if len(requests) == 0 {
		fmt.Println("No certificate requests yet.")
		return
	}
	for _, r := range requests {
		fmt.Printf("ID: %s\nType: %s\nName: %s\nStatus: %s\nSubmitted: %s by %s\n---\n",
			r.ID, r.CertType, r.FullName, r.Status,
			format.DisplayTime(r.SubmittedAt), r.SubmittedBy)
	}
}

// printDump renders the admin storage snapshot with pretty-printed JSON
// blobs, matching the administrator panel.
func printDump(data []byte) {
	var dump map[string]string
	if err := json.Unmarshal(data, &dump); err != nil {
		fmt.Println(string(data))
		return
	}
	for _, key := range []string{"loggedIn", "currentUser", "isAdmin", "users", "requests"} {
		value, ok := dump[key]
		if !ok {
			continue
		}
		fmt.Printf("%s:\n%s\n", key, format.PrettyJSON(value))
	}
}

// repl runs the interactive shell loop.
func repl(client *http.Client, baseURL string) {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("registry> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "help":
			fmt.Println("Available commands: help, signup, login, whoami, list, request, ready <id>, done <id>, remove <id>, passwd, dump, logout, exit")
		case "signup":
			payload := map[string]string{
				"username":        prompt(scanner, "Username: "),
				"password":        prompt(scanner, "Password: "),
				"confirmPassword": prompt(scanner, "Confirm password: "),
			}
			status, body, err := call(client, http.MethodPost, baseURL+"/api/signup", payload)
			report(status, body, err, "Account created successfully. Please login.")
		case "login":
			payload := map[string]string{
				"username": prompt(scanner, "Username: "),
				"password": prompt(scanner, "Password: "),
			}
			status, body, err := call(client, http.MethodPost, baseURL+"/api/login", payload)
			report(status, body, err, "Logged in.")
		case "whoami":
			status, body, err := call(client, http.MethodGet, baseURL+"/api/session", nil)
			if err != nil || status != http.StatusOK {
				report(status, body, err, "")
				continue
			}
			var flags models.SessionFlags
			if err := json.Unmarshal(body, &flags); err != nil {
				fmt.Println(string(body))
				continue
			}
			role := "Active"
			if flags.IsAdmin {
				role = "Administrator"
			}
			fmt.Printf("User: %s\nRole: %s\n", flags.CurrentUser, role)
		case "list":
			status, body, err := call(client, http.MethodGet, baseURL+"/api/requests", nil)
			if err != nil || status != http.StatusOK {
				report(status, body, err, "")
				continue
			}
			printRequests(body)
		case "request":
			in := promptRequest(scanner)
			status, body, err := call(client, http.MethodPost, baseURL+"/api/requests", in)
			report(status, body, err, "Your request has been submitted.")
		case "ready", "done":
			if len(args) < 2 {
				fmt.Printf("Usage: %s <id>\n", args[0])
				continue
			}
			target := models.StatusReadyToReceive
			if args[0] == "done" {
				target = models.StatusDone
			}
			status, body, err := call(client, http.MethodPatch,
				baseURL+"/api/requests/"+args[1]+"/status",
				map[string]models.RequestStatus{"status": target})
			report(status, body, err, "Status updated.")
		case "remove":
			if len(args) < 2 {
				fmt.Println("Usage: remove <id>")
				continue
			}
			status, body, err := call(client, http.MethodDelete, baseURL+"/api/requests/"+args[1], nil)
			report(status, body, err, "Request removed.")
		case "passwd":
			payload := map[string]string{
				"currentPassword": prompt(scanner, "Current password: "),
				"newPassword":     prompt(scanner, "New password: "),
				"confirmPassword": prompt(scanner, "Confirm new password: "),
			}
			status, body, err := call(client, http.MethodPost, baseURL+"/api/password", payload)
			report(status, body, err, "Password changed successfully.")
		case "dump":
			status, body, err := call(client, http.MethodGet, baseURL+"/api/admin/storage", nil)
			if err != nil || status != http.StatusOK {
				report(status, body, err, "")
				continue
			}
			printDump(body)
		case "logout":
			status, body, err := call(client, http.MethodPost, baseURL+"/api/logout", nil)
			report(status, body, err, "Logged out.")
		case "exit":
			fmt.Println("Bye")
			return
		default:
			fmt.Println("Unknown command. Type 'help' for a list of commands.")
		}
	}
}

// report prints success for 2xx responses and the server's message
// otherwise.
func report(status int, body []byte, err error, success string) {
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if status >= 200 && status < 300 {
		if success != "" {
			fmt.Println(success)
		}
		return
	}
	fmt.Println("Error:", strings.TrimSpace(string(body)))
}

// main parses command-line flags and starts the shell.
func main() {
	var (
		baseURL string
		showVer bool
	)

	flag.StringVar(&baseURL, "url", "http://localhost:8080", "daemon base URL")
	flag.BoolVar(&showVer, "version", false, "show build version and date")
	flag.Parse()

	if showVer {
		fmt.Printf("SwiftServe Registry Client\nVersion: %s\nBuild Date: %s\n", version, buildDate)
		return
	}

	fmt.Println("SwiftServe Civil Registry. Type 'help' for commands.")
	repl(http.DefaultClient, strings.TrimRight(baseURL, "/"))
}
