package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/swiftserve/registry/internal/models"
	"github.com/swiftserve/registry/internal/repository"
	"github.com/swiftserve/registry/internal/storage"
)

// TestFullScenario walks the whole flow against a real file store: signup,
// login, submission, and role-based visibility.
func TestFullScenario(t *testing.T) {
	store, err := storage.OpenFileStore(filepath.Join(t.TempDir(), "registry.json"))
	if err != nil {
		t.Fatalf("OpenFileStore failed: %v", err)
	}
	ctx := context.Background()

	sessions := repository.NewSessionRepository(store)
	users := repository.NewUserRepository(store)
	requests := repository.NewRequestRepository(store)

	auth := NewAuthService(sessions, users)
	svc := NewRequestService(requests, PolicyBasic)

	// signup adds exactly one directory entry
	if err := auth.Signup(ctx, "bob", "pw1", "pw1"); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
	dir, err := users.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(dir) != 1 || dir["bob"] != "pw1" {
		t.Fatalf("unexpected directory after signup: %v", dir)
	}

	// duplicate signup fails and leaves the directory unchanged
	if err := auth.Signup(ctx, "bob", "other", "other"); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("duplicate Signup error = %v; want ErrUsernameTaken", err)
	}
	dir, _ = users.All(ctx)
	if len(dir) != 1 || dir["bob"] != "pw1" {
		t.Fatalf("directory changed by failed signup: %v", dir)
	}

	// login as the registered user
	session, err := auth.Login(ctx, "bob", "pw1")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if session.CurrentUser != "bob" || session.IsAdmin {
		t.Fatalf("unexpected session: %+v", session)
	}

	// the persisted session matches
	persisted, err := sessions.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if persisted != session {
		t.Fatalf("persisted session %+v differs from returned %+v", persisted, session)
	}

	// submit one request
	req, err := svc.Submit(ctx, SubmitInput{
		CertType: models.CertBirth,
		FullName: "Bob",
		Address:  "Main St",
	}, session)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if req.Status != models.StatusPending || req.SubmittedBy != "bob" {
		t.Fatalf("unexpected request: %+v", req)
	}

	// bob sees his own request
	own, err := svc.List(ctx, session)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(own) != 1 || own[0].ID != req.ID {
		t.Fatalf("unexpected own list: %+v", own)
	}

	// the admin sees it too
	adminFlags, err := auth.Login(ctx, "Admin", "Admin")
	if err != nil {
		t.Fatalf("admin Login failed: %v", err)
	}
	all, err := svc.List(ctx, adminFlags)
	if err != nil {
		t.Fatalf("admin List failed: %v", err)
	}
	if len(all) != 1 || all[0].ID != req.ID {
		t.Fatalf("unexpected admin list: %+v", all)
	}

	// a non-admin cannot mutate the ledger
	if err := svc.UpdateStatus(ctx, req.ID, models.StatusDone, session); !errors.Is(err, ErrForbidden) {
		t.Fatalf("UpdateStatus error = %v; want ErrForbidden", err)
	}
	if err := svc.Remove(ctx, req.ID, session); !errors.Is(err, ErrForbidden) {
		t.Fatalf("Remove error = %v; want ErrForbidden", err)
	}

	// the admin advances and removes it
	if err := svc.UpdateStatus(ctx, req.ID, models.StatusReadyToReceive, adminFlags); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if err := svc.UpdateStatus(ctx, req.ID, models.StatusDone, adminFlags); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if err := svc.Remove(ctx, req.ID, adminFlags); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	all, _ = svc.List(ctx, adminFlags)
	if len(all) != 0 {
		t.Fatalf("ledger not empty after remove: %+v", all)
	}

	// logout clears the persisted session entirely
	if err := auth.Logout(ctx); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	persisted, err = sessions.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if persisted.LoggedIn || persisted.CurrentUser != "" || persisted.IsAdmin {
		t.Fatalf("session not cleared: %+v", persisted)
	}
}
