package service

import (
	"context"
	"errors"
	"testing"

	"github.com/swiftserve/registry/internal/models"
)

type mockSessionRepo struct {
	LoadFunc  func(ctx context.Context) (models.SessionFlags, error)
	SaveFunc  func(ctx context.Context, flags models.SessionFlags) error
	ClearFunc func(ctx context.Context) error
}

func (m *mockSessionRepo) Load(ctx context.Context) (models.SessionFlags, error) {
	return m.LoadFunc(ctx)
}
func (m *mockSessionRepo) Save(ctx context.Context, flags models.SessionFlags) error {
	return m.SaveFunc(ctx, flags)
}
func (m *mockSessionRepo) Clear(ctx context.Context) error {
	return m.ClearFunc(ctx)
}

type mockUserRepo struct {
	ExistsFunc   func(ctx context.Context, username string) (bool, error)
	PasswordFunc func(ctx context.Context, username string) (string, bool, error)
	PutFunc      func(ctx context.Context, username, password string) error
}

func (m *mockUserRepo) Exists(ctx context.Context, username string) (bool, error) {
	return m.ExistsFunc(ctx, username)
}
func (m *mockUserRepo) Password(ctx context.Context, username string) (string, bool, error) {
	return m.PasswordFunc(ctx, username)
}
func (m *mockUserRepo) Put(ctx context.Context, username, password string) error {
	return m.PutFunc(ctx, username, password)
}

func TestLogin_AdminBypass(t *testing.T) {
	var saved models.SessionFlags
	sessions := &mockSessionRepo{
		SaveFunc: func(ctx context.Context, flags models.SessionFlags) error {
			saved = flags
			return nil
		},
	}
	// the directory must not be consulted for the admin pair
	users := &mockUserRepo{
		PasswordFunc: func(ctx context.Context, username string) (string, bool, error) {
			t.Fatal("user directory consulted for admin login")
			return "", false, nil
		},
	}
	svc := NewAuthService(sessions, users)

	flags, err := svc.Login(context.Background(), "Admin", "Admin")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if !flags.LoggedIn || !flags.IsAdmin || flags.CurrentUser != "Admin" {
		t.Errorf("unexpected session: %+v", flags)
	}
	if saved != flags {
		t.Errorf("persisted session %+v differs from returned %+v", saved, flags)
	}
}

func TestLogin_RegisteredUser(t *testing.T) {
	sessions := &mockSessionRepo{
		SaveFunc: func(ctx context.Context, flags models.SessionFlags) error { return nil },
	}
	users := &mockUserRepo{
		PasswordFunc: func(ctx context.Context, username string) (string, bool, error) {
			if username != "bob" {
				t.Errorf("Password received username = %q; want %q", username, "bob")
			}
			return "pw1", true, nil
		},
	}
	svc := NewAuthService(sessions, users)

	flags, err := svc.Login(context.Background(), "bob", "pw1")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if !flags.LoggedIn || flags.IsAdmin || flags.CurrentUser != "bob" {
		t.Errorf("unexpected session: %+v", flags)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	sessions := &mockSessionRepo{
		SaveFunc: func(ctx context.Context, flags models.SessionFlags) error {
			t.Fatal("session saved on failed login")
			return nil
		},
	}
	users := &mockUserRepo{
		PasswordFunc: func(ctx context.Context, username string) (string, bool, error) {
			return "pw1", true, nil
		},
	}
	svc := NewAuthService(sessions, users)

	_, err := svc.Login(context.Background(), "bob", "pw2")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login error = %v; want ErrInvalidCredentials", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	sessions := &mockSessionRepo{}
	users := &mockUserRepo{
		PasswordFunc: func(ctx context.Context, username string) (string, bool, error) {
			return "", false, nil
		},
	}
	svc := NewAuthService(sessions, users)

	_, err := svc.Login(context.Background(), "ghost", "pw")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login error = %v; want ErrInvalidCredentials", err)
	}
}

func TestLogin_EmptyFields(t *testing.T) {
	svc := NewAuthService(&mockSessionRepo{}, &mockUserRepo{})

	if _, err := svc.Login(context.Background(), "", "pw"); !errors.Is(err, ErrFieldsMissing) {
		t.Errorf("Login error = %v; want ErrFieldsMissing", err)
	}
	if _, err := svc.Login(context.Background(), "bob", ""); !errors.Is(err, ErrFieldsMissing) {
		t.Errorf("Login error = %v; want ErrFieldsMissing", err)
	}
}

func TestSignup_Success(t *testing.T) {
	var putUser, putPass string
	users := &mockUserRepo{
		ExistsFunc: func(ctx context.Context, username string) (bool, error) { return false, nil },
		PutFunc: func(ctx context.Context, username, password string) error {
			putUser, putPass = username, password
			return nil
		},
	}
	svc := NewAuthService(&mockSessionRepo{}, users)

	if err := svc.Signup(context.Background(), "bob", "pw1", "pw1"); err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if putUser != "bob" || putPass != "pw1" {
		t.Errorf("Put received (%q, %q); want (\"bob\", \"pw1\")", putUser, putPass)
	}
}

func TestSignup_Failures(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		confirm  string
		taken    bool
		wantErr  error
	}{
		{"empty username", "", "pw", "pw", false, ErrFieldsMissing},
		{"empty password", "bob", "", "", false, ErrFieldsMissing},
		{"mismatched confirmation", "bob", "pw1", "pw2", false, ErrPasswordMismatch},
		{"taken username", "bob", "pw1", "pw1", true, ErrUsernameTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &mockUserRepo{
				ExistsFunc: func(ctx context.Context, username string) (bool, error) {
					return tt.taken, nil
				},
				PutFunc: func(ctx context.Context, username, password string) error {
					t.Fatal("Put called on failed signup")
					return nil
				},
			}
			svc := NewAuthService(&mockSessionRepo{}, users)

			err := svc.Signup(context.Background(), tt.username, tt.password, tt.confirm)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Signup error = %v; want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	cleared := false
	sessions := &mockSessionRepo{
		ClearFunc: func(ctx context.Context) error {
			cleared = true
			return nil
		},
	}
	svc := NewAuthService(sessions, &mockUserRepo{})

	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if !cleared {
		t.Error("expected session to be cleared")
	}
}

func TestChangePassword_Success(t *testing.T) {
	var putPass string
	users := &mockUserRepo{
		PasswordFunc: func(ctx context.Context, username string) (string, bool, error) {
			return "old", true, nil
		},
		PutFunc: func(ctx context.Context, username, password string) error {
			putPass = password
			return nil
		},
	}
	svc := NewAuthService(&mockSessionRepo{}, users)

	if err := svc.ChangePassword(context.Background(), "bob", "old", "new", "new"); err != nil {
		t.Fatalf("ChangePassword returned error: %v", err)
	}
	if putPass != "new" {
		t.Errorf("stored password = %q; want %q", putPass, "new")
	}
}

func TestChangePassword_CheckOrder(t *testing.T) {
	users := &mockUserRepo{
		PasswordFunc: func(ctx context.Context, username string) (string, bool, error) {
			return "stored", true, nil
		},
		PutFunc: func(ctx context.Context, username, password string) error {
			t.Fatal("Put called on failed change")
			return nil
		},
	}
	svc := NewAuthService(&mockSessionRepo{}, users)
	ctx := context.Background()

	tests := []struct {
		name                  string
		current, new, confirm string
		wantErr               error
	}{
		{"missing fields", "", "new", "new", ErrFieldsMissing},
		{"confirmation mismatch", "old", "new", "other", ErrPasswordMismatch},
		{"unchanged password", "same", "same", "same", ErrSamePassword},
		{"wrong current password", "wrong", "new", "new", ErrWrongCurrentPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.ChangePassword(ctx, "bob", tt.current, tt.new, tt.confirm)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ChangePassword error = %v; want %v", err, tt.wantErr)
			}
		})
	}
}
