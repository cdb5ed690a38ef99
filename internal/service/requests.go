package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/swiftserve/registry/internal/models"
	"github.com/swiftserve/registry/internal/repository"
)

// Authorization errors surfaced to the user.
var (
	// ErrForbidden is returned when a non-admin attempts an admin action.
	ErrForbidden = errors.New("administrator access required")
	// ErrNotLoggedIn is returned when no session is active.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrNotFound is returned when no request with the given id exists.
	ErrNotFound = errors.New("request not found")
)

// ValidationError reports a per-field submission failure.
type ValidationError struct {
	// Field is the offending form field.
	Field string
	// Reason is the user-facing explanation.
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// ValidationPolicy selects how strictly a submission is validated.
type ValidationPolicy int

const (
	// PolicyBasic requires only certificate type, full name, and address.
	PolicyBasic ValidationPolicy = iota
	// PolicyStrict additionally requires birthdate, contact number, and
	// email, and checks their formats.
	PolicyStrict
)

// ParsePolicy maps a configuration string to a ValidationPolicy.
// Unknown values fall back to PolicyBasic.
func ParsePolicy(s string) ValidationPolicy {
	if strings.EqualFold(s, "strict") {
		return PolicyStrict
	}
	return PolicyBasic
}

// Strict-policy format rules: local mobile numbers are exactly 11 digits
// and email addresses must use the fixed provider domain.
var contactNumRx = regexp.MustCompile(`^[0-9]{11}$`)

const emailDomainSuffix = "@gmail.com"

// SubmitInput carries the request-form fields.
type SubmitInput struct {
	CertType   string `json:"certType"`
	FullName   string `json:"fullName"`
	Address    string `json:"address"`
	Birthdate  string `json:"birthdate"`
	ContactNum string `json:"contactNum"`
	Email      string `json:"email"`
}

// RequestRepository defines the ledger persistence operations required by
// the request service.
type RequestRepository interface {
	// All returns the full ledger in insertion order.
	All(ctx context.Context) ([]models.CertificateRequest, error)
	// Append adds a request to the end of the ledger.
	Append(ctx context.Context, req models.CertificateRequest) error
	// Find returns the request with the given id.
	Find(ctx context.Context, id string) (models.CertificateRequest, error)
	// SetStatus updates the status of the request with the given id.
	SetStatus(ctx context.Context, id string, status models.RequestStatus) error
	// Remove deletes the request with the given id.
	Remove(ctx context.Context, id string) error
}

// RequestService implements submission, listing, and admin mutation of
// certificate requests, enforcing the ownership-based authorization policy.
type RequestService struct {
	repo   RequestRepository
	policy ValidationPolicy

	// now and newID are injectable for tests.
	now   func() time.Time
	newID func() string
}

// NewRequestService constructs a RequestService over repo with the given
// validation policy.
func NewRequestService(repo RequestRepository, policy ValidationPolicy) *RequestService {
	return &RequestService{
		repo:   repo,
		policy: policy,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// validate applies the configured policy to the form input.
func (s *RequestService) validate(in SubmitInput) error {
	if in.CertType == "" {
		return &ValidationError{Field: "certType", Reason: "required"}
	}
	if !models.ValidCertType(in.CertType) {
		return &ValidationError{Field: "certType", Reason: "unknown certificate type"}
	}
	if in.FullName == "" {
		return &ValidationError{Field: "fullName", Reason: "required"}
	}
	if in.Address == "" {
		return &ValidationError{Field: "address", Reason: "required"}
	}
	if s.policy != PolicyStrict {
		return nil
	}
	if in.Birthdate == "" {
		return &ValidationError{Field: "birthdate", Reason: "required"}
	}
	if !contactNumRx.MatchString(in.ContactNum) {
		return &ValidationError{Field: "contactNum", Reason: "must be exactly 11 digits"}
	}
	if !strings.HasSuffix(in.Email, emailDomainSuffix) {
		return &ValidationError{Field: "email", Reason: "must end with " + emailDomainSuffix}
	}
	return nil
}

// Submit validates the form, builds a Pending request owned by the session
// user, and appends it to the ledger.
func (s *RequestService) Submit(ctx context.Context, in SubmitInput, session models.SessionFlags) (models.CertificateRequest, error) {
	if !session.LoggedIn || session.CurrentUser == "" {
		return models.CertificateRequest{}, ErrNotLoggedIn
	}
	if err := s.validate(in); err != nil {
		return models.CertificateRequest{}, err
	}

	req := models.CertificateRequest{
		ID:          s.newID(),
		CertType:    in.CertType,
		FullName:    in.FullName,
		Address:     in.Address,
		Birthdate:   in.Birthdate,
		ContactNum:  in.ContactNum,
		Email:       in.Email,
		Status:      models.StatusPending,
		SubmittedAt: s.now().UTC().Format(time.RFC3339),
		SubmittedBy: session.CurrentUser,
	}
	if err := s.repo.Append(ctx, req); err != nil {
		return models.CertificateRequest{}, fmt.Errorf("append request: %w", err)
	}
	return req, nil
}

// List returns the requests visible to the session: the whole ledger for an
// administrator, otherwise only the session user's own records, in ledger
// order.
func (s *RequestService) List(ctx context.Context, session models.SessionFlags) ([]models.CertificateRequest, error) {
	if !session.LoggedIn {
		return nil, ErrNotLoggedIn
	}
	ledger, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	if session.IsAdmin {
		return ledger, nil
	}
	own := make([]models.CertificateRequest, 0, len(ledger))
	for _, req := range ledger {
		if req.SubmittedBy == session.CurrentUser {
			own = append(own, req)
		}
	}
	return own, nil
}

// UpdateStatus moves the request with the given id to status. Admin only;
// requests only advance along Pending → Ready to Receive → Done.
func (s *RequestService) UpdateStatus(ctx context.Context, id string, status models.RequestStatus, session models.SessionFlags) error {
	if !session.IsAdmin {
		return ErrForbidden
	}
	if !status.Valid() {
		return &ValidationError{Field: "status", Reason: "unknown status"}
	}
	current, err := s.repo.Find(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("find request: %w", err)
	}
	if !current.Status.CanTransitionTo(status) {
		return &ValidationError{
			Field:  "status",
			Reason: fmt.Sprintf("cannot move from %q to %q", current.Status, status),
		}
	}
	if err := s.repo.SetStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("update status: %w", err)
	}
	return nil
}

// Remove deletes the request with the given id from the ledger. Admin only.
func (s *RequestService) Remove(ctx context.Context, id string, session models.SessionFlags) error {
	if !session.IsAdmin {
		return ErrForbidden
	}
	if err := s.repo.Remove(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("remove request: %w", err)
	}
	return nil
}
