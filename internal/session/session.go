package session

import (
	"fmt"
	"strings"
	"sync"

	"everafter/internal/domain"
	"everafter/internal/signature"
)

// Session is one customer's booking context.
type Session struct {
	mu    sync.Mutex
	forms map[domain.PackageID]domain.BookingForm

	// Pad is the session's signature surface. It is shared by every package
	// form, matching the single signature box in the contract dialog.
	Pad *signature.Surface
}

// New returns an empty session whose signature surface has the given geometry.
func New(width, height int, scale float64) *Session {
	return &Session{
		forms: make(map[domain.PackageID]domain.BookingForm),
		Pad:   signature.New(width, height, scale),
	}
}

// SetField updates one field of the form for id, creating the form on first use.
func (s *Session) SetField(id domain.PackageID, field domain.Field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.forms[id]
	switch field {
	case domain.FieldFullName:
		f.FullName = value
	case domain.FieldEmail:
		f.Email = value
	case domain.FieldWeddingDate:
		f.WeddingDate = value
	default:
		return fmt.Errorf("session: unknown field %q", field)
	}
	s.forms[id] = f
	return nil
}

// Fill replaces the whole form for id.
func (s *Session) Fill(id domain.PackageID, f domain.BookingForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forms[id] = f
}

// Form returns the current form for id; the zero form if none was started.
func (s *Session) Form(id domain.PackageID) domain.BookingForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.forms[id]
}

// Validate checks that the form for id is complete and its email address is
// well formed. A missing field is reported by name.
func (s *Session) Validate(id domain.PackageID) (domain.BookingForm, error) {
	f := s.Form(id)
	missing := f.Missing()
	if len(missing) == 0 {
		return f, domain.CheckEmail(f.Email)
	}
	names := make([]string, len(missing))
	for i, m := range missing {
		names[i] = string(m)
	}
	return f, domain.Validation("Please fill in all required fields: " + strings.Join(names, ", ") + ".")
}

// Discard drops the form for id.
func (s *Session) Discard(id domain.PackageID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.forms, id)
}
