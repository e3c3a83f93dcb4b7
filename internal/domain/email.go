package domain

import (
	"errors"
	"net/mail"
	"strings"
)

// ErrInvalidEmail marks an address the mail relay would refuse.
var ErrInvalidEmail = errors.New("invalid email address")

// CheckEmail accepts a single bare address such as "jane@example.com".
// Display-name forms and address lists are rejected.
func CheckEmail(addr string) error {
	addr = strings.TrimSpace(addr)
	a, err := mail.ParseAddress(addr)
	if err != nil || a.Address != addr {
		return Validationf(ErrInvalidEmail, "Please enter a valid email address.")
	}
	return nil
}
