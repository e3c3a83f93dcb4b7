package types

import "strings"

// Field names one input of a BookingForm.
type Field string

const (
	FieldFullName    Field = "fullName"
	FieldEmail       Field = "email"
	FieldWeddingDate Field = "weddingDate"
)

// BookingForm is the per-package record a customer fills in before signing.
type BookingForm struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	WeddingDate string `json:"weddingDate"`
}

// Missing lists the fields that are empty after trimming whitespace.
func (f BookingForm) Missing() []Field {
	var out []Field
	if strings.TrimSpace(f.FullName) == "" {
		out = append(out, FieldFullName)
	}
	if strings.TrimSpace(f.Email) == "" {
		out = append(out, FieldEmail)
	}
	if strings.TrimSpace(f.WeddingDate) == "" {
		out = append(out, FieldWeddingDate)
	}
	return out
}

// Complete reports whether every field is filled in.
func (f BookingForm) Complete() bool { return len(f.Missing()) == 0 }
