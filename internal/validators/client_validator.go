package validators

import "strings"

// ClientInput carries the writable client fields. Field order matters: the
// first failing field's message is the one surfaced to the caller, and the
// contract is name, email, phone, tax id.
type ClientInput struct {
	Name  string `json:"name" validate:"required,person_name"`
	Email string `json:"email" validate:"required,email_format"`
	Phone string `json:"phone" validate:"required,phone_number"`
	TaxID string `json:"tax_id" validate:"required,tax_id"`
}

func ValidateClientInput(in *ClientInput) ValidationErrors {
	return ValidateStruct(in)
}

// Normalize trims the fields the way they are persisted.
func (in *ClientInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.TaxID = strings.TrimSpace(in.TaxID)
}
