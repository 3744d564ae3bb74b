package validators

import "strings"

type PaymentMethodInput struct {
	Name string `json:"name" validate:"required,method_name"`
}

func ValidatePaymentMethodInput(in *PaymentMethodInput) ValidationErrors {
	return ValidateStruct(in)
}

func (in *PaymentMethodInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
}
