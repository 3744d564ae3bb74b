package validators

type PaymentInput struct {
	ReservationID   int64   `json:"reservation_id" validate:"min=1"`
	PaymentMethodID int64   `json:"payment_method_id" validate:"min=1"`
	Amount          float64 `json:"amount" validate:"gt=0"`
	PaymentDate     string  `json:"payment_date" validate:"required,date_string"`
}

func ValidatePaymentInput(in *PaymentInput) ValidationErrors {
	errors := ValidateStruct(in)

	// gt=0 lets +Inf through; payments must be finite.
	if !ValidAmount(in.Amount, false) {
		found := false
		for _, e := range errors {
			if e.Field == "Amount" {
				found = true
				break
			}
		}
		if !found {
			errors = append(errors, ValidationError{
				Field:   "Amount",
				Tag:     "amount",
				Message: "amount must be a positive finite number",
			})
		}
	}

	return errors
}
