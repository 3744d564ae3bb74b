package validators

import "strings"

type ReservationInput struct {
	ClientID    int64   `json:"client_id" validate:"min=1"`
	VehicleID   int64   `json:"vehicle_id" validate:"min=1"`
	StartDate   string  `json:"start_date" validate:"required,date_string"`
	EndDate     string  `json:"end_date" validate:"required,date_string"`
	Status      string  `json:"status" validate:"required,oneof=Confirmed Pending Completed Cancelled"`
	TotalAmount float64 `json:"total_amount" validate:"min=0"`
}

func ValidateReservationInput(in *ReservationInput) ValidationErrors {
	errors := ValidateStruct(in)

	// Period ordering gets its own message, distinct from a malformed date.
	if ValidDate(in.StartDate) && ValidDate(in.EndDate) && !ValidDateRange(in.StartDate, in.EndDate) {
		errors = append(errors, ValidationError{
			Field:   "EndDate",
			Tag:     "date_range",
			Message: "end date is earlier than start date",
		})
	}

	if !ValidAmount(in.TotalAmount, true) {
		errors = append(errors, ValidationError{
			Field:   "TotalAmount",
			Tag:     "amount",
			Message: "total amount must be a non-negative number",
		})
	}

	return errors
}

func (in *ReservationInput) Normalize() {
	in.Status = strings.TrimSpace(in.Status)
}
