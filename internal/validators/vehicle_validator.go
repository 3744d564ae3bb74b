package validators

import "strings"

type VehicleInput struct {
	Brand          string  `json:"brand" validate:"required"`
	Model          string  `json:"model" validate:"required"`
	Plate          string  `json:"plate" validate:"required"`
	Year           int     `json:"year" validate:"min=1900"`
	Odometer       int     `json:"odometer" validate:"min=0"`
	LastService    string  `json:"last_service" validate:"required,date_string"`
	NextService    string  `json:"next_service" validate:"required,date_string"`
	Category       string  `json:"category" validate:"required"`
	Transmission   string  `json:"transmission" validate:"required"`
	Type           string  `json:"type" validate:"required"`
	Seats          int     `json:"seats" validate:"min=1"`
	Image          string  `json:"image" validate:"required"`
	DailyRate      float64 `json:"daily_rate" validate:"min=0"`
	LastInspection string  `json:"last_inspection" validate:"required,date_string"`
	NextInspection string  `json:"next_inspection" validate:"required,date_string"`
	Status         string  `json:"status" validate:"omitempty,oneof=available rented maintenance"`
}

func ValidateVehicleInput(in *VehicleInput) ValidationErrors {
	errors := ValidateStruct(in)

	// min=0 lets +Inf through; the rate must be a real number.
	if !ValidAmount(in.DailyRate, true) {
		errors = append(errors, ValidationError{
			Field:   "DailyRate",
			Tag:     "amount",
			Message: "daily rate must be a non-negative number",
		})
	}

	return errors
}

func (in *VehicleInput) Normalize() {
	in.Brand = strings.TrimSpace(in.Brand)
	in.Model = strings.TrimSpace(in.Model)
	in.Plate = strings.TrimSpace(in.Plate)
	in.Category = strings.TrimSpace(in.Category)
	in.Transmission = strings.TrimSpace(in.Transmission)
	in.Type = strings.TrimSpace(in.Type)
	in.Image = strings.TrimSpace(in.Image)
}
