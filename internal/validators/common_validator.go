package validators

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validation functions
	validate.RegisterValidation("person_name", validatePersonName)
	validate.RegisterValidation("email_format", validateEmailFormat)
	validate.RegisterValidation("tax_id", validateTaxID)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("date_string", validateDateString)
	validate.RegisterValidation("method_name", validateMethodName)
}

// Validation patterns. The accented range covers Latin-1 letters so names
// like "João" and "Inês" pass.
var (
	personNameRegex = regexp.MustCompile(`^[A-Za-zÀ-ÿ\s]{3,}$`)
	emailRegex      = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)
	taxIDRegex      = regexp.MustCompile(`^[0-9]{9}$`)
	phoneRegex      = regexp.MustCompile(`^[0-9\s+\-()]{6,20}$`)
	methodNameRegex = regexp.MustCompile(`^[A-Za-zÀ-ÿ0-9 ]+$`)
)

// DateFormat is the calendar-date layout used across the API, the store and
// the CSV exports.
const DateFormat = "2006-01-02"

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag,omitempty"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// Details flattens the errors into a field → message map for API responses.
// The first failure per field wins, matching the first-failure-message
// contract of the services.
func (v ValidationErrors) Details() map[string]string {
	details := make(map[string]string, len(v))
	for _, err := range v {
		if _, ok := details[err.Field]; !ok {
			details[err.Field] = err.Message
		}
	}
	return details
}

// ValidateStruct validates a struct and returns detailed errors
func ValidateStruct(s interface{}) ValidationErrors {
	var validationErrors ValidationErrors

	err := validate.Struct(s)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, ValidationError{
				Field:   err.Field(),
				Tag:     err.Tag(),
				Message: getErrorMessage(err),
			})
		}
	}

	return validationErrors
}

// ValidateIdentifier gates the id arguments of update/delete operations.
// Returns nil when the identifier is a positive integer.
func ValidateIdentifier(field string, id int64) ValidationErrors {
	if id > 0 {
		return nil
	}
	return ValidationErrors{{
		Field:   field,
		Tag:     "identifier",
		Message: "must be a positive integer",
	}}
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", err.Field())
	case "person_name":
		return "use letters and spaces only, minimum 3 characters"
	case "email_format":
		return "invalid email address"
	case "tax_id":
		return "tax id must be exactly 9 digits"
	case "phone_number":
		return "invalid phone number: use digits and + - ( ), 6 to 20 characters"
	case "date_string":
		return "invalid date, expected format YYYY-MM-DD"
	case "method_name":
		return "use letters, digits and spaces, 3 to 50 characters"
	case "min":
		if err.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", err.Field(), err.Param())
		}
		return fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", err.Field(), err.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
	default:
		return fmt.Sprintf("validation failed for %s", err.Field())
	}
}

// Pure field predicates. These back the custom registrations above and are
// reusable wherever a single value needs checking without a request struct.

func ValidPersonName(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && personNameRegex.MatchString(s)
}

func ValidEmail(s string) bool {
	return emailRegex.MatchString(strings.TrimSpace(s))
}

func ValidTaxID(s string) bool {
	return taxIDRegex.MatchString(strings.TrimSpace(s))
}

func ValidPhone(s string) bool {
	return phoneRegex.MatchString(strings.TrimSpace(s))
}

func ValidDate(s string) bool {
	_, err := time.Parse(DateFormat, s)
	return err == nil
}

func ValidMethodName(s string) bool {
	s = strings.TrimSpace(s)
	// Character bounds, not byte bounds: accented names count one per rune.
	if n := utf8.RuneCountInString(s); n < 3 || n > 50 {
		return false
	}
	return methodNameRegex.MatchString(s)
}

// ValidAmount reports whether v is a finite money amount. With allowZero it
// accepts non-negative values, otherwise only strictly positive ones.
func ValidAmount(v float64, allowZero bool) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	if allowZero {
		return v >= 0
	}
	return v > 0
}

// ValidIdentifiers reports whether every id is a positive integer.
func ValidIdentifiers(ids ...int64) bool {
	for _, id := range ids {
		if id <= 0 {
			return false
		}
	}
	return true
}

// ValidDateRange reports whether both dates parse and end is not earlier
// than start.
func ValidDateRange(start, end string) bool {
	s, err := time.Parse(DateFormat, start)
	if err != nil {
		return false
	}
	e, err := time.Parse(DateFormat, end)
	if err != nil {
		return false
	}
	return !e.Before(s)
}

// Custom validation functions

func validatePersonName(fl validator.FieldLevel) bool {
	return ValidPersonName(fl.Field().String())
}

func validateEmailFormat(fl validator.FieldLevel) bool {
	return ValidEmail(fl.Field().String())
}

func validateTaxID(fl validator.FieldLevel) bool {
	return ValidTaxID(fl.Field().String())
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return ValidPhone(fl.Field().String())
}

func validateDateString(fl validator.FieldLevel) bool {
	return ValidDate(fl.Field().String())
}

func validateMethodName(fl validator.FieldLevel) bool {
	return ValidMethodName(fl.Field().String())
}
