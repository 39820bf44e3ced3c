package calculator

import "errors"

var (
	ErrUnknownUnit    = errors.New("unknown area unit")
	ErrUnknownQuality = errors.New("unknown property quality")
)

const (
	msgLoanInputs     = "Please enter valid positive values for all fields."
	msgEvaluatorInput = "Please select a city and enter a valid area."

	msgScheduleTooLong = "Tenure too long for a schedule."
)

// ValidationError is a failed precondition on user input. Message is meant
// to be shown to the user as is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
