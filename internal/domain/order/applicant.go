package order

import "fmt"

// Applicant holds the admission-form fields as submitted. It is consumed
// once to build an Order and never stored.
type Applicant struct {
	Name   string
	Email  string
	Phone  string
	Amount float64
}

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate reports the first invalid field, if any. All four fields are
// required; amount must be strictly positive.
func (a *Applicant) Validate() error {
	if a.Name == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	if a.Email == "" {
		return &ValidationError{Field: "email", Reason: "required"}
	}
	if a.Phone == "" {
		return &ValidationError{Field: "phone", Reason: "required"}
	}
	if a.Amount <= 0 {
		return &ValidationError{Field: "amount", Reason: "must be positive"}
	}
	return nil
}
