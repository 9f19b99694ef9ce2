// internal/utils/errors.go

package utils

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

/*
   Sentinel errors used by the service layer to provide
   fine-grained failure reasons.
   The controller can do: if errors.Is(err, ErrXYZ) { ... }
*/
var (
	ErrNotFound = errors.New("not_found")
)

// FieldIssue is one field-level validation problem, addressed by the
// field's wire name.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

/*
   ValidationError is returned when create input is structurally valid
   JSON but fails field rules. It carries the per-field issues so the
   controller can return them to the client.
*/
type ValidationError struct {
	Issues []FieldIssue
}

func (e *ValidationError) Error() string {
	return "validation_failed"
}

// NewValidationError converts the validator library's error into a
// ValidationError with one issue per failing field.
func NewValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Struct-level misuse (nil pointer etc.), not field failures.
		return err
	}

	issues := make([]FieldIssue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, FieldIssue{
			Field:   fe.Field(),
			Message: issueMessage(fe),
		})
	}
	return &ValidationError{Issues: issues}
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
