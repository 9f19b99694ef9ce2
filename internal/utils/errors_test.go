package utils

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Name  string `validate:"required"`
	Phone string `validate:"required"`
}

func TestNewValidationErrorCollectsIssues(t *testing.T) {
	v := validator.New()
	err := v.Struct(sampleInput{})
	require.Error(t, err)

	converted := NewValidationError(err)
	var verr *ValidationError
	require.ErrorAs(t, converted, &verr)
	require.Len(t, verr.Issues, 2)

	fields := []string{verr.Issues[0].Field, verr.Issues[1].Field}
	require.Contains(t, fields, "Name")
	require.Contains(t, fields, "Phone")
	for _, issue := range verr.Issues {
		require.Contains(t, issue.Message, "is required")
	}
}

func TestNewValidationErrorPassesThroughNonFieldErrors(t *testing.T) {
	plain := errors.New("boom")
	require.Equal(t, plain, NewValidationError(plain))
}
