package domain

import (
	"fmt"
	"strings"
)

// InputError describes one invalid input field.
type InputError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every InputError found in one pass.
type ValidationErrors []*InputError

func (ve ValidationErrors) Error() string {
	msgs := make([]string, 0, len(ve))
	for _, e := range ve {
		msgs = append(msgs, e.Error())
	}
	return "invalid inputs: " + strings.Join(msgs, "; ")
}

// Add appends a field error.
func (ve *ValidationErrors) Add(field, format string, args ...any) {
	*ve = append(*ve, &InputError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Err returns nil when no errors were collected.
func (ve ValidationErrors) Err() error {
	if len(ve) == 0 {
		return nil
	}
	return ve
}
