// Package analysis composes the category scorers into the general ATS
// analysis and the company-specific criteria evaluation.
package analysis

import "fmt"

// ConfigurationError represents invalid scoring configuration: weights that
// do not sum to a positive total, or a missing category with no general
// fallback. It is fatal for the call; no score is fabricated.
type ConfigurationError struct {
	Message string
	Cause   error
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// InputError represents a caller mistake at the core boundary, such as
// invoking the analyzer without extracted resume text.
type InputError struct {
	Message string
	Field   string
}

func (e *InputError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("input error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("input error: %s", e.Message)
}
