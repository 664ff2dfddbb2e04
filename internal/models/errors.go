package models

import "fmt"

// ValidationError reports a record field violating an invariant.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports a missing record, template file, or templates
// directory.
type NotFoundError struct {
	Kind string // "prompt" | "template" | "templates directory"
	Name string
}

func (e *NotFoundError) Error() string {
	switch e.Kind {
	case "prompt":
		return fmt.Sprintf("Prompt with ID %s not found", e.Name)
	case "template":
		return fmt.Sprintf("Template file %s not found", e.Name)
	case "templates directory":
		return fmt.Sprintf("Templates directory not found: %s", e.Name)
	default:
		return fmt.Sprintf("%s not found: %s", e.Kind, e.Name)
	}
}

// FormatError reports a stored record file that exists but cannot be
// parsed into a valid record.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid record file %s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
