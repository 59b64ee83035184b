package session

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrQuit is returned when the user asks to leave, or input ends.
var ErrQuit = errors.New("quit requested")

// ValidationError represents invalid user input
type ValidationError struct {
	Field   string
	Message string
	// Hint is an optional second line telling the user what to do instead
	Hint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ValidateDirName checks a new directory name against the display limit.
// A name of exactly max characters is accepted.
func ValidateDirName(name string, max int) error {
	if name == "" {
		return &ValidationError{Field: "directory", Message: "Directory name cannot be empty."}
	}
	if strings.Contains(name, "/") {
		return &ValidationError{Field: "directory", Message: "Directory name cannot contain '/'."}
	}
	if name == "." || name == ".." {
		return &ValidationError{Field: "directory", Message: fmt.Sprintf("'%s' is not a valid directory name.", name)}
	}
	if n := utf8.RuneCountInString(name); n > max {
		return &ValidationError{
			Field:   "directory",
			Message: fmt.Sprintf("'%s' is %d characters.", name, n),
			Hint:    fmt.Sprintf("Please use %d or fewer characters for proper directory listing.", max),
		}
	}
	return nil
}
