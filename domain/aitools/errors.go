package aitools

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyInput is returned when the parsed survey has no rows at all.
	ErrEmptyInput = errors.New("survey appears to be empty")
	// ErrMissingColumns is matched by *MissingColumnsError.
	ErrMissingColumns = errors.New("missing required columns")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

// MissingColumnsError names the required concepts no header matched.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return "missing required columns (" + strings.Join(e.Missing, ", ") +
		"). Include tools used, usage frequency, and time saved per week headers."
}

func (e *MissingColumnsError) Is(target error) bool { return target == ErrMissingColumns }
