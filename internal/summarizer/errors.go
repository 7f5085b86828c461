package summarizer

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when the text is empty or whitespace only.
	ErrEmptyInput = errors.New("please provide text to summarize")
	// ErrInsufficientLength matches any *InsufficientLengthError via errors.Is.
	ErrInsufficientLength = errors.New("text too short to summarize")
	// ErrUnprocessableInput is returned when no sentence could be found.
	ErrUnprocessableInput = errors.New("unable to process text, please check the input")
)

// InsufficientLengthError reports an input below the minimum word count.
type InsufficientLengthError struct {
	Min    int
	Actual int
}

func (e *InsufficientLengthError) Error() string {
	return fmt.Sprintf("text must be at least %d words, current: %d words", e.Min, e.Actual)
}

func (e *InsufficientLengthError) Is(target error) bool {
	return target == ErrInsufficientLength
}
