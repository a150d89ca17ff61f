package assist

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrGenerationFailed  = errors.New("generation failed")
	ErrMalformedResponse = errors.New("malformed response")

	ErrEmptyNaturalLanguageInput = fmt.Errorf("%w: natural language input is required", ErrInvalidInput)
	ErrEmptyTitle                = fmt.Errorf("%w: title is required", ErrInvalidInput)
	ErrInvalidCurrentDate        = fmt.Errorf("%w: currentDate must be YYYY-MM-DD", ErrInvalidInput)
)
