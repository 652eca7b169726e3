package format

import "github.com/pkg/errors"

var (
	// ErrInvalidInputType is returned by JSON when the input is neither JSON text
	// nor a structured value.
	ErrInvalidInputType = errors.New("invalid input type")

	// ErrDepthExceeded is returned when nesting goes past the indent table and the
	// formatter was built with ErrorOnOverflow.
	ErrDepthExceeded = errors.New("depth exceeded")

	// ErrUnknownLanguage is returned for a language the formatter does not handle.
	ErrUnknownLanguage = errors.New("unknown language")
)
