package gdate

import "errors"

// Errors returned while parsing and resolving an invocation. Callers wrap
// them with the offending input and match with errors.Is.
var (
	ErrMissingFlagValue      = errors.New("missing flag value")
	ErrUnexpectedArgument    = errors.New("unexpected argument")
	ErrUnsupportedDateSpec   = errors.New("unsupported date spec")
	ErrUnsupportedDateFormat = errors.New("unsupported date format")
)
