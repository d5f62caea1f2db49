package gdate

import (
	"fmt"
	"time"
)

// DateSpec selects which instant gets formatted.
type DateSpec string

// Supported date specifications.
const (
	Today     DateSpec = "today"
	Yesterday DateSpec = "yesterday"
)

// DefaultSpec is used when no -d flag is given.
const DefaultSpec = Today

// ParseDateSpec matches value exactly; no trimming or case folding.
func ParseDateSpec(value string) (DateSpec, error) {
	switch DateSpec(value) {
	case Today:
		return Today, nil
	case Yesterday:
		return Yesterday, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedDateSpec, value)
	}
}

// Resolve derives the instant for s from a single clock sample.
// Yesterday is now minus 24 hours, not midnight of the previous calendar day.
func (s DateSpec) Resolve(now time.Time) time.Time {
	if s == Yesterday {
		return now.Add(-24 * time.Hour)
	}
	return now
}
