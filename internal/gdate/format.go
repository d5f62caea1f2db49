package gdate

import (
	"fmt"
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"
)

// FormatPattern is a "+"-prefixed format token as given on the command line.
type FormatPattern string

// DefaultFormat is the only pattern fakegdate understands.
const DefaultFormat FormatPattern = "+%d/%b/%Y"

var supportedFormats = map[FormatPattern]struct{}{
	DefaultFormat: {},
}

const digits = "0123456789"

var monthAbbrevs = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Layout renders instants with the invariant locale.
type Layout struct {
	pattern FormatPattern
	f       *strftime.Strftime
}

// CompileFormat validates p and returns its layout.
func CompileFormat(p FormatPattern) (*Layout, error) {
	if _, ok := supportedFormats[p]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDateFormat, p)
	}

	ss := strftime.NewSpecificationSet()
	for verb, a := range invariantAppenders() {
		if err := ss.Set(verb, a); err != nil {
			return nil, fmt.Errorf("set %%%c: %w", verb, err)
		}
	}

	f, err := strftime.New(strings.TrimPrefix(string(p), "+"), strftime.WithSpecificationSet(ss))
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", p, err)
	}
	return &Layout{pattern: p, f: f}, nil
}

// Pattern returns the pattern the layout was compiled from.
func (l *Layout) Pattern() FormatPattern {
	return l.pattern
}

// Format renders t in its own location.
func (l *Layout) Format(t time.Time) string {
	return l.f.FormatString(t)
}

func invariantAppenders() map[byte]strftime.Appender {
	return map[byte]strftime.Appender{
		'd': paddedNumber{width: 2, field: func(t time.Time) int { return t.Day() }},
		'Y': paddedNumber{width: 4, field: func(t time.Time) int { return t.Year() }},
		'b': monthAbbrev{},
	}
}

type monthAbbrev struct{}

func (monthAbbrev) Append(b []byte, t time.Time) []byte {
	return append(b, monthAbbrevs[t.Month()-1]...)
}

// paddedNumber writes an integer field with ASCII digits, zero-padded to
// width and without grouping separators.
type paddedNumber struct {
	width int
	field func(time.Time) int
}

func (p paddedNumber) Append(b []byte, t time.Time) []byte {
	return appendPadded(b, p.field(t), p.width)
}

func appendPadded(b []byte, n, width int) []byte {
	if n < 0 {
		b = append(b, '-')
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n >= 10 {
		i--
		buf[i] = digits[n%10]
		n /= 10
	}
	i--
	buf[i] = digits[n]
	for pad := width - (len(buf) - i); pad > 0; pad-- {
		b = append(b, '0')
	}
	return append(b, buf[i:]...)
}
