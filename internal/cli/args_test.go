package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fakegdate/internal/gdate"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected request
	}{
		{
			name:     "defaults",
			args:     nil,
			expected: request{spec: "today", format: gdate.DefaultFormat},
		},
		{
			name:     "spec and format",
			args:     []string{"-d", "yesterday", "+%d/%b/%Y"},
			expected: request{spec: "yesterday", format: gdate.DefaultFormat},
		},
		{
			name:     "format before spec",
			args:     []string{"+%d/%b/%Y", "-d", "yesterday"},
			expected: request{spec: "yesterday", format: gdate.DefaultFormat},
		},
		{
			name:     "last spec wins",
			args:     []string{"-d", "tomorrow", "-d", "today"},
			expected: request{spec: "today", format: gdate.DefaultFormat},
		},
		{
			name:     "last format wins",
			args:     []string{"+%d/%b/%Y", "+%F"},
			expected: request{spec: "today", format: "+%F"},
		},
		{
			name:     "-d consumes a plus token",
			args:     []string{"-d", "+%d/%b/%Y"},
			expected: request{spec: "+%d/%b/%Y", format: gdate.DefaultFormat},
		},
		{
			name:     "-d consumes another -d",
			args:     []string{"-d", "-d"},
			expected: request{spec: "-d", format: gdate.DefaultFormat},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := parseArgs(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, req)
		})
	}
}

func TestParseArgsErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		target  error
		message string
	}{
		{
			name:    "trailing -d",
			args:    []string{"-d"},
			target:  gdate.ErrMissingFlagValue,
			message: "missing flag value: -d",
		},
		{
			name:    "trailing -d after format",
			args:    []string{"+%d/%b/%Y", "-d"},
			target:  gdate.ErrMissingFlagValue,
			message: "missing flag value: -d",
		},
		{
			name:    "bare word",
			args:    []string{"today"},
			target:  gdate.ErrUnexpectedArgument,
			message: "unexpected argument (0): today",
		},
		{
			name:    "index counts consumed values",
			args:    []string{"-d", "today", "extra"},
			target:  gdate.ErrUnexpectedArgument,
			message: "unexpected argument (2): extra",
		},
		{
			name:    "long flag",
			args:    []string{"--date=yesterday"},
			target:  gdate.ErrUnexpectedArgument,
			message: "unexpected argument (0): --date=yesterday",
		},
		{
			name:    "rejected before a later -d is checked",
			args:    []string{"-x", "-d"},
			target:  gdate.ErrUnexpectedArgument,
			message: "unexpected argument (0): -x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseArgs(tt.args)
			require.ErrorIs(t, err, tt.target)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}
