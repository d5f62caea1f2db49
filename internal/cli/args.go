package cli

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"fakegdate/internal/gdate"
)

const dateFlag = "-d"

type request struct {
	spec   string
	format gdate.FormatPattern
}

// parseArgs walks args left to right. -d always takes the next token, and a
// later -d or "+" token replaces an earlier one. Formats are checked after
// parsing, so only the last one matters.
func parseArgs(args []string) (request, error) {
	req := request{
		spec:   string(gdate.DefaultSpec),
		format: gdate.DefaultFormat,
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == dateFlag:
			if i+1 >= len(args) {
				return request{}, fmt.Errorf("%w: %s", gdate.ErrMissingFlagValue, dateFlag)
			}
			i++
			req.spec = args[i]
		case strings.HasPrefix(arg, "+"):
			req.format = gdate.FormatPattern(arg)
		default:
			return request{}, fmt.Errorf("%w (%d): %s", gdate.ErrUnexpectedArgument, i, arg)
		}
	}
	return req, nil
}

func (a *App) printDate(args []string) error {
	a.Logger.Debug("fakegdate", zap.String("version", Version), zap.Strings("args", args))

	req, err := parseArgs(args)
	if err != nil {
		return err
	}
	spec, err := gdate.ParseDateSpec(req.spec)
	if err != nil {
		return err
	}
	layout, err := gdate.CompileFormat(req.format)
	if err != nil {
		return err
	}

	// Sample once; every spec derives from this instant.
	now := a.Clock.Now()
	when := spec.Resolve(now)
	a.Logger.Debug("resolved date",
		zap.String("spec", string(spec)),
		zap.String("format", string(layout.Pattern())),
		zap.Time("now", now),
		zap.Time("when", when),
	)

	return writeLine(a.Stdout, layout.Format(when))
}
