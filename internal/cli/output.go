package cli

import (
	"fmt"
	"io"
)

func writeLine(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
