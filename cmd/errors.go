package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// UsageError is returned when the command is
// invoked with the wrong arguments.
type UsageError struct {
	Prog string
	Err  error
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("Usage: %s <file_path>", e.Prog)
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

func programName() string {
	if len(os.Args) == 0 {
		return "shortsum"
	}
	return os.Args[0]
}

// printError writes the user-facing message for err.
func printError(w io.Writer, err error) {
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		_, _ = fmt.Fprintln(w, usageErr.Error())
		return
	}
	_, _ = fmt.Fprintf(w, "Error: %s\n", err)
}
