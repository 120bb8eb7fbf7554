package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess       = 0 // Experiment completed, all schemes valid
	ExitInvalidScheme = 1 // Experiment completed with invalid schemes
	ExitError         = 2 // Configuration or runtime error
)

// InvalidSchemeError indicates that the experiment ran to completion,
// but one or more generated schemes failed validation.
type InvalidSchemeError struct {
	Message string
}

func (e *InvalidSchemeError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		// Check error type to determine exit code
		var invalidErr *InvalidSchemeError
		if errors.As(err, &invalidErr) {
			os.Exit(ExitInvalidScheme)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
