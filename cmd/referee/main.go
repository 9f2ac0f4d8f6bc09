package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/3loulou/phone-purchase-referee/internal/referee"
)

// Exit codes for different outcomes
const (
	ExitSuccess      = 0 // A comparison was produced
	ExitNoQualifying = 1 // No phones qualified; suggestions were printed
	ExitError        = 2 // Configuration or input error
)

func main() {
	err := execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(exitCodeFor(err))
}

// exitCodeFor maps an execution error to the process exit code. The
// no-qualifying outcome is a business result, not a fault; it gets its
// own exit code so scripts can branch on it.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var noQualifying *referee.NoQualifyingError
	if errors.As(err, &noQualifying) {
		return ExitNoQualifying
	}
	return ExitError
}
