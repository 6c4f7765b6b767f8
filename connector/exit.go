package connector

import (
	"errors"
	"fmt"
)

// exitError carries a process exit code through the cobra error path. silent
// suppresses the final stderr line for failures the run lifecycle already
// logged.
type exitError struct {
	code   int
	err    error
	silent bool
}

func (e *exitError) Error() string {
	if e == nil {
		return ""
	}
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("exit %d", e.code)
}

func (e *exitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// ExitCode maps a command error onto the connector exit-code contract.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 1
}

func silentError(err error) bool {
	var ee *exitError
	return errors.As(err, &ee) && ee.silent
}
