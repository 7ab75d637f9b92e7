package cmd

// Exit codes for lunarica CLI
const (
	// ExitSuccess indicates the console exited normally
	ExitSuccess = 0

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func configError(err error) error {
	return &exitError{code: ExitConfigError, err: err}
}
