package bootstrap

import (
	"errors"

	"github.com/containers/ramalama-install/internal/install"
	"github.com/containers/ramalama-install/internal/platform"
)

// Exit codes contracted to callers and scripts.
const (
	ExitOK            = 0
	ExitFailure       = 1
	ExitBrewMissing   = 2
	ExitSudoMissing   = 3
	ExitUnsupportedOS = 4
	ExitNoBinDir      = 5
)

// ExitError carries a process exit code alongside the failure.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitError wraps err with the exit code its condition is contracted to.
func exitError(err error) error {
	var unsupported *platform.UnsupportedOSError
	switch {
	case errors.Is(err, platform.ErrBrewMissing):
		return &ExitError{Code: ExitBrewMissing, Err: err}
	case errors.Is(err, platform.ErrSudoMissing):
		return &ExitError{Code: ExitSudoMissing, Err: err}
	case errors.As(err, &unsupported):
		return &ExitError{Code: ExitUnsupportedOS, Err: err}
	case errors.Is(err, install.ErrNoBinDir):
		return &ExitError{Code: ExitNoBinDir, Err: err}
	default:
		return &ExitError{Code: ExitFailure, Err: err}
	}
}
