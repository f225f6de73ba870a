package cli

import (
	"github.com/matzehuels/footgen/pkg/errors"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	// ExitInvalid reports input that can never succeed: bad flags, config
	// or table entries. Retrying the same command will fail the same way.
	ExitInvalid = 2
)

// ExitCode maps err to a process exit code by its error code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidGeometry,
		errors.ErrCodeInvalidName,
		errors.ErrCodeInvalidConfig,
		errors.ErrCodeDuplicateName:
		return ExitInvalid
	default:
		return ExitFailure
	}
}
