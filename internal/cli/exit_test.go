package cli

import (
	"fmt"
	"testing"

	"github.com/matzehuels/footgen/pkg/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"plain", fmt.Errorf("boom"), ExitFailure},
		{"io", errors.New(errors.ErrCodeIO, "disk full"), ExitFailure},
		{"internal", errors.New(errors.ErrCodeInternal, "picker"), ExitFailure},
		{"geometry", errors.New(errors.ErrCodeInvalidGeometry, "pad < drill"), ExitInvalid},
		{"wrapped config", fmt.Errorf("load: %w", errors.New(errors.ErrCodeInvalidConfig, "bad key")), ExitInvalid},
		{"duplicate", errors.New(errors.ErrCodeDuplicateName, "dup"), ExitInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExitCodeFromCommand(t *testing.T) {
	_, _, err := run(t, "holes", "--tedit", "zz", "-d", t.TempDir())
	if got := ExitCode(err); got != ExitInvalid {
		t.Errorf("ExitCode(%v) = %d, want %d", err, got, ExitInvalid)
	}
}
