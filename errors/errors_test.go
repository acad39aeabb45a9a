package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"testing"
)

func TestCLIError(t *testing.T) {
	err := &CLIError{
		Err:        ErrAssembleFailed,
		Message:    "Test message",
		Suggestion: "Test suggestion",
		Details:    "Test details",
	}

	errStr := err.Error()
	for _, want := range []string{"Test message", "Test details", "Test suggestion"} {
		if !strings.Contains(errStr, want) {
			t.Errorf("expected error to contain %q, got %q", want, errStr)
		}
	}

	if !errors.Is(err, ErrAssembleFailed) {
		t.Error("expected error to unwrap to ErrAssembleFailed")
	}
}

func TestCLIError_MinimalFields(t *testing.T) {
	err := &CLIError{
		Err:     ErrOutputNotDirectory,
		Message: "Not a directory",
	}

	if got := err.Error(); got != "Not a directory" {
		t.Errorf("expected 'Not a directory', got %q", got)
	}
}

func TestWrapOutputDirError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantNil    bool
		wantCLI    bool
		wantSubstr string
	}{
		{
			name:    "nil error",
			err:     nil,
			wantNil: true,
		},
		{
			name:       "not a directory",
			err:        fmt.Errorf("stat build/out: %w", ErrOutputNotDirectory),
			wantCLI:    true,
			wantSubstr: "build/out is not a directory",
		},
		{
			name:       "unrelated error passes through",
			err:        errors.New("disk on fire"),
			wantSubstr: "disk on fire",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapOutputDirError(tt.err, "build/out")
			if tt.wantNil {
				if got != nil {
					t.Errorf("expected nil, got %v", got)
				}
				return
			}

			var cliErr *CLIError
			if isCLI := errors.As(got, &cliErr); isCLI != tt.wantCLI {
				t.Errorf("CLIError = %v, want %v", isCLI, tt.wantCLI)
			}
			if !strings.Contains(got.Error(), tt.wantSubstr) {
				t.Errorf("error %q does not contain %q", got.Error(), tt.wantSubstr)
			}
		})
	}
}

func TestWrapAssembleError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		if err := WrapAssembleError(nil, "assembleDebug"); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("tool missing", func(t *testing.T) {
		err := WrapAssembleError(errors.New(`exec: "flutter": executable file not found in $PATH`), "assembleRelease")
		if !IsAssembleError(err) {
			t.Fatal("expected IsAssembleError")
		}
		if !strings.Contains(err.Error(), "packaging tool not found") {
			t.Errorf("unexpected message: %q", err.Error())
		}
	})

	t.Run("build failure keeps output", func(t *testing.T) {
		err := WrapAssembleError(errors.New("exit status 1: Gradle task failed"), "assembleDebug")
		if !IsAssembleError(err) {
			t.Fatal("expected IsAssembleError")
		}
		msg := err.Error()
		if !strings.Contains(msg, "assembleDebug failed.") {
			t.Errorf("missing task in %q", msg)
		}
		if !strings.Contains(msg, "Gradle task failed") {
			t.Errorf("missing details in %q", msg)
		}
	})
}

type customMessenger struct {
	DefaultMessenger
}

func (customMessenger) UnknownVariantMessage(variant string) (string, string) {
	return "bad variant " + variant, "try harder"
}

func TestWithMessenger(t *testing.T) {
	err := NewUnknownVariantError("profile", WithMessenger(customMessenger{}))

	if !errors.Is(err, ErrUnknownVariant) {
		t.Error("expected ErrUnknownVariant")
	}
	if got := err.Error(); got != "bad variant profile\n\ntry harder" {
		t.Errorf("got %q", got)
	}

	// Methods not overridden fall back to the embedded defaults.
	err = NewNotInGitRepoError(WithMessenger(customMessenger{}))
	if !strings.Contains(err.Error(), "git repository") {
		t.Errorf("got %q", err.Error())
	}
}

func TestNewArchiveNotFoundError(t *testing.T) {
	err := NewArchiveNotFoundError("2026-10-17-abc")
	if !errors.Is(err, ErrArchiveNotFound) {
		t.Error("expected ErrArchiveNotFound")
	}
	if !strings.Contains(err.Error(), "2026-10-17-abc") {
		t.Errorf("run ID missing from %q", err.Error())
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		fn   func(error) bool
		err  error
		want bool
	}{
		{"assemble nil", IsAssembleError, nil, false},
		{"assemble wrapped", IsAssembleError, WrapAssembleError(errors.New("boom"), "assembleDebug"), true},
		{"assemble other", IsAssembleError, errors.New("boom"), false},
		{"output dir nil", IsOutputDirError, nil, false},
		{"output dir", IsOutputDirError, fmt.Errorf("x: %w", ErrOutputNotDirectory), true},
		{"vanished nil", IsVanished, nil, false},
		{"vanished", IsVanished, &fs.PathError{Op: "remove", Path: "a.apk", Err: fs.ErrNotExist}, true},
		{"vanished os", IsVanished, os.ErrNotExist, true},
		{"permission nil", IsPermissionError, nil, false},
		{"permission fs", IsPermissionError, &fs.PathError{Op: "remove", Path: "a.apk", Err: fs.ErrPermission}, true},
		{"permission text", IsPermissionError, errors.New("unlinkat a.apk: operation not permitted"), true},
		{"permission other", IsPermissionError, errors.New("i/o error"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.err); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
