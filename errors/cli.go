package errors

import (
	"errors"
	"fmt"
	"strings"
)

// CLIError wraps an error with user-friendly context and suggestions.
type CLIError struct {
	// Err is the underlying error
	Err error
	// Message is a user-friendly description of what went wrong
	Message string
	// Suggestion is an actionable hint for the user
	Suggestion string
	// Details provides additional context (optional)
	Details string
}

func (e *CLIError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)
	if e.Details != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Details)
	}
	if e.Suggestion != "" {
		sb.WriteString("\n\n")
		sb.WriteString(e.Suggestion)
	}
	return sb.String()
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// ErrorMessenger provides customizable error messages.
// Implement this interface to customize suggestions for your CLI.
type ErrorMessenger interface {
	// OutputNotDirectoryMessage returns the message and suggestion when the
	// output path is a regular file.
	OutputNotDirectoryMessage(path string) (message, suggestion string)
	// UnknownVariantMessage returns the message and suggestion for a bad variant.
	UnknownVariantMessage(variant string) (message, suggestion string)
	// AssembleFailedMessage returns the message and suggestion when a
	// packaging task fails.
	AssembleFailedMessage(task string) (message, suggestion string)
	// CommandNotFoundMessage returns the message and suggestion when the
	// packaging tool is not on PATH.
	CommandNotFoundMessage(task string) (message, suggestion string)
	// NotInGitRepoMessage returns the message and suggestion for git repo errors.
	NotInGitRepoMessage() (message, suggestion string)
	// ArchiveNotFoundMessage returns the message and suggestion for a missing archive.
	ArchiveNotFoundMessage(runID string) (message, suggestion string)
}

// DefaultMessenger provides default error messages.
type DefaultMessenger struct{}

func (m DefaultMessenger) OutputNotDirectoryMessage(path string) (string, string) {
	return fmt.Sprintf("Output path %s is not a directory.", path),
		"Point output_dir at the directory the build writes APKs into."
}

func (m DefaultMessenger) UnknownVariantMessage(variant string) (string, string) {
	return fmt.Sprintf("Unknown build variant %q.", variant),
		"Use one of: debug, release."
}

func (m DefaultMessenger) AssembleFailedMessage(task string) (string, string) {
	return fmt.Sprintf("%s failed.", task),
		"Stale APKs were already removed. Fix the build error above and run again."
}

func (m DefaultMessenger) CommandNotFoundMessage(task string) (string, string) {
	return fmt.Sprintf("Cannot run %s: packaging tool not found.", task),
		"Check that:\n  - flutter is installed and on PATH\n  - debug_command / release_command are set correctly"
}

func (m DefaultMessenger) NotInGitRepoMessage() (string, string) {
	return "This command must be run from within a git repository.",
		"Run it from the app checkout or pass --global."
}

func (m DefaultMessenger) ArchiveNotFoundMessage(runID string) (string, string) {
	return fmt.Sprintf("No archive for sweep %s.", runID),
		"Run 'apksweep archives list' to see available archives."
}

// WrapConfig configures error wrapping behavior.
type WrapConfig struct {
	Messenger ErrorMessenger
}

// Option configures WrapConfig.
type Option func(*WrapConfig)

// WithMessenger sets a custom error messenger.
func WithMessenger(m ErrorMessenger) Option {
	return func(c *WrapConfig) {
		c.Messenger = m
	}
}

func getMessenger(opts []Option) ErrorMessenger {
	cfg := &WrapConfig{
		Messenger: DefaultMessenger{},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg.Messenger
}

// WrapOutputDirError wraps output directory errors with helpful guidance.
func WrapOutputDirError(err error, path string, opts ...Option) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrOutputNotDirectory) {
		msg, suggestion := getMessenger(opts).OutputNotDirectoryMessage(path)
		return &CLIError{
			Err:        ErrOutputNotDirectory,
			Message:    msg,
			Suggestion: suggestion,
		}
	}

	return err
}

// WrapAssembleError wraps packaging command errors with helpful guidance.
// The underlying command output, if any, goes into Details.
func WrapAssembleError(err error, task string, opts ...Option) error {
	if err == nil {
		return nil
	}

	errStr := strings.ToLower(err.Error())
	messenger := getMessenger(opts)

	if strings.Contains(errStr, "executable file not found") ||
		strings.Contains(errStr, "no such file or directory") {
		msg, suggestion := messenger.CommandNotFoundMessage(task)
		return &CLIError{
			Err:        fmt.Errorf("%w: %w", ErrAssembleFailed, err),
			Message:    msg,
			Details:    err.Error(),
			Suggestion: suggestion,
		}
	}

	msg, suggestion := messenger.AssembleFailedMessage(task)
	return &CLIError{
		Err:        fmt.Errorf("%w: %w", ErrAssembleFailed, err),
		Message:    msg,
		Details:    err.Error(),
		Suggestion: suggestion,
	}
}

// NewUnknownVariantError creates an error for an unsupported build variant.
func NewUnknownVariantError(variant string, opts ...Option) error {
	msg, suggestion := getMessenger(opts).UnknownVariantMessage(variant)
	return &CLIError{
		Err:        ErrUnknownVariant,
		Message:    msg,
		Suggestion: suggestion,
	}
}

// NewNotInGitRepoError creates an error for commands that require a git repository.
func NewNotInGitRepoError(opts ...Option) error {
	msg, suggestion := getMessenger(opts).NotInGitRepoMessage()
	return &CLIError{
		Err:        ErrNotInGitRepo,
		Message:    msg,
		Suggestion: suggestion,
	}
}

// NewArchiveNotFoundError creates an error for a missing sweep archive.
func NewArchiveNotFoundError(runID string, opts ...Option) error {
	msg, suggestion := getMessenger(opts).ArchiveNotFoundMessage(runID)
	return &CLIError{
		Err:        ErrArchiveNotFound,
		Message:    msg,
		Suggestion: suggestion,
	}
}
