package errors

import "errors"

// Common CLI errors with actionable guidance.
var (
	// ErrOutputNotDirectory indicates the output path exists but is not a directory.
	ErrOutputNotDirectory = errors.New("output path is not a directory")

	// ErrUnknownVariant indicates a build variant other than debug or release.
	ErrUnknownVariant = errors.New("unknown build variant")

	// ErrAssembleFailed indicates the packaging command failed.
	ErrAssembleFailed = errors.New("assemble failed")

	// ErrNotInGitRepo indicates the command requires a git repository.
	ErrNotInGitRepo = errors.New("not in a git repository")

	// ErrArchiveNotFound indicates no archive exists for the requested run.
	ErrArchiveNotFound = errors.New("archive not found")
)
