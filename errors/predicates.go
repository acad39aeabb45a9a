package errors

import (
	"errors"
	"io/fs"
	"strings"
)

// IsAssembleError checks if an error came from a failed packaging step.
func IsAssembleError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrAssembleFailed)
}

// IsOutputDirError checks if an error is about the output directory itself.
func IsOutputDirError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrOutputNotDirectory)
}

// IsVanished reports whether err means the file was already gone.
// Deleting a file another process removed first counts as success.
func IsVanished(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, fs.ErrNotExist)
}

// IsPermissionError checks if an error is permission-related.
func IsPermissionError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, fs.ErrPermission) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "permission denied") ||
		strings.Contains(errStr, "operation not permitted")
}
