// Package errors provides CLI error patterns with user-friendly messaging.
//
// Core types:
//   - CLIError: Wraps errors with message, suggestion, and details
//   - ErrorMessenger: Interface for customizing error messages
//
// Sentinel errors for common scenarios:
//   - ErrOutputNotDirectory: The configured output path is a file
//   - ErrUnknownVariant: The build variant is not debug or release
//   - ErrAssembleFailed: The packaging command exited with an error
//   - ErrNotInGitRepo: Command requires a git repository
//   - ErrArchiveNotFound: No archive exists for a sweep run ID
//
// Example usage:
//
//	if err := cleaner.Clean(ctx); err != nil {
//	    return errors.WrapOutputDirError(err, dir)
//	}
//
//	// Wrap with custom messages
//	type MyMessenger struct{ errors.DefaultMessenger }
//	func (m MyMessenger) AssembleFailedMessage(task string) (string, string) {
//	    return task + " broke.", "Run gradle by hand to see why."
//	}
//
//	wrapped := errors.WrapAssembleError(err, "assembleDebug", errors.WithMessenger(MyMessenger{}))
//
//	if errors.IsAssembleError(err) {
//	    // Handle packaging failure
//	}
package errors
