package schemas

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	n, err := bundle.WriteToDirectory(dir)
//	if errors.Is(err, schemas.ErrIO) {
//	    // fix permissions or disk space, then retry
//	}
var (
	// ErrIO indicates a directory creation or file write failed during extraction.
	ErrIO = errors.New("i/o error")

	// ErrNotFound indicates a requested bundle or file does not exist.
	// Bundle lookups report absence with a boolean; this sentinel is for
	// callers (such as the CLI) that need to turn a miss into an error.
	ErrNotFound = errors.New("not found")

	// ErrInvalidPath indicates a bundle path that is empty, absolute or escapes its root.
	ErrInvalidPath = errors.New("invalid schema path")

	// ErrDuplicatePath indicates two inputs normalize to the same bundle path.
	ErrDuplicatePath = errors.New("duplicate schema path")

	// ErrNotUTF8 indicates file contents are not valid UTF-8.
	ErrNotUTF8 = errors.New("content is not valid UTF-8")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrVerifyFailed indicates extracted files do not match the bundle.
	ErrVerifyFailed = errors.New("verification failed")
)

// Operations reported by IOError.
const (
	OpCreateDir = "create directory"
	OpWriteFile = "write file"
	OpReadFile  = "read file"
)

// IOError describes a failed file-system operation during extraction.
// It matches ErrIO with errors.Is and unwraps to the underlying cause.
type IOError struct {
	Op   string // OpCreateDir, OpWriteFile or OpReadFile
	Path string // OS path that failed
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrIO):
		return ExitIOError
	case errors.Is(err, ErrVerifyFailed):
		return ExitVerifyFailed
	}

	// cobra reports usage problems as plain errors
	errStr := err.Error()
	for _, prefix := range usageErrorPrefixes {
		if strings.HasPrefix(errStr, prefix) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

var usageErrorPrefixes = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"missing required argument",
}
