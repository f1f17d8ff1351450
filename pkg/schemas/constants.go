package schemas

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Command completed successfully
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration
	ExitNotFound     = 14 // Bundle or file not found
	ExitIOError      = 15 // Extraction could not create a directory or write a file
	ExitVerifyFailed = 16 // Extracted files differ from the bundle
)

const (
	// DirPerm is the mode used for directories created during extraction.
	DirPerm = 0o755

	// FilePerm is the mode used for files written during extraction.
	FilePerm = 0o644
)
