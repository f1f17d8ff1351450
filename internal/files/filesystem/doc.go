// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// This package defines interfaces for file and directory traversal so that
// schema bundles can be loaded from any fs.FS (embedded trees, in-memory
// archives) and extracted output can be read back from the OS filesystem.
//
// Key interfaces:
//   - FileSystemProvider: Factory for creating directory instances
//   - Directory: Represents a directory that can be traversed
//   - File: Represents an individual file with metadata and content
//   - FileInfo: File metadata similar to os.FileInfo
//
// Implementations:
//   - FSFileSystem: Read-only provider over any fs.FS (embed.FS, fstest.MapFS)
//   - OSFileSystem: Production implementation using OS filesystem
package filesystem
