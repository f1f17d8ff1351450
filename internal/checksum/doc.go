// Package checksum provides schema file content hashing with normalization support.
//
// Two checksums are computed per file:
//
//   - Raw checksum: Hash of the exact file content (detects all changes)
//   - Normalized checksum: Hash after removing XML comments and normalizing whitespace
//     (formatting-independent content identity)
//
// # Normalization Strategy
//
// Normalization makes checksums resilient to formatting changes:
//  1. Remove XML comments (<!-- ... -->) that appear outside CDATA sections
//     and attribute values
//  2. Collapse all whitespace sequences to single spaces
//  3. Trim leading/trailing whitespace
//
// Case is preserved: XML names are case-sensitive. The same rules apply to DTD
// and entity files, whose comments use the same syntax.
//
// Two copies of a schema that differ only in their license banner comments or
// indentation therefore share a normalized checksum.
//
// # Example Usage
//
//	calculator := checksum.New()
//	rawChecksum := calculator.CalculateRaw(fileContent)
//	normalizedChecksum := calculator.CalculateNormalized(fileContent)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
