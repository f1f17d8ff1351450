// Package manifest describes the contents of a schema bundle as a list of
// entries carrying path, size, raw and normalized checksums, and a
// deterministic identity.
//
// A manifest can be encoded as JSON or YAML, written next to an extracted
// bundle, and later used to verify that a directory still matches the
// bundle it came from.
package manifest
