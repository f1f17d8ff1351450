// Package schemas provides uniform, read-only access to bundles of XML schema
// files (XSD, RelaxNG, Schematron, DTD and catalogs) embedded into Go binaries.
//
// Every standard package under pkg/schemas (dita, jats, tei, ...) embeds its
// schema tree with //go:embed and returns an *EmbeddedBundle, so callers can be
// generic over "a schema source" through the Bundle interface:
//
//	b := dita.Dita12()
//	fmt.Println(schemas.Summarize(b))
//
//	if f, ok := b.GetFile("xsd1.2/base/xsd/basemap.xsd"); ok {
//	    fmt.Println(f.Size(), "bytes")
//	}
//
//	for _, f := range b.FilesByExtension("xsd") {
//	    fmt.Println(f.Path())
//	}
//
//	n, err := b.WriteToDirectory("./schemas")
//
// # Ordering and matching
//
// ListPaths, Files, FindFiles and FilesByExtension all return files in
// byte-wise lexicographic order of their full slash-separated path.
// FilesByExtension compares the suffix after the last "." of the base name
// case-insensitively; a leading "." in the argument is ignored.
//
// # Extraction
//
// WriteToDirectory overwrites existing files unconditionally and stops at the
// first failure, returning the number of files written so far together with an
// *IOError. Output written before the failure is left in place.
//
// # Thread Safety
//
// Bundles are immutable after construction and safe for concurrent use by
// multiple goroutines. Concurrent extractions into overlapping directories are
// last-writer-wins per file.
package schemas
