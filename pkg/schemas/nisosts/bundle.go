package nisosts

import (
	"embed"
	"strings"
	"sync"

	"github.com/vvka-141/xmlschemas/pkg/schemas"
)

//go:embed all:schemas
var schemaFS embed.FS

const (
	Name    = "NISO STS"
	Version = "1.0"
	License = "NISO"
)

var bundle = sync.OnceValue(func() *schemas.EmbeddedBundle {
	return schemas.MustLoad(schemas.Info{Name: Name, Version: Version, License: License}, schemaFS, "schemas")
})

// NisoSts returns the NISO Standards Tag Suite 1.0 schema bundle.
// The tree is loaded on first use and shared by every caller afterwards.
func NisoSts() *schemas.EmbeddedBundle { return bundle() }

// InterchangeFiles returns the interchange tag set schemas.
func InterchangeFiles() []schemas.File { return pathContains("interchange") }

// ExtendedFiles returns the extended tag set schemas.
func ExtendedFiles() []schemas.File { return pathContains("extended") }

// MathMLFiles returns every file whose path mentions MathML, including the
// tag set drivers that embed it.
func MathMLFiles() []schemas.File { return pathContains("mathml") }

func pathContains(s string) []schemas.File {
	return NisoSts().FindFiles(func(f schemas.File) bool { return strings.Contains(f.Path(), s) })
}
