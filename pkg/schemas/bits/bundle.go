// Package bits embeds the BITS 2.2 (Book Interchange Tag Suite) XSD with MathML 3 support.
package bits

import (
	"embed"
	"sync"

	"github.com/vvka-141/xmlschemas/pkg/schemas"
)

//go:embed all:schemas
var schemaFS embed.FS

const (
	Name    = "BITS"
	Version = "2.2"
	License = "Public Domain"
)

var bundle = sync.OnceValue(func() *schemas.EmbeddedBundle {
	return schemas.MustLoad(schemas.Info{Name: Name, Version: Version, License: License}, schemaFS, "schemas")
})

// Bits22 returns the BITS 2.2 (Book Interchange Tag Suite) schema bundle.
// The tree is loaded on first use and shared by every caller afterwards.
func Bits22() *schemas.EmbeddedBundle { return bundle() }
