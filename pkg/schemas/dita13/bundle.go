// Package dita13 embeds the OASIS DITA 1.3 XML Schemas, including the
// troubleshooting topic type and the XML mention, SVG, MathML and release
// management domains. The schemas are licensed under Apache-2.0.
package dita13

import (
	"embed"
	"sync"

	"github.com/vvka-141/xmlschemas/pkg/schemas"
)

//go:embed all:schemas
var schemaFS embed.FS

const (
	Name    = "DITA"
	Version = "1.3"
	License = "Apache-2.0"
)

var bundle = sync.OnceValue(func() *schemas.EmbeddedBundle {
	return schemas.MustLoad(schemas.Info{Name: Name, Version: Version, License: License}, schemaFS, "schemas")
})

// Dita13 returns the OASIS DITA 1.3 schema bundle.
// The tree is loaded on first use and shared by every caller afterwards.
func Dita13() *schemas.EmbeddedBundle { return bundle() }
