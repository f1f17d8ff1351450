// Package tei embeds the TEI P5 tei_all schema in both RELAX NG and XSD form.
package tei

import (
	"embed"
	"sync"

	"github.com/vvka-141/xmlschemas/pkg/schemas"
)

//go:embed all:schemas
var schemaFS embed.FS

const (
	Name    = "TEI"
	Version = "P5"
	License = "BSD-2-Clause"
)

var bundle = sync.OnceValue(func() *schemas.EmbeddedBundle {
	return schemas.MustLoad(schemas.Info{Name: Name, Version: Version, License: License}, schemaFS, "schemas")
})

// TeiP5 returns the TEI P5 (Text Encoding Initiative) schema bundle.
// The tree is loaded on first use and shared by every caller afterwards.
func TeiP5() *schemas.EmbeddedBundle { return bundle() }
