package docbook

import (
	"embed"
	"sync"

	"github.com/vvka-141/xmlschemas/pkg/schemas"
)

//go:embed all:schemas
var schemaFS embed.FS

const (
	Name    = "DocBook"
	Version = "5.1"
	License = "BSD-2-Clause"
)

var bundle = sync.OnceValue(func() *schemas.EmbeddedBundle {
	return schemas.MustLoad(schemas.Info{Name: Name, Version: Version, License: License}, schemaFS, "schemas")
})

// DocBook51 returns the DocBook 5.1 schema bundle.
// The tree is loaded on first use and shared by every caller afterwards.
func DocBook51() *schemas.EmbeddedBundle { return bundle() }
