package dita

import (
	"embed"
	"sync"

	"github.com/vvka-141/xmlschemas/pkg/schemas"
)

//go:embed all:schemas
var schemaFS embed.FS

const (
	Name    = "DITA"
	Version = "1.2"
	License = "OASIS-IPR"
)

var bundle = sync.OnceValue(func() *schemas.EmbeddedBundle {
	return schemas.MustLoad(schemas.Info{Name: Name, Version: Version, License: License}, schemaFS, "schemas")
})

// Dita12 returns the OASIS DITA 1.2 schema bundle.
// The tree is loaded on first use and shared by every caller afterwards.
func Dita12() *schemas.EmbeddedBundle { return bundle() }
