package spl

import (
	"embed"
	"sync"

	"github.com/vvka-141/xmlschemas/pkg/schemas"
)

//go:embed all:schemas
var schemaFS embed.FS

const (
	Name    = "SPL"
	Version = "R2b"
	License = "BSD-3-Clause"
)

var bundle = sync.OnceValue(func() *schemas.EmbeddedBundle {
	return schemas.MustLoad(schemas.Info{Name: Name, Version: Version, License: License}, schemaFS, "schemas")
})

// Spl returns the FDA Structured Product Labeling schema bundle.
// The tree is loaded on first use and shared by every caller afterwards.
func Spl() *schemas.EmbeddedBundle { return bundle() }
