// Package akomantoso embeds the Akoma Ntoso 3.0 schemas for legal documents (CC-BY-4.0, OASIS Open).
package akomantoso

import (
	"embed"
	"sync"

	"github.com/vvka-141/xmlschemas/pkg/schemas"
)

//go:embed all:schemas
var schemaFS embed.FS

const (
	Name    = "Akoma Ntoso"
	Version = "3.0"
	License = "CC-BY-4.0"
)

var bundle = sync.OnceValue(func() *schemas.EmbeddedBundle {
	return schemas.MustLoad(schemas.Info{Name: Name, Version: Version, License: License}, schemaFS, "schemas")
})

// AkomaNtoso30 returns the Akoma Ntoso 3.0 legal document schema bundle.
// The tree is loaded on first use and shared by every caller afterwards.
func AkomaNtoso30() *schemas.EmbeddedBundle { return bundle() }
