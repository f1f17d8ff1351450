// Package jats embeds the JATS 1.4 Journal Publishing XSD with MathML 3 support.
package jats

import (
	"embed"
	"sync"

	"github.com/vvka-141/xmlschemas/pkg/schemas"
)

//go:embed all:schemas
var schemaFS embed.FS

const (
	Name    = "JATS"
	Version = "1.4"
	License = "Public Domain"
)

var bundle = sync.OnceValue(func() *schemas.EmbeddedBundle {
	return schemas.MustLoad(schemas.Info{Name: Name, Version: Version, License: License}, schemaFS, "schemas")
})

// Jats14 returns the JATS 1.4 (Journal Article Tag Suite) schema bundle.
// The tree is loaded on first use and shared by every caller afterwards.
func Jats14() *schemas.EmbeddedBundle { return bundle() }
