// Package ditalce embeds the DITA Learning Content Education (LCE) schemas,
// a DITA specialization for educational publishers.
package ditalce

import (
	"embed"
	"sync"

	"github.com/vvka-141/xmlschemas/pkg/schemas"
)

//go:embed all:schemas
var schemaFS embed.FS

const (
	Name    = "DITA LCE"
	Version = "3.0"
	License = "Apache-2.0"
)

var bundle = sync.OnceValue(func() *schemas.EmbeddedBundle {
	return schemas.MustLoad(schemas.Info{Name: Name, Version: Version, License: License}, schemaFS, "schemas")
})

// DitaLce returns the DITA Learning Content Education schema bundle.
// The tree is loaded on first use and shared by every caller afterwards.
func DitaLce() *schemas.EmbeddedBundle { return bundle() }
