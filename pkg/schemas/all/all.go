// Package all registers every embedded schema bundle under a short ID so that
// tools can select bundles by name. Importing it links all standards into the
// binary; import the individual packages instead to keep binaries small.
package all

import (
	"sort"
	"strings"

	"github.com/vvka-141/xmlschemas/pkg/schemas"
	"github.com/vvka-141/xmlschemas/pkg/schemas/akomantoso"
	"github.com/vvka-141/xmlschemas/pkg/schemas/bits"
	"github.com/vvka-141/xmlschemas/pkg/schemas/dita"
	"github.com/vvka-141/xmlschemas/pkg/schemas/dita13"
	"github.com/vvka-141/xmlschemas/pkg/schemas/ditalce"
	"github.com/vvka-141/xmlschemas/pkg/schemas/docbook"
	"github.com/vvka-141/xmlschemas/pkg/schemas/jats"
	"github.com/vvka-141/xmlschemas/pkg/schemas/nisosts"
	"github.com/vvka-141/xmlschemas/pkg/schemas/spl"
	"github.com/vvka-141/xmlschemas/pkg/schemas/tei"
)

// registry maps bundle IDs to their constructors. Constructors load lazily,
// so listing IDs does not touch any embedded tree.
var registry = map[string]func() *schemas.EmbeddedBundle{
	"akoma-ntoso": akomantoso.AkomaNtoso30,
	"bits":        bits.Bits22,
	"dita":        dita.Dita12,
	"dita-lce":    ditalce.DitaLce,
	"dita13":      dita13.Dita13,
	"docbook":     docbook.DocBook51,
	"jats":        jats.Jats14,
	"niso-sts":    nisosts.NisoSts,
	"spl":         spl.Spl,
	"tei":         tei.TeiP5,
}

// IDs returns every registered bundle ID in sorted order.
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Lookup returns the bundle registered under id. Matching is case-insensitive
// and also accepts the bundle's Info.Key(), e.g. "dita-1.3" or "tei-p5".
func Lookup(id string) (schemas.Bundle, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	if ctor, ok := registry[id]; ok {
		return ctor(), true
	}
	for _, ctor := range registry {
		if b := ctor(); b.Info().Key() == id {
			return b, true
		}
	}
	return nil, false
}

// Bundles returns every registered bundle in ID order.
func Bundles() []schemas.Bundle {
	ids := IDs()
	out := make([]schemas.Bundle, 0, len(ids))
	for _, id := range ids {
		out = append(out, registry[id]())
	}
	return out
}

// Summaries returns a summary for every registered bundle in ID order.
func Summaries() []schemas.Summary {
	bundles := Bundles()
	out := make([]schemas.Summary, 0, len(bundles))
	for _, b := range bundles {
		out = append(out, schemas.Summarize(b))
	}
	return out
}
