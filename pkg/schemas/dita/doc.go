// Package dita embeds the OASIS DITA 1.2 XML Schemas.
//
// The tree keeps the upstream layout, so module paths look like
// "xsd1.2/base/xsd/basemap.xsd" and the OASIS catalog sits at
// "xsd1.2/catalog-dita.xml":
//
//	b := dita.Dita12()
//	if f, ok := b.GetFile("xsd1.2/base/xsd/basemap.xsd"); ok {
//	    fmt.Println(f.Size(), "bytes")
//	}
//	for _, f := range b.FilesByExtension("xsd") {
//	    fmt.Println(f.Path())
//	}
//
// The DITA schemas are licensed under the OASIS IPR Policy.
package dita
