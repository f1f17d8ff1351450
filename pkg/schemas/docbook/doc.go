// Package docbook embeds the DocBook 5.1 RELAX NG grammar and Schematron rules
// published by the OASIS DocBook TC under BSD-2-Clause.
//
// DocBook ships no XSD; use FilesByExtension("rng") for the grammar and
// FilesByExtension("sch") for the rules.
package docbook
