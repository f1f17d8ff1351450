// Package nisosts embeds the NISO Standards Tag Suite (STS) 1.0 schemas.
//
// Two tag sets are included, both with MathML 3.0 support:
//   - Interchange: for exchange between organizations
//   - Extended: with additional elements for publishing
//
// InterchangeFiles, ExtendedFiles and MathMLFiles select each part of the tree.
package nisosts
