// Package domain holds the JSKOS types skosmap works with and the pure
// functions over them.
//
// A Mapping relates a set of concepts from one concept scheme to a set of
// concepts from another. Registries describe where mappings are read from
// and saved to; a Selection records the scheme and concept chosen on each
// side; EditorSettings are the persisted preferences.
//
// Helpers such as Clone, Minify, AddIdentifiers and MappingQuery.Matches
// never touch I/O, so every other package can use them. The package depends
// on the standard library only.
package domain
