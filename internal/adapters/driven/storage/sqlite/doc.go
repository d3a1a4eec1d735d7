// Package sqlite persists mappings in a SQLite database.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. A single Store hands out port implementations through
// wrapper types:
//
//   - MappingStore: mapping persistence backing the local registry
//
// # Schema
//
// The schema is managed through versioned migrations embedded from the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql
// files; applied versions are recorded in schema_migrations.
//
// Each mapping is stored as its JSON document plus indexed columns for its
// schemes and identifiers. Member concept URIs are kept in mapping_members
// so concept lookups do not scan every document.
//
// # Data Location
//
// By default, the database is stored at ~/.skosmap/data/mappings.db
//
// # Thread Safety
//
// All operations are safe for concurrent use. SQLite runs in WAL mode with a
// busy timeout.
package sqlite
