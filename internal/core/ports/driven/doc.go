// Package driven declares what the core needs from the outside world.
//
// Services only see these interfaces; adapters under internal/adapters/driven
// satisfy them.
//
//   - MappingProvider: reads and writes the mappings of one registry. The
//     local, jskosapi and storage providers implement it.
//   - Registry: a provider paired with its registry description.
//   - MappingStore: persistence behind the local registry (SQLite or memory).
//   - ConfigStore: key-value storage for editor settings.
//
// Only the domain package may be imported from here.
package driven
