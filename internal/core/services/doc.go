// Package services implements the driving ports.
//
// MappingService owns the mapping being edited and routes saves and lookups
// to registries; SelectionService and SettingsService hold the surrounding
// editor state.
package services
