package domain

import "errors"

// Sentinel errors shared by services and adapters. Callers match them with
// errors.Is; wrapping adds the detail.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown registry type or capability name.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrUnknownCommand indicates an editor command line could not be parsed.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrRegistryUnavailable indicates a remote registry could not be reached
	// or answered with an unexpected status.
	ErrRegistryUnavailable = errors.New("registry unavailable")
)
