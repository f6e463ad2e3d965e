package contract

import "errors"

// Sentinel errors surfaced by the cache and store layers.
var (
	// ErrNotConnected indicates the backing store is unreachable.
	ErrNotConnected = errors.New("store is not connected")

	// ErrNotFound indicates the requested key has no value.
	ErrNotFound = errors.New("key not found")

	// ErrBadFormat indicates stored bytes could not be parsed as the requested type.
	ErrBadFormat = errors.New("stored value has unexpected format")

	// ErrUnsupportedValue indicates a value outside the scalar kinds the cache accepts.
	ErrUnsupportedValue = errors.New("unsupported value type")
)
