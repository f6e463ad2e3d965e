// Package schema holds shared types for the recall CLI and library.
package schema

// Custom string types for type safety.
type (
	// ValueKind represents the scalar kind of a stored value.
	ValueKind string

	// GetMode represents the conversion applied when reading a value back.
	GetMode string
)

// All scalar kinds the cache accepts.
const (
	TextValue    ValueKind = "text"
	BinaryValue  ValueKind = "binary"
	IntegerValue ValueKind = "integer"
	RealValue    ValueKind = "real"
)

// All get modes supported.
const (
	RawGet  GetMode = "raw" // default
	TextGet GetMode = "text"
	IntGet  GetMode = "int"
)

// ValidGetModes lists all valid get modes.
var ValidGetModes = map[GetMode]struct{}{
	RawGet:  {},
	TextGet: {},
	IntGet:  {},
}
