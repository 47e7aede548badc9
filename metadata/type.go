package metadata

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=TypeEnum -output=type_string.go

// TypeEnum selects how a resolved JSON node is coerced to an output value.
type TypeEnum int

const (
	TypeText TypeEnum = iota // default coercion when a mapping omits the type

	TypeBoolean

	// TypeTotal is a constant that represents the total number of types defined
	TypeTotal = int(iota)
)

// IsValid returns true if the type is a recognized coercion kind.
func (t TypeEnum) IsValid() bool {
	return t >= 0 && int(t) < TypeTotal
}

// ParseType parses the textual type attribute of a mapping file. The empty
// string means TypeText, matching the optional attribute's default.
func ParseType(s string) (TypeEnum, error) {
	switch strings.ToLower(s) {
	default:
		return 0, fmt.Errorf("%w: unknown type %q", ErrInvalidMetadataType, s)
	case "", "text":
		return TypeText, nil
	case "boolean":
		return TypeBoolean, nil
	}
}
