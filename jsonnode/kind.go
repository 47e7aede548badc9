package jsonnode

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	KindMissing KindEnum = iota // zero value: addressing a non-existent path segment yields a missing node

	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsScalar reports whether the kind carries a single coercible value.
func (k KindEnum) IsScalar() bool {
	switch k {
	default:
		return false
	case KindBool, KindNumber, KindString:
		return true
	}
}
