package ldf

import "reflect"

type ValueType int

const (
	StringUtf16 = ValueType(iota)
	Signed32
	_
	Float
	Double
	Unsigned32
	_
	Bool
	Unsigned64
	Signed64
	_
	_
	_
	StringUtf8
)

// Separates the items of a string value decoded into a []string.
const ListSeparator = ";"

func (t ValueType) Kind() reflect.Kind {
	switch t {
	case StringUtf16, StringUtf8:
		return reflect.String
	case Signed32:
		return reflect.Int32
	case Unsigned32:
		return reflect.Uint32
	case Bool:
		return reflect.Bool
	default:
		return reflect.Invalid
	}
}
