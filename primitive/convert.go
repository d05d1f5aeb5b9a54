package primitive

import "reflect"

type ConversionPair struct {
	From, To KindEnum
}

// safePairs lists numeric conversions that never lose precision.
var safePairs map[ConversionPair]struct{}

func init() {
	safePairs = map[ConversionPair]struct{}{
		{KindInt, KindInt}:   {}, // int can be any wide from 32 upto 64
		{KindInt, KindInt64}: {},

		{KindInt8, KindInt}:     {}, // int8 can be safely converted to any signed int
		{KindInt8, KindInt8}:    {},
		{KindInt8, KindInt16}:   {},
		{KindInt8, KindInt32}:   {},
		{KindInt8, KindInt64}:   {},
		{KindInt8, KindFloat32}: {},
		{KindInt8, KindFloat64}: {},

		{KindInt16, KindInt}:     {},
		{KindInt16, KindInt16}:   {}, // int16 omitting narrowing to int8
		{KindInt16, KindInt32}:   {},
		{KindInt16, KindInt64}:   {},
		{KindInt16, KindFloat32}: {},
		{KindInt16, KindFloat64}: {},

		{KindInt32, KindInt}:     {},
		{KindInt32, KindInt32}:   {}, // int32 omitting narrowing to int8/16
		{KindInt32, KindInt64}:   {},
		{KindInt32, KindFloat64}: {}, // int32 is wider than float32 mantissa

		{KindInt64, KindInt64}: {}, // int64 is the widest signed integer type

		{KindUint, KindUint}:   {}, // uint can be any wide from 32 upto 64
		{KindUint, KindUint64}: {},

		{KindUint8, KindUint}:    {}, // uint8 can be safely converted to any unsigned int
		{KindUint8, KindUint8}:   {},
		{KindUint8, KindUint16}:  {},
		{KindUint8, KindUint32}:  {},
		{KindUint8, KindUint64}:  {},
		{KindUint8, KindInt}:     {}, // also uint8 can be converted to any wider signed int
		{KindUint8, KindInt16}:   {},
		{KindUint8, KindInt32}:   {},
		{KindUint8, KindInt64}:   {},
		{KindUint8, KindFloat32}: {},
		{KindUint8, KindFloat64}: {},

		{KindUint16, KindUint}:    {},
		{KindUint16, KindUint16}:  {}, // uint16 omitting narrowing to uint8
		{KindUint16, KindUint32}:  {},
		{KindUint16, KindUint64}:  {},
		{KindUint16, KindInt}:     {}, // also uint16 can be converted to any wider signed int
		{KindUint16, KindInt32}:   {},
		{KindUint16, KindInt64}:   {},
		{KindUint16, KindFloat32}: {},
		{KindUint16, KindFloat64}: {},

		{KindUint32, KindUint32}:  {},
		{KindUint32, KindUint64}:  {}, // uint32 omitting narrowing to uint8/16
		{KindUint32, KindInt64}:   {}, // also only int64 is wide enough to hold uint32
		{KindUint32, KindFloat64}: {}, // uint32 is wider than float32 mantissa

		{KindUint64, KindUint64}: {}, // uint64 is the widest unsigned integer type

		{KindFloat32, KindFloat32}: {},
		{KindFloat32, KindFloat64}: {},

		{KindFloat64, KindFloat64}: {},

		{KindBool, KindBool}:     {},
		{KindString, KindString}: {},
	}
}

// IsSafe reports whether converting a value of kind from into kind to keeps
// every value intact.
func IsSafe(from, to KindEnum) bool {
	_, ok := safePairs[ConversionPair{from, to}]
	return ok
}

// CanConvert reports whether a value of type from may be assigned to an
// alternative of type to. Two cases qualify: wrapper types sharing the same
// underlying representation (`type Meters float64` into float64), and lossless
// primitive widening (int16 into int64).
func CanConvert(from, to reflect.Type) bool {
	if from == nil || to == nil || !from.ConvertibleTo(to) {
		return false
	}

	if from.Kind() == to.Kind() {
		return true
	}

	fk, tk := FromReflectType(from), FromReflectType(to)

	return fk.IsNumber() && tk.IsNumber() && IsSafe(fk, tk)
}

// Convert converts v to T when CanConvert allows it.
func Convert[T, V any](v V) (T, bool) {
	to := reflect.TypeFor[T]()
	if !CanConvert(reflect.TypeFor[V](), to) {
		var zero T
		return zero, false
	}

	return reflect.ValueOf(&v).Elem().Convert(to).Interface().(T), true
}
