// Package payload is the object model behind generated Thrift structures.
//
// Generated code defines each structure type once, at startup, from an ordered
// constructor spec (field name and default) and a field spec (field id, type
// descriptor, name):
//
//	var PointType = payload.Define("Point",
//		payload.ConstructorSpec{{Name: "x", Value: int32(0)}, {Name: "y", Value: int32(0)}},
//		payload.FieldSpec{
//			1: {Type: ttype.Scalar(ttype.I32), Name: "x"},
//			2: {Type: ttype.Scalar(ttype.I32), Name: "y"},
//		},
//	)
//
//	p := PointType.MustNew(payload.With("x", int32(5)))
//	fmt.Println(p) // Point(x=5, y=0)
//
// Types defined without a constructor spec can be completed later with GenInit.
//
// # Values
//
// A *Payload compares structurally (same type, same fields, equal values) and
// renders as "Name(field=value, ...)" in slot order. Payload values are not
// comparable, so they cannot be used as map keys by content. Lists and maps
// compare element by element, so a []int32 equals a []any holding the same
// int32 values, which is what readers produce.
//
// An *Exception is a Payload that is also an error. Exceptions compare and
// hash by identity: two exceptions with identical fields are different
// occurrences. A plain *Payload of an exception type, built with New, also
// equals only itself. DecodeError is the exception readers return when a decoded
// value does not match its field's declared type.
//
// # Defaults
//
// Default values are assigned as-is, not copied. A mutable default (slice,
// map, struct) is shared by every instance built without an override.
//
// # Thread Safety
//
// Struct types are immutable once definition finishes and may be used from
// any goroutine. Instances have no internal locking.
package payload
