// Package codec is a diagnostic CBOR reader and writer for payloads.
//
// A struct is encoded as one CBOR map from field id to value, using Core
// Deterministic Encoding, so equal payloads produce identical bytes. Values
// are checked against each field's type descriptor in both directions;
// a decoded value of the wrong type yields a *payload.DecodeError.
//
// This is not a Thrift protocol. It exists for dumps, fixtures and tests:
//
//	data, err := codec.Marshal(p)
//	q := PointType.MustNew()
//	err = codec.Unmarshal(data, q)
//
// Decoded Go types per tag: BOOL bool, BYTE int8, I16 int16, I32 int32,
// I64 int64, DOUBLE float64, STRING/UTF8/UTF16 string (or []byte for byte
// strings), LIST/SET []any, MAP map[any]any, STRUCT payload.Struct.
package codec
