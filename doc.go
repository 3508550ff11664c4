// Package thriftcore is the object model underneath generated Thrift data
// structures.
//
// Generated code declares every structure's fields once, at startup, and
// gets back a struct type that builds, compares, renders and hands instances
// to protocol readers and writers. Framework faults use the same shape.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	thriftcore/
//	├── ttype/           Type tags, type descriptors and their rendering
//	├── payload/         Struct types, constructors, payloads, exceptions, DecodeError
//	├── transport/       Byte-source read contract and transport errors
//	├── errors/          Structured error types for Go API misuse and codec failures
//	├── codec/           Diagnostic CBOR reader/writer (not a Thrift protocol)
//	├── hexutil/         Hex rendering of byte sequences
//	└── cmd/thrifthex/   Hex and CBOR dump tool
//
// # Quick Start
//
// Define a struct type and build instances:
//
//	var PointType = payload.Define("Point",
//	    payload.ConstructorSpec{{Name: "x", Value: int32(0)}, {Name: "y", Value: int32(0)}},
//	    payload.FieldSpec{
//	        1: {Type: ttype.Scalar(ttype.I32), Name: "x"},
//	        2: {Type: ttype.Scalar(ttype.I32), Name: "y"},
//	    },
//	)
//
//	p := PointType.MustNew(payload.With("x", int32(5)))
//	fmt.Println(p)                              // Point(x=5, y=0)
//	fmt.Println(p.Equal(PointType.MustNew()))   // false
//
// Readers report mistyped fields as *payload.DecodeError:
//
//	Field 'x(1)' of 'Point' needs type 'I32', but the value is `'abc'`
//
// # Equality
//
// Payloads compare structurally. Exceptions (payload.Exception and the
// errors built on it) compare and hash by identity, so a caught fault is
// only ever equal to itself.
//
// # Thread Safety
//
// Struct types and the tag table are immutable after startup and safe for
// concurrent use. Instances are plain mutable records with no locking.
package thriftcore
