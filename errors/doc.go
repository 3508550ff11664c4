// Package errors provides structured error types for the thriftcore library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, Go/Thrift type names, and cause chain.
//
// These errors report misuse of the Go API (unknown field names, surplus
// positional arguments) and codec failures. Field-level type mismatches found
// while decoding are reported as payload.DecodeError, and transport faults as
// transport.Error; both are structured values in their own right.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConstruct, errors.KindFieldUnknown).
//		Path("Point").
//		Detail("no field named %q", "z").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.FieldUnknown(errors.PhaseConstruct, []string{"Point"}, "z")
//	err := errors.Overflow(errors.PhaseDecode, path, 300, "BYTE")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
