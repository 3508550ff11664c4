// Package ttype defines the Thrift type tags and type descriptors.
//
// A Tag identifies a primitive, container or struct kind. A Descriptor is a
// Tag plus the nested descriptors a container needs (element, key/value) or
// the struct type it refers to. Descriptors are rendered for diagnostics only:
//
//	ttype.List(ttype.Scalar(ttype.I32)).String()          // "LIST<I32>"
//	ttype.Format(ttype.MAP, [2]any{ttype.STRING, ttype.I32}) // "MAP<STRING, I32>"
//
// The tag table is constant data and safe for concurrent use.
package ttype
