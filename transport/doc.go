// Package transport defines the byte-source contract the protocol layer reads
// through, and the structured transport error.
//
// Concrete transports implement RawReader. Base turns it into a reader that
// returns exactly the requested number of bytes or fails:
//
//	b := transport.Base{Raw: sock}
//	header, err := b.Read(4)
//
// Transport faults are *Error values: exceptions with the same field layout
// as generated structures, categorized by Category.
package transport
