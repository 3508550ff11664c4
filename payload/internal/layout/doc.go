// Package layout defines the slot table behind every struct type.
//
// A Table fixes, once per struct type, the position of every named field in
// an instance's value array. Constructor parameters take the leading slots in
// parameter order; fields known only from the field spec follow in ascending
// id order. Instances then store values by index instead of by name.
//
// This package is internal to payload.
package layout
