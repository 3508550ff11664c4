package ttype

import "strconv"

// Tag is a Thrift type marker as it appears on the wire.
type Tag uint8

const (
	STOP   Tag = 0
	VOID   Tag = 1
	BOOL   Tag = 2
	BYTE   Tag = 3
	I08    Tag = 3
	DOUBLE Tag = 4
	I16    Tag = 6
	I32    Tag = 8
	I64    Tag = 10
	STRING Tag = 11
	UTF7   Tag = 11
	BINARY Tag = 11 // parsing only; behaves as STRING everywhere else
	STRUCT Tag = 12
	MAP    Tag = 13
	SET    Tag = 14
	LIST   Tag = 15
	UTF8   Tag = 16
	UTF16  Tag = 17
)

// Aliases share an index, so I08, UTF7 and BINARY collapse onto the
// canonical name of the tag they alias.
var tagNames = [...]string{
	STOP:   "STOP",
	VOID:   "VOID",
	BOOL:   "BOOL",
	BYTE:   "BYTE",
	DOUBLE: "DOUBLE",
	I16:    "I16",
	I32:    "I32",
	I64:    "I64",
	STRING: "STRING",
	STRUCT: "STRUCT",
	MAP:    "MAP",
	SET:    "SET",
	LIST:   "LIST",
	UTF8:   "UTF8",
	UTF16:  "UTF16",
}

var tagsByName = map[string]Tag{
	"STOP":   STOP,
	"VOID":   VOID,
	"BOOL":   BOOL,
	"BYTE":   BYTE,
	"I08":    I08,
	"DOUBLE": DOUBLE,
	"I16":    I16,
	"I32":    I32,
	"I64":    I64,
	"STRING": STRING,
	"UTF7":   UTF7,
	"BINARY": BINARY,
	"STRUCT": STRUCT,
	"MAP":    MAP,
	"SET":    SET,
	"LIST":   LIST,
	"UTF8":   UTF8,
	"UTF16":  UTF16,
}

// String returns the canonical name of the tag.
func (t Tag) String() string {
	if t.Valid() {
		return tagNames[t]
	}
	return "UNKNOWN(" + strconv.Itoa(int(t)) + ")"
}

// Valid reports whether t is one of the defined tags.
func (t Tag) Valid() bool {
	return int(t) < len(tagNames) && tagNames[t] != ""
}

// IsContainer reports whether values of this tag hold nested values.
func (t Tag) IsContainer() bool {
	switch t {
	case MAP, SET, LIST:
		return true
	default:
		return false
	}
}

// Lookup resolves a canonical or alias name to its tag.
func Lookup(name string) (Tag, bool) {
	t, ok := tagsByName[name]
	return t, ok
}

// MessageType is the kind of an RPC message envelope.
type MessageType uint8

const (
	CALL      MessageType = 1
	REPLY     MessageType = 2
	EXCEPTION MessageType = 3
	ONEWAY    MessageType = 4
)

var messageTypeNames = [...]string{
	CALL:      "CALL",
	REPLY:     "REPLY",
	EXCEPTION: "EXCEPTION",
	ONEWAY:    "ONEWAY",
}

func (m MessageType) String() string {
	if m >= CALL && int(m) < len(messageTypeNames) {
		return messageTypeNames[m]
	}
	return "UNKNOWN(" + strconv.Itoa(int(m)) + ")"
}
