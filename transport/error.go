package transport

import (
	"strconv"

	"github.com/wippyai/thriftcore/payload"
	"github.com/wippyai/thriftcore/ttype"
)

// Category classifies a transport fault.
type Category int32

const (
	Unknown     Category = 0
	NotOpen     Category = 1
	AlreadyOpen Category = 2
	TimedOut    Category = 3
	EndOfFile   Category = 4
)

var categoryNames = [...]string{
	Unknown:     "UNKNOWN",
	NotOpen:     "NOT_OPEN",
	AlreadyOpen: "ALREADY_OPEN",
	TimedOut:    "TIMED_OUT",
	EndOfFile:   "END_OF_FILE",
}

func (c Category) String() string {
	if c >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "Category(" + strconv.Itoa(int(c)) + ")"
}

// ErrorType is the struct type of every transport error.
var ErrorType = payload.Define("TTransportException",
	payload.ConstructorSpec{
		{Name: "type", Value: Unknown},
		{Name: "message", Value: nil},
	},
	payload.FieldSpec{
		1: {Type: ttype.Scalar(ttype.STRING), Name: "message"},
		2: {Type: ttype.Scalar(ttype.I32), Name: "type"},
	},
	payload.AsException(),
)

// Error is a transport fault. Like every exception it compares by identity.
type Error struct {
	*payload.Exception
}

// NewError builds a transport error with a fresh identity.
func NewError(category Category, message string) *Error {
	return &Error{Exception: ErrorType.MustNewException(
		payload.With("type", category),
		payload.With("message", message),
	)}
}

// Category returns the fault category. A value decoded off the wire as a
// plain int32 is converted.
func (e *Error) Category() Category {
	v, _ := e.Get("type")
	switch c := v.(type) {
	case Category:
		return c
	case int32:
		return Category(c)
	default:
		return Unknown
	}
}

// Message returns the message, or "" when none was given.
func (e *Error) Message() string {
	v, _ := e.Get("message")
	s, _ := v.(string)
	return s
}

// Is matches any *Error of the same category, so callers can test for
// errors.Is(err, transport.NewError(transport.EndOfFile, "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Category() == e.Category()
}
