package payload

import "sync/atomic"

var identities atomic.Uint64

func nextIdentity() uint64 {
	return identities.Add(1)
}

// Exception is a struct instance that is also an error. Its identity token
// is assigned at construction and is what Equal and Hash use; field values
// play no part.
type Exception struct {
	Payload
	id uint64
}

// Identity returns the occurrence token of the exception.
func (e *Exception) Identity() uint64 {
	return e.id
}

// Hash returns the identity token, suitable for identity-keyed sets.
func (e *Exception) Hash() uint64 {
	return e.id
}

// Equal reports whether other is this very occurrence.
func (e *Exception) Equal(other Struct) bool {
	if isNil(other) {
		return false
	}
	o, ok := other.(interface{ Identity() uint64 })
	return ok && o.Identity() == e.id
}

func (e *Exception) Read(r Reader) error {
	return r.ReadStruct(e)
}

func (e *Exception) Write(w Writer) error {
	return w.WriteStruct(e)
}

func (e *Exception) Error() string {
	return e.String()
}
