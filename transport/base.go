package transport

import (
	"github.com/wippyai/thriftcore/errors"
)

// RawReader is the one primitive a concrete transport provides. It may
// return fewer bytes than requested.
type RawReader interface {
	RawRead(size int) ([]byte, error)
}

// RawReaderFunc adapts a function to RawReader.
type RawReaderFunc func(size int) ([]byte, error)

func (f RawReaderFunc) RawRead(size int) ([]byte, error) {
	return f(size)
}

// Base is the reading half every transport shares.
type Base struct {
	Raw RawReader
}

// Read returns exactly size bytes or an error.
func (b Base) Read(size int) ([]byte, error) {
	return ReadAll(b.Raw, size)
}

// ReadAll calls r until size bytes have arrived. A chunk of exactly size
// bytes is returned as is. A raw error is returned unchanged; an empty chunk
// without error means the source is exhausted.
func ReadAll(r RawReader, size int) ([]byte, error) {
	if size < 0 {
		return nil, errors.InvalidInput(errors.PhaseTransport, "negative read size")
	}

	chunk, err := r.RawRead(size)
	if err != nil {
		return nil, err
	}
	if len(chunk) == size {
		return chunk, nil
	}

	buf := make([]byte, 0, size)
	for {
		if len(chunk) == 0 {
			return nil, NewError(EndOfFile, "read 0 bytes")
		}
		if len(buf)+len(chunk) > size {
			return nil, errors.New(errors.PhaseTransport, errors.KindOverflow).
				Value(len(buf)+len(chunk)).
				Detail("raw read returned %d bytes, want at most %d", len(chunk), size-len(buf)).
				Build()
		}
		buf = append(buf, chunk...)
		if len(buf) == size {
			return buf, nil
		}

		chunk, err = r.RawRead(size - len(buf))
		if err != nil {
			return nil, err
		}
	}
}
