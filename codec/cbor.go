package codec

import (
	"bytes"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/wippyai/thriftcore/errors"
	"github.com/wippyai/thriftcore/payload"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	// Every integer decodes as int64 so range checks have a single input type.
	decMode, err = cbor.DecOptions{
		IntDec: cbor.IntDecConvertSigned,
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// Writer encodes structs onto an io.Writer, one CBOR item per struct.
type Writer struct {
	enc *cbor.Encoder
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{enc: encMode.NewEncoder(w)}
}

// WriteStruct implements payload.Writer.
func (w *Writer) WriteStruct(s payload.Struct) error {
	m, err := encodeStruct(s, nil)
	if err != nil {
		return err
	}
	if err := w.enc.Encode(m); err != nil {
		return errors.Wrap(errors.PhaseEncode, errors.KindInvalidData, err, "write cbor item")
	}
	return nil
}

// Reader decodes structs from an io.Reader, one CBOR item per struct.
type Reader struct {
	dec *cbor.Decoder
}

func NewReader(r io.Reader) *Reader {
	return &Reader{dec: decMode.NewDecoder(r)}
}

// ReadStruct implements payload.Reader. Fields absent from the input keep
// the values the constructor gave them; ids unknown to the type are skipped.
func (r *Reader) ReadStruct(s payload.Struct) error {
	var item any
	if err := r.dec.Decode(&item); err != nil {
		return errors.Wrap(errors.PhaseDecode, errors.KindInvalidData, err, "read cbor item")
	}
	return decodeStruct(item, s, nil)
}

// Marshal encodes s into a standalone CBOR item.
func Marshal(s payload.Struct) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Write(NewWriter(&buf)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes one CBOR item into s.
func Unmarshal(data []byte, s payload.Struct) error {
	return s.Read(NewReader(bytes.NewReader(data)))
}

// Diagnose returns the CBOR diagnostic notation (RFC 8949 §8) for the
// entire contents of data.
func Diagnose(data []byte) (string, error) {
	return cbor.Diagnose(data)
}
