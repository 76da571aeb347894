package fp

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ElementSize is the byte length of an encoded Element.
const ElementSize = 8

// ErrInvalidValue reports an 8-byte encoding whose integer value is
// not a canonical representative, i.e. is >= Modulus.
var ErrInvalidValue = errors.New("fp: encoded value out of field range")

// Bytes returns the canonical little-endian encoding of x.
func (x Element) Bytes() [ElementSize]byte {
	var out [ElementSize]byte
	binary.LittleEndian.PutUint64(out[:], uint64(x))
	return out
}

// FromBytes decodes a little-endian 8-byte encoding. An encoding of a
// value >= Modulus fails with ErrInvalidValue rather than being
// reduced; accepting it would let two distinct wire values decode to
// the same element and break the encoding bijection.
func FromBytes(b []byte) (Element, error) {
	if len(b) != ElementSize {
		return Zero, fmt.Errorf("fp: encoding must be %d bytes, got %d", ElementSize, len(b))
	}
	v := binary.LittleEndian.Uint64(b)
	if v >= Modulus {
		return Zero, ErrInvalidValue
	}
	return Element(v), nil
}
