package domain

import (
	"encoding/binary"
)

// Encoder accumulates the wire form of a value. Multi-byte scalars use the
// current byte order, which fields may override for their own subtree.
type Encoder struct {
	buf   []byte
	order binary.AppendByteOrder
}

// NewEncoder returns an encoder using order, with room for sizeHint bytes.
func NewEncoder(order binary.AppendByteOrder, sizeHint int) *Encoder {
	if order == nil {
		order = binary.LittleEndian
	}

	return &Encoder{
		buf:   make([]byte, 0, sizeHint),
		order: order,
	}
}

// Order returns the byte order currently in effect.
func (enc *Encoder) Order() binary.AppendByteOrder {
	return enc.order
}

// WriteUint writes the low size bytes of v. size must be 1, 2, 4 or 8.
func (enc *Encoder) WriteUint(v uint64, size int) {
	switch size {
	case 1:
		enc.buf = append(enc.buf, byte(v))
	case 2:
		enc.buf = enc.order.AppendUint16(enc.buf, uint16(v))
	case 4:
		enc.buf = enc.order.AppendUint32(enc.buf, uint32(v))
	default:
		enc.buf = enc.order.AppendUint64(enc.buf, v)
	}
}

// WriteBytes writes p verbatim.
func (enc *Encoder) WriteBytes(p []byte) {
	enc.buf = append(enc.buf, p...)
}

// Pad writes n zero bytes.
func (enc *Encoder) Pad(n int) {
	for range n {
		enc.buf = append(enc.buf, 0)
	}
}

// Written returns the number of bytes written so far.
func (enc *Encoder) Written() int {
	return len(enc.buf)
}

// Bytes returns the encoded bytes.
func (enc *Encoder) Bytes() []byte {
	return enc.buf
}

// withOrder runs fn with order in effect. A nil order keeps the current one.
func (enc *Encoder) withOrder(order binary.AppendByteOrder, fn func()) {
	if order == nil {
		fn()
		return
	}

	prev := enc.order
	enc.order = order

	defer func() { enc.order = prev }()

	fn()
}

// Serialize encodes v with the given global byte order.
func Serialize(v Value, order binary.AppendByteOrder) []byte {
	enc := NewEncoder(order, v.SerializedSize())
	v.Serialize(enc)

	return enc.Bytes()
}
