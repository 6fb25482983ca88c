package ofpact

import (
	"bytes"
	"encoding/binary"
)

// Buffer is the caller-owned, append-only output of every decode and
// encode entry point in this package. It is never retained across calls:
// callers construct one, pass it in, and read Bytes() on success.
//
// Buffer tracks no size field beyond the underlying bytes.Buffer's own
// length, matching the rule that the buffer's size is the single source of
// truth for its current content.
type Buffer struct {
	buf bytes.Buffer
}

// Len returns the number of bytes currently held.
func (b *Buffer) Len() int { return b.buf.Len() }

// Bytes returns the accumulated content. The slice is invalidated by the
// next call to Put, PatchLen or Reset.
func (b *Buffer) Bytes() []byte { return b.buf.Bytes() }

// Reset clears the buffer to empty. Every failure path in this package
// calls Reset before returning an error: partial results are never
// observable.
func (b *Buffer) Reset() { b.buf.Reset() }

// pad appends zero bytes until the buffer's length is a multiple of Align.
func (b *Buffer) pad() {
	if rem := b.buf.Len() % Align; rem != 0 {
		b.buf.Write(make([]byte, Align-rem))
	}
}

// Put pads the buffer to the internal alignment, then appends the header
// followed by each field in order. Fields are written big-endian; a
// []byte field is appended verbatim. Len is stored exactly as given (the
// unpadded size of header plus fields); alignment padding before the next
// record is the next Put call's responsibility, not this one's. Put
// returns the offset at which the record's header begins, for later use
// with PatchLen.
func (b *Buffer) Put(h Header, fields ...interface{}) (int, error) {
	b.pad()
	offset := b.buf.Len()

	if err := binary.Write(&b.buf, binary.BigEndian, h.Type); err != nil {
		return offset, err
	}
	if err := binary.Write(&b.buf, binary.BigEndian, h.Compat); err != nil {
		return offset, err
	}
	if err := binary.Write(&b.buf, binary.BigEndian, h.Len); err != nil {
		return offset, err
	}

	for _, f := range fields {
		switch v := f.(type) {
		case nil:
			continue
		case []byte:
			b.buf.Write(v)
		default:
			if err := binary.Write(&b.buf, binary.BigEndian, v); err != nil {
				return offset, err
			}
		}
	}

	return offset, nil
}

// PatchLen overwrites the 16-bit length field at offset+2 of the record
// previously written at offset (as returned by Put or putVendor). It is
// used after a variable-length payload (NOTE, BUNDLE's slave list, LEARN's
// spec list, the actions wrapped by APPLY_ACTIONS) has been appended, once
// the final record length is known.
func (b *Buffer) PatchLen(offset int, length uint16) {
	binary.BigEndian.PutUint16(b.buf.Bytes()[offset+2:offset+4], length)
}

// PutEnd appends the sentinel END record.
func (b *Buffer) PutEnd() {
	b.Put(Header{Type: END, Len: recLen(0)})
}

// Write appends raw bytes with no padding or header. It is used by the
// wire encoders, whose record sizes are already multiples of WireAlign by
// construction.
func (b *Buffer) Write(p []byte) (int, error) {
	return b.buf.Write(p)
}
