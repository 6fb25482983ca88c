package ofpact

import "encoding/binary"

// wireHeaderLen is the size, in bytes, of the {type, len} prefix shared by
// every OF1.0 action, OF1.1 action and OF1.1 instruction record.
const wireHeaderLen = 4

// wireWalk implements the TLV walk of spec §4.1, shared by the OF1.0 action
// decoder, the OF1.1 action decoder and the OF1.1 instruction decoder. It
// treats span as a sequence of {type uint16, len uint16, ...} records: for
// each one it validates that len is a positive multiple of WireAlign, is at
// least wireHeaderLen, and fits within the remaining span, then invokes fn
// with the full record slice (header included) before advancing by exactly
// len bytes.
//
// wireWalk never partially emits: the first error it returns (or the first
// error fn returns) aborts the walk, and any records already delivered to
// fn must be discarded by the caller.
func wireWalk(span []byte, fn func(typ uint16, rec []byte) error) error {
	offset := 0
	for offset < len(span) {
		if offset+wireHeaderLen > len(span) {
			return newErr(KindBadLen, "truncated header at offset %d", offset)
		}

		typ := binary.BigEndian.Uint16(span[offset : offset+2])
		length := binary.BigEndian.Uint16(span[offset+2 : offset+4])

		if length%WireAlign != 0 {
			return newErr(KindBadLen, "length %d at offset %d not a multiple of %d", length, offset, WireAlign)
		}
		if length < wireHeaderLen {
			return newErr(KindBadLen, "length %d at offset %d shorter than header", length, offset)
		}
		if int(length) > len(span)-offset {
			return newErr(KindBadLen, "length %d at offset %d overruns span", length, offset)
		}

		if err := fn(typ, span[offset:offset+int(length)]); err != nil {
			return err
		}

		offset += int(length)
	}

	if offset != len(span) {
		return newErr(KindBadLen, "trailing %d unconsumed bytes", len(span)-offset)
	}

	return nil
}

// Record is one decoded internal ofpact, as yielded by Walk.
type Record struct {
	Header

	// Data holds the record's fields, i.e. everything after the header
	// up to Len.
	Data []byte

	// Offset is the byte offset of this record's header within the
	// stream passed to Walk.
	Offset int
}

// Walk iterates a well-formed internal ofpact stream, invoking fn for each
// record up to but excluding the terminating END sentinel. The stream is
// assumed to already satisfy the invariants of §3 (it was produced by one
// of this package's decoders); Walk does not re-validate alignment or
// length bounds beyond what is needed to avoid running off the slice.
func Walk(stream []byte, fn func(Record) error) error {
	offset := 0
	for offset < len(stream) {
		if offset+HeaderLen > len(stream) {
			return newErr(KindBadLen, "truncated internal header at offset %d", offset)
		}

		h := Header{
			Type:   Type(stream[offset]),
			Compat: Compat(stream[offset+1]),
			Len:    binary.BigEndian.Uint16(stream[offset+2 : offset+4]),
		}

		if h.Len < HeaderLen || int(h.Len) > len(stream)-offset {
			return newErr(KindBadLen, "internal length %d at offset %d out of range", h.Len, offset)
		}

		if h.Type == END {
			return nil
		}

		rec := Record{
			Header: h,
			Data:   stream[offset+HeaderLen : offset+int(h.Len)],
			Offset: offset,
		}

		if err := fn(rec); err != nil {
			return err
		}

		offset += int(h.Len)
		offset = (offset + Align - 1) / Align * Align
	}

	return nil
}
