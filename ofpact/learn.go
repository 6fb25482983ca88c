package ofpact

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// learnFixedLen is the size of NXAST_LEARN's fixed header, before the
// variable flow_mod_spec list begins.
const learnFixedLen = 32

// learnCodec implements NXAST_LEARN. The fixed header fields (timeouts,
// priority, cookie, flags, table) are decoded and validated in full; the
// flow_mod_spec list itself is carried as an opaque, verbatim blob rather
// than parsed field-by-field, since its grammar is a protocol in its own
// right and this codec only needs to round-trip it intact.
type learnCodec struct{}

func (learnCodec) FromWire(rec []byte, out *Buffer) error {
	if len(rec) < learnFixedLen {
		return newErr(KindBadLen, "NXAST_LEARN shorter than fixed header")
	}

	idle := binary.BigEndian.Uint16(rec[10:12])
	hard := binary.BigEndian.Uint16(rec[12:14])
	priority := binary.BigEndian.Uint16(rec[14:16])
	cookie := binary.BigEndian.Uint64(rec[16:24])
	flags := binary.BigEndian.Uint16(rec[24:26])
	table := rec[26]
	if rec[27] != 0 {
		return newErr(KindBadArgument, "NXAST_LEARN padding must be zero")
	}
	finIdle := binary.BigEndian.Uint16(rec[28:30])
	finHard := binary.BigEndian.Uint16(rec[30:32])
	specs := rec[learnFixedLen:]

	_, err := out.Put(Header{Type: LEARN, Len: recLen(21 + len(specs))},
		idle, hard, priority, cookie, flags, table, finIdle, finHard, specs)
	return err
}

func (learnCodec) ToWire(r Record, out *Buffer) error {
	idle := binary.BigEndian.Uint16(r.Data[0:2])
	hard := binary.BigEndian.Uint16(r.Data[2:4])
	priority := binary.BigEndian.Uint16(r.Data[4:6])
	cookie := binary.BigEndian.Uint64(r.Data[6:14])
	flags := binary.BigEndian.Uint16(r.Data[14:16])
	table := r.Data[16]
	finIdle := binary.BigEndian.Uint16(r.Data[17:19])
	finHard := binary.BigEndian.Uint16(r.Data[19:21])
	specs := r.Data[21:]

	offset, err := putVendor(out, act10Vendor, nxastLearn,
		idle, hard, priority, cookie, flags, table, uint8(0), finIdle, finHard, specs)
	if err != nil {
		return err
	}

	total := out.Len() - offset
	if pad := total % WireAlign; pad != 0 {
		out.Write(make([]byte, WireAlign-pad))
	}
	out.PatchLen(offset, uint16(out.Len()-offset))
	return nil
}

func (learnCodec) Check(r Record, flow *Flow) error {
	table := r.Data[16]
	if table == 0xff {
		return newErr(KindBadArgument, "LEARN: table_id 0xff (OFPTT_ALL) is not a valid target table")
	}
	return nil
}

func (learnCodec) Format(r Record, sb *strings.Builder) {
	priority := binary.BigEndian.Uint16(r.Data[4:6])
	cookie := binary.BigEndian.Uint64(r.Data[6:14])
	table := r.Data[16]

	fmt.Fprintf(sb, "learn(table=%d,priority=%d,cookie=%#x)", table, priority, cookie)
}
