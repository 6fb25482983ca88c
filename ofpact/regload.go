package ofpact

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/fraant/openvswitch/ofpact/mf"
)

// regLoadCodec implements NXAST_REG_LOAD: write the low n_bits of value
// into (ofs, n_bits) of the dst field.
type regLoadCodec struct{}

// ofs_nbits packing mirrors decodeOutputReg's: top 6 bits ofs, low 10 bits
// n_bits-1.
func (regLoadCodec) FromWire(rec []byte, out *Buffer) error {
	ofsNbits := binary.BigEndian.Uint16(rec[10:12])
	dst := binary.BigEndian.Uint32(rec[12:16])
	value := binary.BigEndian.Uint64(rec[16:24])

	ofs := ofsNbits >> 10
	nBits := (ofsNbits & 0x3ff) + 1

	_, err := out.Put(Header{Type: REG_LOAD, Len: recLen(16)}, dst, value, ofs, nBits)
	return err
}

func (regLoadCodec) ToWire(r Record, out *Buffer) error {
	dst := binary.BigEndian.Uint32(r.Data[0:4])
	value := binary.BigEndian.Uint64(r.Data[4:12])
	ofs := binary.BigEndian.Uint16(r.Data[12:14])
	nBits := binary.BigEndian.Uint16(r.Data[14:16])

	ofsNbits := ofs<<10 | (nBits - 1)

	_, err := putVendor(out, act10Vendor, nxastRegLoad, ofsNbits, dst, value)
	return err
}

func (regLoadCodec) Check(r Record, flow *Flow) error {
	dst := binary.BigEndian.Uint32(r.Data[0:4])
	ofs := int(binary.BigEndian.Uint16(r.Data[12:14]))
	nBits := int(binary.BigEndian.Uint16(r.Data[14:16]))

	field, ok := mf.Lookup(mf.Header(dst))
	if !ok {
		return newErr(KindBadArgument, "REG_LOAD: unknown destination field %#x", dst)
	}
	if err := field.CheckDst(ofs, nBits); err != nil {
		return newErr(KindBadArgument, "REG_LOAD: %v", err)
	}
	if field.Prereq != "" && flow != nil && !flow.HasPrereq(field.Prereq) {
		return newErr(KindBadArgument, "REG_LOAD: destination requires %s", field.Prereq)
	}

	return nil
}

func (regLoadCodec) Format(r Record, sb *strings.Builder) {
	dst := binary.BigEndian.Uint32(r.Data[0:4])
	value := binary.BigEndian.Uint64(r.Data[4:12])
	ofs := binary.BigEndian.Uint16(r.Data[12:14])
	nBits := binary.BigEndian.Uint16(r.Data[14:16])

	field, _ := mf.Lookup(mf.Header(dst))
	fmt.Fprintf(sb, "load:%#x->%s[%d..%d]", value, field.Name, ofs, int(ofs)+int(nBits))
}
