package ofpact

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/fraant/openvswitch/ofpact/mf"
)

// autopathCodec implements the deprecated NXAST_AUTOPATH action: select an
// output port based on a tunnel id and write it into a register field.
type autopathCodec struct{}

func (autopathCodec) FromWire(rec []byte, out *Buffer) error {
	id := binary.BigEndian.Uint32(rec[10:14])
	ofsNbits := binary.BigEndian.Uint16(rec[14:16])
	dst := binary.BigEndian.Uint32(rec[16:20])
	if !zero(rec[20:24]) {
		return newErr(KindBadArgument, "NXAST_AUTOPATH padding must be zero")
	}

	ofs := ofsNbits >> 10
	nBits := (ofsNbits & 0x3ff) + 1

	_, err := out.Put(Header{Type: AUTOPATH, Len: recLen(12)}, id, dst, ofs, nBits)
	return err
}

func (autopathCodec) ToWire(r Record, out *Buffer) error {
	id := binary.BigEndian.Uint32(r.Data[0:4])
	dst := binary.BigEndian.Uint32(r.Data[4:8])
	ofs := binary.BigEndian.Uint16(r.Data[8:10])
	nBits := binary.BigEndian.Uint16(r.Data[10:12])

	ofsNbits := ofs<<10 | (nBits - 1)

	_, err := putVendor(out, act10Vendor, nxastAutopath, id, ofsNbits, dst, make([]byte, 4))
	return err
}

func (autopathCodec) Check(r Record, flow *Flow) error {
	dst := binary.BigEndian.Uint32(r.Data[4:8])
	ofs := int(binary.BigEndian.Uint16(r.Data[8:10]))
	nBits := int(binary.BigEndian.Uint16(r.Data[10:12]))

	field, ok := mf.Lookup(mf.Header(dst))
	if !ok {
		return newErr(KindBadArgument, "AUTOPATH: unknown destination field %#x", dst)
	}
	return field.CheckDst(ofs, nBits)
}

func (autopathCodec) Format(r Record, sb *strings.Builder) {
	id := binary.BigEndian.Uint32(r.Data[0:4])
	dst := binary.BigEndian.Uint32(r.Data[4:8])
	ofs := binary.BigEndian.Uint16(r.Data[8:10])
	nBits := binary.BigEndian.Uint16(r.Data[10:12])

	field, _ := mf.Lookup(mf.Header(dst))
	fmt.Fprintf(sb, "autopath(id=%d)->%s[%d..%d]", id, field.Name, ofs, int(ofs)+int(nBits))
}
