package ofpact

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/fraant/openvswitch/ofpact/mf"
)

// multipathCodec implements NXAST_MULTIPATH: hash flow fields into a link
// selector and write it into a register field.
type multipathCodec struct{}

func (multipathCodec) FromWire(rec []byte, out *Buffer) error {
	fields := binary.BigEndian.Uint16(rec[10:12])
	basis := binary.BigEndian.Uint16(rec[12:14])
	if !zero(rec[14:16]) {
		return newErr(KindBadArgument, "NXAST_MULTIPATH padding must be zero")
	}
	algorithm := binary.BigEndian.Uint16(rec[16:18])
	maxLink := binary.BigEndian.Uint16(rec[18:20])
	arg := binary.BigEndian.Uint32(rec[20:24])
	if !zero(rec[24:26]) {
		return newErr(KindBadArgument, "NXAST_MULTIPATH padding must be zero")
	}
	ofsNbits := binary.BigEndian.Uint16(rec[26:28])
	dst := binary.BigEndian.Uint32(rec[28:32])

	ofs := ofsNbits >> 10
	nBits := (ofsNbits & 0x3ff) + 1

	_, err := out.Put(Header{Type: MULTIPATH, Len: recLen(20)},
		fields, basis, algorithm, maxLink, arg, dst, ofs, nBits)
	return err
}

func (multipathCodec) ToWire(r Record, out *Buffer) error {
	fields := binary.BigEndian.Uint16(r.Data[0:2])
	basis := binary.BigEndian.Uint16(r.Data[2:4])
	algorithm := binary.BigEndian.Uint16(r.Data[4:6])
	maxLink := binary.BigEndian.Uint16(r.Data[6:8])
	arg := binary.BigEndian.Uint32(r.Data[8:12])
	dst := binary.BigEndian.Uint32(r.Data[12:16])
	ofs := binary.BigEndian.Uint16(r.Data[16:18])
	nBits := binary.BigEndian.Uint16(r.Data[18:20])

	ofsNbits := ofs<<10 | (nBits - 1)

	_, err := putVendor(out, act10Vendor, nxastMultipath,
		fields, basis, make([]byte, 2), algorithm, maxLink, arg, make([]byte, 2), ofsNbits, dst)
	return err
}

func (multipathCodec) Check(r Record, flow *Flow) error {
	dst := binary.BigEndian.Uint32(r.Data[12:16])
	ofs := int(binary.BigEndian.Uint16(r.Data[16:18]))
	nBits := int(binary.BigEndian.Uint16(r.Data[18:20]))

	field, ok := mf.Lookup(mf.Header(dst))
	if !ok {
		return newErr(KindBadArgument, "MULTIPATH: unknown destination field %#x", dst)
	}
	return field.CheckDst(ofs, nBits)
}

func (multipathCodec) Format(r Record, sb *strings.Builder) {
	algorithm := binary.BigEndian.Uint16(r.Data[4:6])
	maxLink := binary.BigEndian.Uint16(r.Data[6:8])
	dst := binary.BigEndian.Uint32(r.Data[12:16])
	ofs := binary.BigEndian.Uint16(r.Data[16:18])
	nBits := binary.BigEndian.Uint16(r.Data[18:20])

	field, _ := mf.Lookup(mf.Header(dst))
	fmt.Fprintf(sb, "multipath(algorithm=%d,max_link=%d)->%s[%d..%d]",
		algorithm, maxLink, field.Name, ofs, int(ofs)+int(nBits))
}
