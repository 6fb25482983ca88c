package ofpact

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/fraant/openvswitch/ofpact/mf"
)

// regMoveCodec implements NXAST_REG_MOVE: copy (src_ofs, n_bits) bits from
// the src field into (dst_ofs, n_bits) bits of the dst field.
type regMoveCodec struct{}

func (regMoveCodec) FromWire(rec []byte, out *Buffer) error {
	nBits := binary.BigEndian.Uint16(rec[10:12])
	srcOfs := binary.BigEndian.Uint16(rec[12:14])
	dstOfs := binary.BigEndian.Uint16(rec[14:16])
	src := binary.BigEndian.Uint32(rec[16:20])
	dst := binary.BigEndian.Uint32(rec[20:24])

	_, err := out.Put(Header{Type: REG_MOVE, Len: recLen(14)}, src, dst, srcOfs, dstOfs, nBits)
	return err
}

func (regMoveCodec) ToWire(r Record, out *Buffer) error {
	src := binary.BigEndian.Uint32(r.Data[0:4])
	dst := binary.BigEndian.Uint32(r.Data[4:8])
	srcOfs := binary.BigEndian.Uint16(r.Data[8:10])
	dstOfs := binary.BigEndian.Uint16(r.Data[10:12])
	nBits := binary.BigEndian.Uint16(r.Data[12:14])

	_, err := putVendor(out, act10Vendor, nxastRegMove, nBits, srcOfs, dstOfs, src, dst)
	return err
}

func (regMoveCodec) Check(r Record, flow *Flow) error {
	src := binary.BigEndian.Uint32(r.Data[0:4])
	dst := binary.BigEndian.Uint32(r.Data[4:8])
	srcOfs := binary.BigEndian.Uint16(r.Data[8:10])
	dstOfs := binary.BigEndian.Uint16(r.Data[10:12])
	nBits := int(binary.BigEndian.Uint16(r.Data[12:14]))

	srcField, ok := mf.Lookup(mf.Header(src))
	if !ok {
		return newErr(KindBadArgument, "REG_MOVE: unknown source field %#x", src)
	}
	if err := srcField.CheckSrc(int(srcOfs), nBits); err != nil {
		return newErr(KindBadArgument, "REG_MOVE: %v", err)
	}
	if srcField.Prereq != "" && flow != nil && !flow.HasPrereq(srcField.Prereq) {
		return newErr(KindBadArgument, "REG_MOVE: source requires %s", srcField.Prereq)
	}

	dstField, ok := mf.Lookup(mf.Header(dst))
	if !ok {
		return newErr(KindBadArgument, "REG_MOVE: unknown destination field %#x", dst)
	}
	if err := dstField.CheckDst(int(dstOfs), nBits); err != nil {
		return newErr(KindBadArgument, "REG_MOVE: %v", err)
	}
	if dstField.Prereq != "" && flow != nil && !flow.HasPrereq(dstField.Prereq) {
		return newErr(KindBadArgument, "REG_MOVE: destination requires %s", dstField.Prereq)
	}

	return nil
}

func (regMoveCodec) Format(r Record, sb *strings.Builder) {
	src := binary.BigEndian.Uint32(r.Data[0:4])
	dst := binary.BigEndian.Uint32(r.Data[4:8])
	srcOfs := binary.BigEndian.Uint16(r.Data[8:10])
	dstOfs := binary.BigEndian.Uint16(r.Data[10:12])
	nBits := binary.BigEndian.Uint16(r.Data[12:14])

	srcField, _ := mf.Lookup(mf.Header(src))
	dstField, _ := mf.Lookup(mf.Header(dst))

	fmt.Fprintf(sb, "move:%s[%d..%d]->%s[%d..%d]",
		srcField.Name, srcOfs, int(srcOfs)+int(nBits),
		dstField.Name, dstOfs, int(dstOfs)+int(nBits))
}
