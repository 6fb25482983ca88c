package ofpact

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/fraant/openvswitch/ofpact/mf"
)

// bundleFixedLen is the size of NXAST_BUNDLE's fixed part, from the start
// of the record (NXAST header included) through the reserved padding,
// before the slave port list begins.
const bundleFixedLen = 30

// bundleCodec implements NXAST_BUNDLE: choose a live slave port from a list
// by hashing flow fields, optionally writing the choice into a register
// instead of outputting to it directly.
type bundleCodec struct{}

func (bundleCodec) FromWire(rec []byte, out *Buffer) error {
	if len(rec) < bundleFixedLen {
		return newErr(KindBadLen, "NXAST_BUNDLE shorter than fixed header")
	}

	algorithm := binary.BigEndian.Uint16(rec[10:12])
	fields := binary.BigEndian.Uint16(rec[12:14])
	basis := binary.BigEndian.Uint16(rec[14:16])
	slaveType := binary.BigEndian.Uint16(rec[16:18])
	nSlaves := binary.BigEndian.Uint16(rec[18:20])
	ofsNbits := binary.BigEndian.Uint16(rec[20:22])
	dst := binary.BigEndian.Uint32(rec[22:26])
	if !zero(rec[26:30]) {
		return newErr(KindBadArgument, "NXAST_BUNDLE padding must be zero")
	}

	slaveBytes := int(nSlaves) * 2
	if len(rec) < bundleFixedLen+slaveBytes {
		return newErr(KindBadLen, "NXAST_BUNDLE slave list shorter than n_slaves declares")
	}
	slaves := rec[bundleFixedLen : bundleFixedLen+slaveBytes]
	if !zero(rec[bundleFixedLen+slaveBytes:]) {
		return newErr(KindBadArgument, "NXAST_BUNDLE trailing padding must be zero")
	}

	ofs := ofsNbits >> 10
	nBits := (ofsNbits & 0x3ff) + 1

	_, err := out.Put(Header{Type: BUNDLE, Len: recLen(16 + len(slaves))},
		algorithm, fields, basis, slaveType, ofs, nBits, dst, slaves)
	return err
}

func (bundleCodec) ToWire(r Record, out *Buffer) error {
	algorithm := binary.BigEndian.Uint16(r.Data[0:2])
	fields := binary.BigEndian.Uint16(r.Data[2:4])
	basis := binary.BigEndian.Uint16(r.Data[4:6])
	slaveType := binary.BigEndian.Uint16(r.Data[6:8])
	ofs := binary.BigEndian.Uint16(r.Data[8:10])
	nBits := binary.BigEndian.Uint16(r.Data[10:12])
	dst := binary.BigEndian.Uint32(r.Data[12:16])
	slaves := r.Data[16:]

	ofsNbits := ofs<<10 | (nBits - 1)
	nSlaves := uint16(len(slaves) / 2)

	offset, err := putVendor(out, act10Vendor, nxastBundle,
		algorithm, fields, basis, slaveType, nSlaves, ofsNbits, dst, make([]byte, 4), slaves)
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

func (bundleCodec) Check(r Record, flow *Flow) error {
	dst := binary.BigEndian.Uint32(r.Data[12:16])
	nBits := int(binary.BigEndian.Uint16(r.Data[10:12]))
	if dst == 0 {
		return nil
	}
	ofs := int(binary.BigEndian.Uint16(r.Data[8:10]))

	field, ok := mf.Lookup(mf.Header(dst))
	if !ok {
		return newErr(KindBadArgument, "BUNDLE: unknown destination field %#x", dst)
	}
	return field.CheckDst(ofs, nBits)
}

func (bundleCodec) Format(r Record, sb *strings.Builder) {
	algorithm := binary.BigEndian.Uint16(r.Data[0:2])
	slaves := r.Data[16:]

	fmt.Fprintf(sb, "bundle(algorithm=%d,slaves=[", algorithm)
	for i := 0; i+1 < len(slaves); i += 2 {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(sb, "%d", binary.BigEndian.Uint16(slaves[i:i+2]))
	}
	sb.WriteString("])")
}
