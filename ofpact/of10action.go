package ofpact

import (
	"encoding/binary"
	"net"
)

// OF1.0 wire action type codes (OFPAT_*).
const (
	act10Output     uint16 = 0
	act10SetVLANVID uint16 = 1
	act10SetVLANPCP uint16 = 2
	act10StripVLAN  uint16 = 3
	act10SetDLSrc   uint16 = 4
	act10SetDLDst   uint16 = 5
	act10SetNWSrc   uint16 = 6
	act10SetNWDst   uint16 = 7
	act10SetNWTos   uint16 = 8
	act10SetTPSrc   uint16 = 9
	act10SetTPDst   uint16 = 10
	act10Enqueue    uint16 = 11
	act10Vendor     uint16 = 0xffff
)

// act10Sizes gives the exact wire size of every fixed-size OF1.0 action.
// Vendor is handled separately since its size is variable.
var act10Sizes = map[uint16]int{
	act10Output:     8,
	act10SetVLANVID: 8,
	act10SetVLANPCP: 8,
	act10StripVLAN:  8,
	act10SetDLSrc:   16,
	act10SetDLDst:   16,
	act10SetNWSrc:   8,
	act10SetNWDst:   8,
	act10SetNWTos:   8,
	act10SetTPSrc:   8,
	act10SetTPDst:   8,
	act10Enqueue:    16,
}

// DecodeV10 parses a span of OF1.0 actions into the internal stream
// appended to out. actionsLen must be a positive multiple of WireAlign and
// no larger than len(wire). On any error the first error is returned and
// out is reset to empty.
func DecodeV10(wire []byte, actionsLen int, out *Buffer) error {
	if actionsLen < 0 || actionsLen%WireAlign != 0 || actionsLen > len(wire) {
		out.Reset()
		return newErr(KindBadLen, "invalid actions_len %d", actionsLen)
	}

	span := wire[:actionsLen]

	err := wireWalk(span, func(typ uint16, rec []byte) error {
		return decodeAction10(typ, rec, out)
	})
	if err != nil {
		out.Reset()
		return err
	}

	out.PutEnd()
	return nil
}

func decodeAction10(typ uint16, rec []byte, out *Buffer) error {
	if typ == act10Vendor {
		return decodeVendor(rec, out)
	}

	size, ok := act10Sizes[typ]
	if !ok {
		diagnostic("unknown OF1.0 action type %#x", typ)
		return newErr(KindBadType, "unknown OF1.0 action type %#x", typ)
	}
	if len(rec) != size {
		return newErr(KindBadLen, "OF1.0 action type %#x has length %d, want %d", typ, len(rec), size)
	}

	body := rec[wireHeaderLen:]

	switch typ {
	case act10Output:
		port := Port(binary.BigEndian.Uint16(body[0:2]))
		maxLen := binary.BigEndian.Uint16(body[2:4])
		if !ValidOutPort(port) {
			return newErr(KindBadOutPort, "OF1.0 output port %s", port)
		}
		_, err := out.Put(Header{Type: OUTPUT, Len: recLen(4)}, port, maxLen)
		return err

	case act10Enqueue:
		port := Port(binary.BigEndian.Uint16(body[0:2]))
		queue := binary.BigEndian.Uint32(body[8:12])
		if !ValidEnqueuePort(port) {
			return newErr(KindBadOutPort, "OF1.0 enqueue port %s", port)
		}
		_, err := out.Put(Header{Type: ENQUEUE, Len: recLen(8)}, port, uint16(0), queue)
		return err

	case act10SetVLANVID:
		vid := binary.BigEndian.Uint16(body[0:2])
		if vid > 0x0fff {
			return newErr(KindBadArgument, "SET_VLAN_VID %#x exceeds 12 bits", vid)
		}
		_, err := out.Put(Header{Type: SET_VLAN_VID, Len: recLen(2)}, vid)
		return err

	case act10SetVLANPCP:
		pcp := body[0]
		if pcp > 0x7 {
			return newErr(KindBadArgument, "SET_VLAN_PCP %#x exceeds 3 bits", pcp)
		}
		_, err := out.Put(Header{Type: SET_VLAN_PCP, Len: recLen(1)}, pcp)
		return err

	case act10StripVLAN:
		_, err := out.Put(Header{Type: STRIP_VLAN, Len: HeaderLen})
		return err

	case act10SetDLSrc:
		var mac [6]byte
		copy(mac[:], body[0:6])
		_, err := out.Put(Header{Type: SET_ETH_SRC, Len: recLen(6)}, mac[:])
		return err

	case act10SetDLDst:
		var mac [6]byte
		copy(mac[:], body[0:6])
		_, err := out.Put(Header{Type: SET_ETH_DST, Len: recLen(6)}, mac[:])
		return err

	case act10SetNWSrc:
		addr := binary.BigEndian.Uint32(body[0:4])
		_, err := out.Put(Header{Type: SET_IPV4_SRC, Len: recLen(4)}, addr)
		return err

	case act10SetNWDst:
		addr := binary.BigEndian.Uint32(body[0:4])
		_, err := out.Put(Header{Type: SET_IPV4_DST, Len: recLen(4)}, addr)
		return err

	case act10SetNWTos:
		tos := body[0]
		if tos&0x3 != 0 {
			return newErr(KindBadArgument, "SET_NW_TOS %#x has non-zero reserved bits", tos)
		}
		dscp := tos >> 2
		_, err := out.Put(Header{Type: SET_IPV4_DSCP, Len: recLen(1)}, dscp)
		return err

	case act10SetTPSrc:
		port := binary.BigEndian.Uint16(body[0:2])
		_, err := out.Put(Header{Type: SET_L4_SRC_PORT, Len: recLen(2)}, port)
		return err

	case act10SetTPDst:
		port := binary.BigEndian.Uint16(body[0:2])
		_, err := out.Put(Header{Type: SET_L4_DST_PORT, Len: recLen(2)}, port)
		return err
	}

	return newErr(KindBadType, "unhandled OF1.0 action type %#x", typ)
}

// EncodeV10 walks the internal stream and appends the corresponding OF1.0
// wire actions to out. Types with no native OF1.0 action (the NXAST-only
// types and SET_QUEUE) are encoded as Nicira vendor actions.
func EncodeV10(stream []byte, out *Buffer) error {
	err := Walk(stream, func(r Record) error {
		return encodeAction10(r, out)
	})
	if err != nil {
		out.Reset()
		return err
	}
	return nil
}

func encodeAction10(r Record, out *Buffer) error {
	switch r.Type {
	case OUTPUT:
		port := Port(binary.BigEndian.Uint16(r.Data[0:2]))
		maxLen := binary.BigEndian.Uint16(r.Data[2:4])
		return putAction10(out, act10Output, port, maxLen)

	case ENQUEUE:
		port := Port(binary.BigEndian.Uint16(r.Data[0:2]))
		queue := binary.BigEndian.Uint32(r.Data[4:8])
		return putAction10(out, act10Enqueue, port, uint16(0), make([]byte, 4), queue)

	case SET_VLAN_VID:
		vid := binary.BigEndian.Uint16(r.Data[0:2])
		return putAction10(out, act10SetVLANVID, vid, uint16(0))

	case SET_VLAN_PCP:
		return putAction10(out, act10SetVLANPCP, r.Data[0], make([]byte, 3))

	case STRIP_VLAN:
		return putAction10(out, act10StripVLAN, make([]byte, 4))

	case SET_ETH_SRC:
		return putAction10(out, act10SetDLSrc, r.Data[0:6], make([]byte, 6))

	case SET_ETH_DST:
		return putAction10(out, act10SetDLDst, r.Data[0:6], make([]byte, 6))

	case SET_IPV4_SRC:
		return putAction10(out, act10SetNWSrc, binary.BigEndian.Uint32(r.Data[0:4]))

	case SET_IPV4_DST:
		return putAction10(out, act10SetNWDst, binary.BigEndian.Uint32(r.Data[0:4]))

	case SET_IPV4_DSCP:
		tos := r.Data[0] << 2
		return putAction10(out, act10SetNWTos, tos, make([]byte, 3))

	case SET_L4_SRC_PORT:
		return putAction10(out, act10SetTPSrc, binary.BigEndian.Uint16(r.Data[0:2]), uint16(0))

	case SET_L4_DST_PORT:
		return putAction10(out, act10SetTPDst, binary.BigEndian.Uint16(r.Data[0:2]), uint16(0))

	default:
		return encodeVendorAction10(r, out)
	}
	return nil
}

// putAction10 writes a complete OF1.0 action: {type, len} followed by
// fields, with len computed from the encoded field bytes.
func putAction10(out *Buffer, typ uint16, fields ...interface{}) error {
	var body []byte
	for _, f := range fields {
		body = append(body, encodeBE(f)...)
	}

	length := wireHeaderLen + len(body)
	hdr := make([]byte, wireHeaderLen)
	binary.BigEndian.PutUint16(hdr[0:2], typ)
	binary.BigEndian.PutUint16(hdr[2:4], uint16(length))

	out.Write(hdr)
	out.Write(body)
	return nil
}

// encodeBE renders a scalar or byte slice in network byte order.
func encodeBE(v interface{}) []byte {
	switch x := v.(type) {
	case []byte:
		return x
	case [6]byte:
		return x[:]
	case net.HardwareAddr:
		return []byte(x)
	case uint8:
		return []byte{x}
	case uint16:
		b := make([]byte, 2)
		binary.BigEndian.PutUint16(b, x)
		return b
	case uint32:
		b := make([]byte, 4)
		binary.BigEndian.PutUint32(b, x)
		return b
	case uint64:
		b := make([]byte, 8)
		binary.BigEndian.PutUint64(b, x)
		return b
	case Port:
		return encodeBE(uint16(x))
	}
	panic("ofpact: encodeBE: unsupported type")
}
