package ofpact

import "encoding/binary"

// OF1.1 wire action type codes (OFPAT_*). Several overlap numerically with
// their OF1.0 counterparts but carry different bodies (OUTPUT's port is
// 32 bits wide, for instance), so OF1.0 and OF1.1 each get their own
// decode table rather than sharing act10Sizes.
const (
	act11Output        uint16 = 0
	act11SetVLANVID    uint16 = 1
	act11SetVLANPCP    uint16 = 2
	act11SetDLSrc      uint16 = 3
	act11SetDLDst      uint16 = 4
	act11SetNWSrc      uint16 = 5
	act11SetNWDst      uint16 = 6
	act11SetNWTos      uint16 = 7
	act11SetNWECN      uint16 = 8
	act11SetTPSrc      uint16 = 9
	act11SetTPDst      uint16 = 10
	act11CopyTTLOut    uint16 = 11
	act11CopyTTLIn     uint16 = 12
	act11SetMPLSLabel  uint16 = 13
	act11SetMPLSTC     uint16 = 14
	act11SetMPLSTTL    uint16 = 15
	act11DecMPLSTTL    uint16 = 16
	act11PushVLAN      uint16 = 17
	act11PopVLAN       uint16 = 18
	act11PushMPLS      uint16 = 19
	act11PopMPLS       uint16 = 20
	act11SetQueue      uint16 = 21
	act11Group         uint16 = 22
	act11SetNWTTL      uint16 = 23
	act11DecNWTTL      uint16 = 24
	act11Experimenter  uint16 = 0xffff
)

// act11Sizes gives the exact wire size of every fixed-size OF1.1 action
// this codec understands. Types recognized by OF1.1 but out of scope
// (SET_NW_ECN, the TTL copy/set/decrement actions, MPLS, VLAN push/pop,
// group) are absent on purpose: spec §4.3 only asks for the actions that also exist
// in OF1.0 plus SET_QUEUE, so anything else is reported as KindBadType
// exactly like an unknown code would be.
var act11Sizes = map[uint16]int{
	act11Output:     16,
	act11SetVLANVID: 8,
	act11SetVLANPCP: 8,
	act11SetDLSrc:   16,
	act11SetDLDst:   16,
	act11SetNWSrc:   8,
	act11SetNWDst:   8,
	act11SetNWTos:   8,
	act11SetTPSrc:   8,
	act11SetTPDst:   8,
	act11SetQueue:   8,
}

// DecodeV11 parses a span of OF1.1 actions into the internal stream
// appended to out, exactly as DecodeV10 does for OF1.0.
func DecodeV11(wire []byte, actionsLen int, out *Buffer) error {
	if actionsLen < 0 || actionsLen%WireAlign != 0 || actionsLen > len(wire) {
		out.Reset()
		return newErr(KindBadLen, "invalid actions_len %d", actionsLen)
	}

	span := wire[:actionsLen]

	err := wireWalk(span, func(typ uint16, rec []byte) error {
		return decodeAction11(typ, rec, out)
	})
	if err != nil {
		out.Reset()
		return err
	}

	out.PutEnd()
	return nil
}

func decodeAction11(typ uint16, rec []byte, out *Buffer) error {
	if typ == act11Experimenter {
		return decodeVendor(rec, out)
	}

	size, ok := act11Sizes[typ]
	if !ok {
		diagnostic("unknown or unsupported OF1.1 action type %#x", typ)
		return newErr(KindBadType, "unknown or unsupported OF1.1 action type %#x", typ)
	}
	if len(rec) != size {
		return newErr(KindBadLen, "OF1.1 action type %#x has length %d, want %d", typ, len(rec), size)
	}

	body := rec[wireHeaderLen:]

	switch typ {
	case act11Output:
		port11 := binary.BigEndian.Uint32(body[0:4])
		maxLen := binary.BigEndian.Uint16(body[4:6])
		if !zero(body[6:12]) {
			return newErr(KindBadArgument, "OF1.1 OUTPUT padding must be zero")
		}
		port, err := bridgePort11to16(port11)
		if err != nil {
			return err
		}
		if !ValidOutPort(port) {
			return newErr(KindBadOutPort, "OF1.1 output port %s", port)
		}
		_, err = out.Put(Header{Type: OUTPUT, Len: recLen(4)}, port, maxLen)
		return err

	case act11SetVLANVID:
		vid := binary.BigEndian.Uint16(body[0:2])
		if vid > 0x0fff {
			return newErr(KindBadArgument, "SET_VLAN_VID %#x exceeds 12 bits", vid)
		}
		_, err := out.Put(Header{Type: SET_VLAN_VID, Len: recLen(2)}, vid)
		return err

	case act11SetVLANPCP:
		pcp := body[0]
		if pcp > 0x7 {
			return newErr(KindBadArgument, "SET_VLAN_PCP %#x exceeds 3 bits", pcp)
		}
		_, err := out.Put(Header{Type: SET_VLAN_PCP, Len: recLen(1)}, pcp)
		return err

	case act11SetDLSrc:
		var mac [6]byte
		copy(mac[:], body[0:6])
		_, err := out.Put(Header{Type: SET_ETH_SRC, Len: recLen(6)}, mac[:])
		return err

	case act11SetDLDst:
		var mac [6]byte
		copy(mac[:], body[0:6])
		_, err := out.Put(Header{Type: SET_ETH_DST, Len: recLen(6)}, mac[:])
		return err

	case act11SetNWSrc:
		addr := binary.BigEndian.Uint32(body[0:4])
		_, err := out.Put(Header{Type: SET_IPV4_SRC, Len: recLen(4)}, addr)
		return err

	case act11SetNWDst:
		addr := binary.BigEndian.Uint32(body[0:4])
		_, err := out.Put(Header{Type: SET_IPV4_DST, Len: recLen(4)}, addr)
		return err

	case act11SetNWTos:
		tos := body[0]
		if tos&0x3 != 0 {
			return newErr(KindBadArgument, "SET_NW_TOS %#x has non-zero reserved bits", tos)
		}
		dscp := tos >> 2
		_, err := out.Put(Header{Type: SET_IPV4_DSCP, Len: recLen(1)}, dscp)
		return err

	case act11SetTPSrc:
		port := binary.BigEndian.Uint16(body[0:2])
		_, err := out.Put(Header{Type: SET_L4_SRC_PORT, Len: recLen(2)}, port)
		return err

	case act11SetTPDst:
		port := binary.BigEndian.Uint16(body[0:2])
		_, err := out.Put(Header{Type: SET_L4_DST_PORT, Len: recLen(2)}, port)
		return err

	case act11SetQueue:
		queue := binary.BigEndian.Uint32(body[0:4])
		_, err := out.Put(Header{Type: SET_QUEUE, Len: recLen(4)}, queue)
		return err
	}

	return newErr(KindBadType, "unhandled OF1.1 action type %#x", typ)
}

// EncodeV11Actions walks the internal stream and appends the corresponding
// OF1.1 wire actions to out. As in EncodeV10, OUTPUT_REG, RESUBMIT and the
// other NXAST-only types go through the vendor path, here via
// EXPERIMENTER, since Nicira's OF1.1 extension reuses the same subtypes.
func EncodeV11Actions(stream []byte, out *Buffer) error {
	err := Walk(stream, func(r Record) error {
		return encodeAction11(r, out)
	})
	if err != nil {
		out.Reset()
		return err
	}
	return nil
}

func encodeAction11(r Record, out *Buffer) error {
	switch r.Type {
	case OUTPUT:
		port := Port(binary.BigEndian.Uint16(r.Data[0:2]))
		maxLen := binary.BigEndian.Uint16(r.Data[2:4])
		return putAction11(out, act11Output, bridgePort16to11(port), maxLen, make([]byte, 6))

	case ENQUEUE:
		return newErr(KindUnsupported, "ENQUEUE has no OF1.1 encoding")

	case SET_VLAN_VID:
		vid := binary.BigEndian.Uint16(r.Data[0:2])
		return putAction11(out, act11SetVLANVID, vid, uint16(0))

	case SET_VLAN_PCP:
		return putAction11(out, act11SetVLANPCP, r.Data[0], make([]byte, 3))

	case STRIP_VLAN:
		return newErr(KindUnsupported, "STRIP_VLAN has no OF1.1 encoding")

	case SET_ETH_SRC:
		return putAction11(out, act11SetDLSrc, r.Data[0:6], make([]byte, 6))

	case SET_ETH_DST:
		return putAction11(out, act11SetDLDst, r.Data[0:6], make([]byte, 6))

	case SET_IPV4_SRC:
		return putAction11(out, act11SetNWSrc, binary.BigEndian.Uint32(r.Data[0:4]))

	case SET_IPV4_DST:
		return putAction11(out, act11SetNWDst, binary.BigEndian.Uint32(r.Data[0:4]))

	case SET_IPV4_DSCP:
		tos := r.Data[0] << 2
		return putAction11(out, act11SetNWTos, tos, make([]byte, 3))

	case SET_L4_SRC_PORT:
		return putAction11(out, act11SetTPSrc, binary.BigEndian.Uint16(r.Data[0:2]), uint16(0))

	case SET_L4_DST_PORT:
		return putAction11(out, act11SetTPDst, binary.BigEndian.Uint16(r.Data[0:2]), uint16(0))

	case SET_QUEUE:
		return putAction11(out, act11SetQueue, binary.BigEndian.Uint32(r.Data[0:4]))

	default:
		return encodeVendorAction11(r, out)
	}
}

// putAction11 writes a complete OF1.1 action: {type, len} followed by
// fields, with len computed from the encoded field bytes.
func putAction11(out *Buffer, typ uint16, fields ...interface{}) error {
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
