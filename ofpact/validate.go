package ofpact

import "encoding/binary"

// Validate implements spec §4.6's semantic validator: it walks a decoded
// ofpact stream and checks each record against the flow it would attach
// to and the switch's port count, returning the first violation found.
// Validate never mutates stream; a clean return means every record in it
// is individually well-formed for this flow and switch.
func Validate(stream []byte, flow *Flow, maxPorts uint32) error {
	return Walk(stream, func(r Record) error {
		return validateOne(r, flow, maxPorts)
	})
}

func validateOne(r Record, flow *Flow, maxPorts uint32) error {
	switch r.Type {
	case OUTPUT:
		port := Port(binary.BigEndian.Uint16(r.Data[0:2]))
		if !port.IsReserved() && uint32(port) >= maxPorts {
			return newErr(KindBadOutPort, "OUTPUT port %s exceeds switch port count %d", port, maxPorts)
		}
		return nil

	case ENQUEUE:
		port := Port(binary.BigEndian.Uint16(r.Data[0:2]))
		if !ValidEnqueuePort(port) {
			return newErr(KindBadOutPort, "ENQUEUE port %s is not a valid enqueue target", port)
		}
		if !port.IsReserved() && uint32(port) >= maxPorts {
			return newErr(KindBadOutPort, "ENQUEUE port %s exceeds switch port count %d", port, maxPorts)
		}
		return nil

	case SET_VLAN_VID:
		vid := binary.BigEndian.Uint16(r.Data[0:2])
		if vid > 0x0fff {
			return newErr(KindBadArgument, "SET_VLAN_VID %#x exceeds 12 bits", vid)
		}
		return nil

	case SET_VLAN_PCP:
		if r.Data[0] > 0x7 {
			return newErr(KindBadArgument, "SET_VLAN_PCP %#x exceeds 3 bits", r.Data[0])
		}
		return nil

	case SET_IPV4_DSCP:
		if r.Data[0] > 0x3f {
			return newErr(KindBadArgument, "SET_IPV4_DSCP %#x exceeds 6 bits", r.Data[0])
		}
		return nil
	}

	if codec, ok := subcodecs[r.Type]; ok {
		return codec.Check(r, flow)
	}

	return nil
}
