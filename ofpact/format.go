package ofpact

import (
	"encoding/binary"
	"fmt"
	"net"
	"strings"
)

// Format renders a decoded ofpact stream in ovs-ofctl's action syntax,
// appending to sb. An empty stream (no actions) renders as "drop", the
// OpenFlow convention for a flow with no side effects.
func Format(stream []byte, sb *strings.Builder) error {
	first := true
	err := Walk(stream, func(r Record) error {
		if !first {
			sb.WriteByte(',')
		}
		first = false
		return formatOne(r, sb)
	})
	if err != nil {
		return err
	}
	if first {
		sb.WriteString("drop")
	}
	return nil
}

func formatOne(r Record, sb *strings.Builder) error {
	switch r.Type {
	case OUTPUT:
		port := Port(binary.BigEndian.Uint16(r.Data[0:2]))
		fmt.Fprintf(sb, "output:%s", port)
		return nil

	case CONTROLLER:
		maxLen := binary.BigEndian.Uint16(r.Data[0:2])
		if r.Compat == CompatControllerExtended {
			controllerID := binary.BigEndian.Uint16(r.Data[2:4])
			reason := r.Data[4]
			fmt.Fprintf(sb, "controller(reason=%d,max_len=%d,id=%d)", reason, maxLen, controllerID)
		} else {
			fmt.Fprintf(sb, "controller:%d", maxLen)
		}
		return nil

	case ENQUEUE:
		port := Port(binary.BigEndian.Uint16(r.Data[0:2]))
		queue := binary.BigEndian.Uint32(r.Data[4:8])
		fmt.Fprintf(sb, "enqueue:%s:%d", port, queue)
		return nil

	case SET_VLAN_VID:
		vid := binary.BigEndian.Uint16(r.Data[0:2])
		fmt.Fprintf(sb, "mod_vlan_vid:%d", vid)
		return nil

	case SET_VLAN_PCP:
		fmt.Fprintf(sb, "mod_vlan_pcp:%d", r.Data[0])
		return nil

	case STRIP_VLAN:
		sb.WriteString("strip_vlan")
		return nil

	case SET_ETH_SRC:
		fmt.Fprintf(sb, "mod_dl_src:%s", net.HardwareAddr(r.Data[0:6]))
		return nil

	case SET_ETH_DST:
		fmt.Fprintf(sb, "mod_dl_dst:%s", net.HardwareAddr(r.Data[0:6]))
		return nil

	case SET_IPV4_SRC:
		fmt.Fprintf(sb, "mod_nw_src:%s", formatIPv4(r.Data[0:4]))
		return nil

	case SET_IPV4_DST:
		fmt.Fprintf(sb, "mod_nw_dst:%s", formatIPv4(r.Data[0:4]))
		return nil

	case SET_IPV4_DSCP:
		fmt.Fprintf(sb, "mod_nw_tos:%d", r.Data[0]<<2)
		return nil

	case SET_L4_SRC_PORT:
		fmt.Fprintf(sb, "mod_tp_src:%d", binary.BigEndian.Uint16(r.Data[0:2]))
		return nil

	case SET_L4_DST_PORT:
		fmt.Fprintf(sb, "mod_tp_dst:%d", binary.BigEndian.Uint16(r.Data[0:2]))
		return nil

	case SET_TUNNEL:
		id := binary.BigEndian.Uint64(r.Data[0:8])
		if r.Compat == CompatSetTunnel64 {
			fmt.Fprintf(sb, "set_tunnel64:%#x", id)
		} else {
			fmt.Fprintf(sb, "set_tunnel:%#x", id)
		}
		return nil

	case SET_QUEUE:
		fmt.Fprintf(sb, "set_queue:%d", binary.BigEndian.Uint32(r.Data[0:4]))
		return nil

	case POP_QUEUE:
		sb.WriteString("pop_queue")
		return nil

	case RESUBMIT:
		port := Port(binary.BigEndian.Uint16(r.Data[0:2]))
		table := r.Data[2]
		if table == 0xff {
			fmt.Fprintf(sb, "resubmit:%s", port)
		} else {
			fmt.Fprintf(sb, "resubmit(%s,%d)", port, table)
		}
		return nil

	case DEC_TTL:
		sb.WriteString("dec_ttl")
		return nil

	case FIN_TIMEOUT:
		idle := binary.BigEndian.Uint16(r.Data[0:2])
		hard := binary.BigEndian.Uint16(r.Data[2:4])
		fmt.Fprintf(sb, "fin_timeout(idle_timeout=%d,hard_timeout=%d)", idle, hard)
		return nil

	case EXIT:
		sb.WriteString("exit")
		return nil

	case NOTE:
		formatNote(r, sb)
		return nil
	}

	if codec, ok := subcodecs[r.Type]; ok {
		codec.Format(r, sb)
		return nil
	}

	return newErr(KindBadType, "no text form for ofpact type %s", r.Type)
}

func formatIPv4(b []byte) net.IP {
	return net.IPv4(b[0], b[1], b[2], b[3])
}
