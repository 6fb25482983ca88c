package ofpact

import "fmt"

// Align is the internal alignment of the ofpact stream: every record starts
// at an offset that is a multiple of Align, padded with zeros as needed.
const Align = 8

// WireAlign is the alignment mandated by the OpenFlow wire formats (actions
// and instructions alike): every wire action or instruction record must be
// a multiple of WireAlign bytes.
const WireAlign = 8

// Type is the closed set of internal action record variants. It is the
// single discriminator used across decode, validate, encode and format.
type Type uint8

const (
	// END is the sentinel variant terminating every ofpact stream. It is
	// never encoded to the wire and carries no fields beyond the header.
	END Type = iota

	OUTPUT
	CONTROLLER
	ENQUEUE
	OUTPUT_REG
	BUNDLE

	SET_VLAN_VID
	SET_VLAN_PCP
	SET_ETH_SRC
	SET_ETH_DST
	SET_IPV4_SRC
	SET_IPV4_DST
	SET_IPV4_DSCP
	SET_L4_SRC_PORT
	SET_L4_DST_PORT
	SET_TUNNEL
	SET_QUEUE

	STRIP_VLAN
	POP_QUEUE

	REG_MOVE
	REG_LOAD

	DEC_TTL
	FIN_TIMEOUT

	RESUBMIT
	LEARN
	MULTIPATH
	AUTOPATH

	NOTE
	EXIT
)

var typeText = map[Type]string{
	END:             "END",
	OUTPUT:          "OUTPUT",
	CONTROLLER:      "CONTROLLER",
	ENQUEUE:         "ENQUEUE",
	OUTPUT_REG:      "OUTPUT_REG",
	BUNDLE:          "BUNDLE",
	SET_VLAN_VID:    "SET_VLAN_VID",
	SET_VLAN_PCP:    "SET_VLAN_PCP",
	SET_ETH_SRC:     "SET_ETH_SRC",
	SET_ETH_DST:     "SET_ETH_DST",
	SET_IPV4_SRC:    "SET_IPV4_SRC",
	SET_IPV4_DST:    "SET_IPV4_DST",
	SET_IPV4_DSCP:   "SET_IPV4_DSCP",
	SET_L4_SRC_PORT: "SET_L4_SRC_PORT",
	SET_L4_DST_PORT: "SET_L4_DST_PORT",
	SET_TUNNEL:      "SET_TUNNEL",
	SET_QUEUE:       "SET_QUEUE",
	STRIP_VLAN:      "STRIP_VLAN",
	POP_QUEUE:       "POP_QUEUE",
	REG_MOVE:        "REG_MOVE",
	REG_LOAD:        "REG_LOAD",
	DEC_TTL:         "DEC_TTL",
	FIN_TIMEOUT:     "FIN_TIMEOUT",
	RESUBMIT:        "RESUBMIT",
	LEARN:           "LEARN",
	MULTIPATH:       "MULTIPATH",
	AUTOPATH:        "AUTOPATH",
	NOTE:            "NOTE",
	EXIT:            "EXIT",
}

func (t Type) String() string {
	if text, ok := typeText[t]; ok {
		return text
	}
	return fmt.Sprintf("Type(%d)", t)
}

// Compat records the wire subtype that produced an internal record, so
// re-encoding can choose the same wire shape. Its zero value, CompatNone,
// means "no ambiguity" — there is exactly one wire encoding for the type.
type Compat uint8

const (
	CompatNone Compat = iota

	// CompatSetTunnel32 and CompatSetTunnel64 distinguish the NXAST
	// SET_TUNNEL (32-bit) and SET_TUNNEL64 (64-bit) encodings of a
	// SET_TUNNEL ofpact.
	CompatSetTunnel32
	CompatSetTunnel64

	// CompatResubmit and CompatResubmitTable distinguish the NXAST
	// RESUBMIT and RESUBMIT_TABLE encodings of a RESUBMIT ofpact.
	CompatResubmit
	CompatResubmitTable

	// CompatControllerExtended marks a CONTROLLER ofpact decoded from the
	// extended NXAST_CONTROLLER form (carrying reason and controller id)
	// rather than the plain OF1.0/1.1 OUTPUT-to-CONTROLLER form.
	CompatControllerExtended
)

// Header is the common prefix of every internal ofpact record.
type Header struct {
	// Type selects the variant.
	Type Type

	// Compat records the wire subtype that produced this record.
	Compat Compat

	// Len is the byte length of the whole record, header included, and
	// any variable trailing payload.
	Len uint16
}

// HeaderLen is the encoded size of Header on the internal stream.
const HeaderLen = 4

// recLen returns the exact, unpadded Len of a record whose fields occupy
// fieldBytes after the header. Alignment padding between this record and
// the next is inserted by Buffer.Put when the next record is written, not
// folded into Len itself.
func recLen(fieldBytes int) uint16 {
	return uint16(HeaderLen + fieldBytes)
}
