package ofpact

import "strconv"

// Port is the internal, 16-bit port representation used by every ofpact
// regardless of which wire version produced it.
type Port uint16

// Reserved OF1.0 port numbers (also used internally, per §6's "OFPP_MAX").
const (
	PortMax        Port = 0xff00
	PortInPort     Port = 0xfff8
	PortTable      Port = 0xfff9
	PortNormal     Port = 0xfffa
	PortFlood      Port = 0xfffb
	PortAll        Port = 0xfffc
	PortController Port = 0xfffd
	PortLocal      Port = 0xfffe
	PortNone       Port = 0xffff
)

var portText = map[Port]string{
	PortInPort:     "IN_PORT",
	PortTable:      "TABLE",
	PortNormal:     "NORMAL",
	PortFlood:      "FLOOD",
	PortAll:        "ALL",
	PortController: "CONTROLLER",
	PortLocal:      "LOCAL",
	PortNone:       "NONE",
}

// String renders reserved ports by name and regular ports numerically.
func (p Port) String() string {
	if text, ok := portText[p]; ok {
		return text
	}
	return strconv.Itoa(int(p))
}

// IsReserved reports whether p is one of the named reserved ports rather
// than a regular switch port number.
func (p Port) IsReserved() bool {
	_, ok := portText[p]
	return ok
}

// ValidOutPort implements the OUTPUT port check of spec §4.2: the port must
// be a regular port below PortMax, or one of the reserved ports.
func ValidOutPort(p Port) bool {
	return p < PortMax || p.IsReserved()
}

// ValidEnqueuePort implements the ENQUEUE port check of spec §4.2: the port
// must be a regular port below PortMax, or IN_PORT, or LOCAL.
func ValidEnqueuePort(p Port) bool {
	return p < PortMax || p == PortInPort || p == PortLocal
}

// OF1.1 32-bit reserved port numbers.
const (
	port11Max        uint32 = 0xffffff00
	port11InPort     uint32 = 0xfffffff8
	port11Table      uint32 = 0xfffffff9
	port11Normal     uint32 = 0xfffffffa
	port11Flood      uint32 = 0xfffffffb
	port11All        uint32 = 0xfffffffc
	port11Controller uint32 = 0xfffffffd
	port11Local      uint32 = 0xfffffffe
	port11Any        uint32 = 0xffffffff
)

var port11to16 = map[uint32]Port{
	port11InPort:     PortInPort,
	port11Table:      PortTable,
	port11Normal:     PortNormal,
	port11Flood:      PortFlood,
	port11All:        PortAll,
	port11Controller: PortController,
	port11Local:      PortLocal,
	port11Any:        PortNone,
}

var port16to11 = func() map[Port]uint32 {
	m := make(map[Port]uint32, len(port11to16))
	for k, v := range port11to16 {
		m[v] = k
	}
	return m
}()

// bridgePort11to16 is the version-bridge converter named in spec §4.3: it
// translates an OF1.1 32-bit port, reserved or regular, to the internal
// 16-bit representation. A regular OF1.1 port that does not fit in the
// 16-bit regular port space is a translation failure.
func bridgePort11to16(p uint32) (Port, error) {
	if p >= port11Max {
		if port, ok := port11to16[p]; ok {
			return port, nil
		}
		return 0, newErr(KindBadArgument, "reserved OF1.1 port 0x%08x has no 16-bit equivalent", p)
	}
	if p >= uint32(PortMax) {
		return 0, newErr(KindBadArgument, "OF1.1 port %d does not fit the 16-bit port space", p)
	}
	return Port(p), nil
}

// bridgePort16to11 is the inverse of bridgePort11to16, used by the OF1.1
// encoder.
func bridgePort16to11(p Port) uint32 {
	if port, ok := port16to11[p]; ok {
		return port
	}
	return uint32(p)
}
