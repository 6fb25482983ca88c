package ofpact

import (
	"bytes"
	"encoding/binary"
)

// OutputsToPort reports whether stream contains an OUTPUT (or ENQUEUE)
// ofpact targeting port, or a CONTROLLER ofpact when port is
// OFPP_CONTROLLER. It does not attempt to reason about BUNDLE or
// OUTPUT_REG's dynamically-chosen destinations.
func OutputsToPort(stream []byte, port uint32) bool {
	found := false
	Walk(stream, func(r Record) error {
		switch r.Type {
		case OUTPUT, ENQUEUE:
			p := binary.BigEndian.Uint16(r.Data[0:2])
			if uint32(p) == port {
				found = true
			}
		case CONTROLLER:
			if port == uint32(PortController) {
				found = true
			}
		}
		return nil
	})
	return found
}

// Equal reports whether two internal ofpact streams are byte-for-byte
// identical, including the trailing END sentinel. Equality is defined at
// the wire level rather than semantically: two streams that produce
// equivalent behavior through different Compat variants are not Equal
// unless their bytes match exactly.
func Equal(a, b []byte) bool {
	return bytes.Equal(a, b)
}
