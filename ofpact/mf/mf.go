// Package mf is a minimal registry of the OXM/NXM match-field identifiers
// referenced by the OUTPUT_REG, REG_MOVE and REG_LOAD ofpacts. It mirrors,
// at a much smaller scale, the OXM field table the teacher repository
// keeps in ofp/match.go, adapted here to serve the sub-field descriptors
// used by the Nicira register actions instead of full flow matches.
package mf

import "fmt"

// Field describes one match field that can appear as the source or
// destination of a sub-field descriptor (ofs, n_bits).
type Field struct {
	Name     string
	NumBits  int
	Maskable bool

	// Prereq is the name of another field that must already be
	// constrained by the flow's match for this field to be readable or
	// writable (e.g. IPv4 fields require eth_type=IPv4). Empty if none.
	Prereq string
}

// id packs an OXM/NXM class and field number the way the wire header does:
// class in the high 16 bits, field number in the next 7.
func id(class uint16, field uint8) uint32 {
	return uint32(class)<<16 | uint32(field)<<9
}

var registry = map[uint32]Field{
	id(0x0000, 0):  {Name: "NXM_OF_IN_PORT", NumBits: 16},
	id(0x0000, 1):  {Name: "NXM_OF_ETH_DST", NumBits: 48, Maskable: true},
	id(0x0000, 2):  {Name: "NXM_OF_ETH_SRC", NumBits: 48, Maskable: true},
	id(0x0000, 3):  {Name: "NXM_OF_ETH_TYPE", NumBits: 16},
	id(0x0000, 9):  {Name: "NXM_OF_IP_SRC", NumBits: 32, Maskable: true, Prereq: "eth_type=ipv4"},
	id(0x0000, 10): {Name: "NXM_OF_IP_DST", NumBits: 32, Maskable: true, Prereq: "eth_type=ipv4"},
	id(0x0000, 13): {Name: "NXM_OF_TCP_SRC", NumBits: 16, Prereq: "ip_proto=tcp"},
	id(0x0000, 14): {Name: "NXM_OF_TCP_DST", NumBits: 16, Prereq: "ip_proto=tcp"},
	id(0x0001, 0):  {Name: "NXM_NX_TUN_ID", NumBits: 64, Maskable: true},
	id(0x0001, 1):  {Name: "NXM_NX_REG0", NumBits: 32, Maskable: true},
	id(0x0001, 2):  {Name: "NXM_NX_REG1", NumBits: 32, Maskable: true},
	id(0x0001, 3):  {Name: "NXM_NX_REG2", NumBits: 32, Maskable: true},
	id(0x0001, 4):  {Name: "NXM_NX_REG3", NumBits: 32, Maskable: true},
	id(0x0001, 5):  {Name: "NXM_NX_REG4", NumBits: 32, Maskable: true},
	id(0x0001, 6):  {Name: "NXM_NX_REG5", NumBits: 32, Maskable: true},
	id(0x0001, 7):  {Name: "NXM_NX_REG6", NumBits: 32, Maskable: true},
	id(0x0001, 8):  {Name: "NXM_NX_REG7", NumBits: 32, Maskable: true},
}

// Header decodes the packed 32-bit NXM/OXM field header carried by the src
// and dst fields of OUTPUT_REG, REG_MOVE and REG_LOAD: class in bits
// [31:16], field number in bits [15:9], has-mask flag in bit 8, and the
// field's wire length in bits [7:0].
type Header uint32

func (h Header) Class() uint16  { return uint16(h >> 16) }
func (h Header) Field() uint8   { return uint8(h>>9) & 0x7f }
func (h Header) HasMask() bool  { return h&0x100 != 0 }
func (h Header) WireLen() uint8 { return uint8(h) }

// Lookup resolves a packed field header to its Field description.
func Lookup(h Header) (Field, bool) {
	f, ok := registry[uint32(h)&0xffffff00]
	return f, ok
}

// CheckSrc validates that a (ofs, nBits) sub-field descriptor addresses a
// legal, in-range slice of f for reading.
func (f Field) CheckSrc(ofs, nBits int) error {
	if nBits <= 0 {
		return fmt.Errorf("mf: %s: n_bits must be positive", f.Name)
	}
	if ofs < 0 || ofs+nBits > f.NumBits {
		return fmt.Errorf("mf: %s: (ofs=%d, n_bits=%d) exceeds field width %d", f.Name, ofs, nBits, f.NumBits)
	}
	return nil
}

// CheckDst validates a (ofs, nBits) descriptor for writing, additionally
// requiring the field to be maskable when it is not written in full.
func (f Field) CheckDst(ofs, nBits int) error {
	if err := f.CheckSrc(ofs, nBits); err != nil {
		return err
	}
	if !f.Maskable && (ofs != 0 || nBits != f.NumBits) {
		return fmt.Errorf("mf: %s: partial write requires a maskable field", f.Name)
	}
	return nil
}
