package ofpact

import "strings"

// SubCodec is the fixed interface contract spec §6 names for the actions
// whose wire structure is too involved to inline into the NXAST dispatch
// table: LEARN, MULTIPATH, AUTOPATH, BUNDLE, and the two register actions.
// The core invokes FromWire with the raw wire record (vendor header
// included) during decode, and ToWire/Check/Format with the decoded
// internal Record afterwards.
type SubCodec interface {
	// FromWire decodes a single wire record (the full NXAST record,
	// vendor header included) and appends the corresponding internal
	// ofpact to out.
	FromWire(rec []byte, out *Buffer) error

	// ToWire encodes the internal record back to its NXAST wire form,
	// appending to out.
	ToWire(r Record, out *Buffer) error

	// Check validates the record against the flow context.
	Check(r Record, flow *Flow) error

	// Format writes the record's text rendering.
	Format(r Record, sb *strings.Builder)
}

// subcodecs maps each delegated internal type to its sub-codec
// implementation.
var subcodecs = map[Type]SubCodec{
	BUNDLE:    bundleCodec{},
	LEARN:     learnCodec{},
	MULTIPATH: multipathCodec{},
	AUTOPATH:  autopathCodec{},
	REG_MOVE:  regMoveCodec{},
	REG_LOAD:  regLoadCodec{},
}
