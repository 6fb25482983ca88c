package ofpact

import "encoding/binary"

// OF1.1 instruction type codes (OFPIT_*).
const (
	instGotoTable     uint16 = 1
	instWriteMetadata uint16 = 2
	instWriteActions  uint16 = 3
	instApplyActions  uint16 = 4
	instClearActions  uint16 = 5
	instMeter         uint16 = 6
	instExperimenter  uint16 = 0xffff
)

// instHeaderLen is the size of ofp_instruction_actions's {type, len, pad[4]}
// prefix: unlike an OF1.0/1.1 action, an instruction header reserves four
// bytes of padding after {type, len} before its body begins.
const instHeaderLen = 8

// DecodeV11Instructions implements spec §4.3's instruction decoder: it
// walks a block of OF1.1 instructions, accepting at most one of each type
// (a repeat is KindDupType) and decoding only APPLY_ACTIONS's nested
// action list; every other known instruction type is rejected as
// KindUnsupInst, EXPERIMENTER as KindBadExperimenter, and anything outside
// the enumeration as KindUnknownInst.
//
// APPLY_ACTIONS's actions are decoded into out as soon as that instruction
// is reached. Unsupported instructions are only recorded during the walk
// and rejected once the whole block has been walked, so a repeated
// instruction of any kind is reported as KindDupType. On any failure out
// is reset: the already-decoded actions never survive a rejection.
func DecodeV11Instructions(wire []byte, instLen int, out *Buffer) error {
	if instLen < 0 || instLen%WireAlign != 0 || instLen > len(wire) {
		out.Reset()
		return newErr(KindBadLen, "invalid instructions_len %d", instLen)
	}

	span := wire[:instLen]
	seen := make(map[uint16]bool)
	applied := false
	unsupported := false
	var unsupportedType uint16

	err := wireWalk(span, func(typ uint16, rec []byte) error {
		if seen[typ] {
			return newErr(KindDupType, "duplicate instruction type %#x", typ)
		}
		seen[typ] = true

		switch typ {
		case instApplyActions:
			if len(rec) < instHeaderLen {
				return newErr(KindBadLen, "APPLY_ACTIONS instruction shorter than header")
			}
			body := rec[instHeaderLen:]
			if err := DecodeV11(body, len(body), out); err != nil {
				return err
			}
			applied = true
			return nil

		case instGotoTable, instWriteMetadata, instWriteActions, instClearActions, instMeter:
			diagnostic("rejecting unsupported OF1.1 instruction %#x", typ)
			if !unsupported {
				unsupported = true
				unsupportedType = typ
			}
			return nil

		case instExperimenter:
			return newErr(KindBadExperimenter, "EXPERIMENTER instruction not accepted")
		}

		diagnostic("unknown OF1.1 instruction %#x", typ)
		return newErr(KindUnknownInst, "unknown OF1.1 instruction %#x", typ)
	})
	if err != nil {
		out.Reset()
		return err
	}

	if unsupported {
		out.Reset()
		return newErr(KindUnsupInst, "unsupported OF1.1 instruction %#x", unsupportedType)
	}

	if !applied {
		out.Reset()
		out.PutEnd()
	}

	return nil
}

// EncodeV11Instructions wraps the internal stream's actions in a single
// APPLY_ACTIONS instruction, patching its length once the nested actions
// are known. A stream that encodes to no actions at all (bare "drop")
// produces no instructions, matching OF1.1's own convention that an empty
// instruction list means "discard the packet".
func EncodeV11Instructions(stream []byte, out *Buffer) error {
	var actions Buffer
	if err := EncodeV11Actions(stream, &actions); err != nil {
		out.Reset()
		return err
	}
	if actions.Len() == 0 {
		return nil
	}

	offset := out.Len()
	hdr := make([]byte, instHeaderLen)
	binary.BigEndian.PutUint16(hdr[0:2], instApplyActions)
	out.Write(hdr)
	out.Write(actions.Bytes())

	out.PatchLen(offset, uint16(out.Len()-offset))
	return nil
}
