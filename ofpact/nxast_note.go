package ofpact

import (
	"fmt"
	"strings"
)

// decodeNote implements NXAST_NOTE: everything past the {type, len, vendor,
// subtype} header (offsetof(struct nx_action_note, note) == nxHeaderLen) is
// opaque commentary, captured verbatim including any trailing padding the
// encoder added to reach a multiple of WireAlign.
func decodeNote(rec []byte, out *Buffer) error {
	note := rec[nxHeaderLen:]
	_, err := out.Put(Header{Type: NOTE, Len: recLen(len(note))}, note)
	return err
}

// encodeNote writes NXAST_NOTE's variable-length wire form, patching Len
// once the full padded size is known.
func encodeNote(r Record, out *Buffer, wireType uint16) error {
	offset, err := putVendor(out, wireType, nxastNote, r.Data)
	if err != nil {
		return err
	}

	total := out.Len() - offset
	if pad := total % WireAlign; pad != 0 {
		out.Write(make([]byte, WireAlign-pad))
	}

	out.PatchLen(offset, uint16(out.Len()-offset))
	return nil
}

// formatNote renders a NOTE's payload as dot-separated hex octets,
// matching ovs-ofctl's own note formatting.
func formatNote(r Record, sb *strings.Builder) {
	sb.WriteString("note:")
	for i, b := range r.Data {
		if i > 0 {
			sb.WriteByte('.')
		}
		fmt.Fprintf(sb, "%02x", b)
	}
}
