package ofpact

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func vendorWire(subtype uint16, body []byte) []byte {
	wire := append(be16(act10Vendor), be16(0)...)
	wire = append(wire, be32(NXVendorID)...)
	wire = append(wire, be16(subtype)...)
	wire = append(wire, body...)
	for len(wire)%WireAlign != 0 {
		wire = append(wire, 0)
	}
	binary.BigEndian.PutUint16(wire[2:4], uint16(len(wire)))
	return wire
}

func TestDecodeResubmitRoundTrip(t *testing.T) {
	wire := vendorWire(nxastResubmit, append(be16(7), make([]byte, 4)...))

	var stream Buffer
	require.NoError(t, DecodeV10(wire, len(wire), &stream))

	require.NoError(t, Walk(stream.Bytes(), func(r Record) error {
		require.Equal(t, RESUBMIT, r.Type)
		require.Equal(t, CompatResubmit, r.Compat)
		require.Equal(t, Port(7), Port(binary.BigEndian.Uint16(r.Data[0:2])))
		return nil
	}))

	var reencoded Buffer
	require.NoError(t, EncodeV10(stream.Bytes(), &reencoded))
	require.Equal(t, wire, reencoded.Bytes())
}

func TestDecodeRegMoveRoundTrip(t *testing.T) {
	var body []byte
	body = append(body, be16(8)...)           // n_bits
	body = append(body, be16(0)...)           // src_ofs
	body = append(body, be16(0)...)           // dst_ofs
	body = append(body, be32(0x00010200)...)  // src: NXM_NX_REG0
	body = append(body, be32(0x00010400)...)  // dst: NXM_NX_REG1
	wire := vendorWire(nxastRegMove, body)

	var stream Buffer
	require.NoError(t, DecodeV10(wire, len(wire), &stream))

	require.NoError(t, Walk(stream.Bytes(), func(r Record) error {
		require.Equal(t, REG_MOVE, r.Type)
		return nil
	}))

	var reencoded Buffer
	require.NoError(t, EncodeV10(stream.Bytes(), &reencoded))
	require.Equal(t, wire, reencoded.Bytes())
}

func TestDecodeNoteRoundTrip(t *testing.T) {
	comment := []byte{0xde, 0xad, 0xbe, 0xef}
	wire := vendorWire(nxastNote, comment)

	var stream Buffer
	require.NoError(t, DecodeV10(wire, len(wire), &stream))

	require.NoError(t, Walk(stream.Bytes(), func(r Record) error {
		require.Equal(t, NOTE, r.Type)
		// The note's first four bytes must be the real payload, not the
		// zero padding the encoder appends to reach a WireAlign boundary.
		require.Equal(t, comment, r.Data[:len(comment)])
		return nil
	}))

	var reencoded Buffer
	require.NoError(t, EncodeV10(stream.Bytes(), &reencoded))
	require.Equal(t, wire, reencoded.Bytes())

	var sb strings.Builder
	require.NoError(t, Format(stream.Bytes(), &sb))
	// r.Data also carries the two trailing zero-padding bytes the encoder
	// appended to reach the next WireAlign boundary.
	require.Equal(t, "note:de.ad.be.ef.00.00", sb.String())
}

func TestDecodeVendorRejectsMissingSubtype(t *testing.T) {
	// Generic vendor header only (8 bytes): valid Nicira vendor id but no
	// room left for the NXAST subtype.
	wire := append(be16(act10Vendor), be16(8)...)
	wire = append(wire, be32(NXVendorID)...)

	var stream Buffer
	err := DecodeV10(wire, len(wire), &stream)
	require.ErrorIs(t, err, ErrBadLen)
}
