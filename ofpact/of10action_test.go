package ofpact

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func be16(v uint16) []byte { b := make([]byte, 2); binary.BigEndian.PutUint16(b, v); return b }
func be32(v uint32) []byte { b := make([]byte, 4); binary.BigEndian.PutUint32(b, v); return b }

func TestDecodeEncodeV10OutputRoundTrip(t *testing.T) {
	wire := append(append(be16(act10Output), be16(8)...), append(be16(5), be16(0)...)...)

	var stream Buffer
	require.NoError(t, DecodeV10(wire, len(wire), &stream))

	var types []Type
	require.NoError(t, Walk(stream.Bytes(), func(r Record) error {
		types = append(types, r.Type)
		return nil
	}))
	require.Equal(t, []Type{OUTPUT}, types)

	var reencoded Buffer
	require.NoError(t, EncodeV10(stream.Bytes(), &reencoded))
	require.Equal(t, wire, reencoded.Bytes())
}

func TestDecodeV10SetTunnelRoundTrip(t *testing.T) {
	wire := append(be16(act10Vendor), be16(16)...)
	wire = append(wire, be32(NXVendorID)...)
	wire = append(wire, be16(nxastSetTunnel)...)
	wire = append(wire, []byte{0, 0}...)
	wire = append(wire, be32(0x12345678)...)

	var stream Buffer
	require.NoError(t, DecodeV10(wire, len(wire), &stream))

	require.NoError(t, Walk(stream.Bytes(), func(r Record) error {
		require.Equal(t, SET_TUNNEL, r.Type)
		require.Equal(t, CompatSetTunnel32, r.Compat)
		require.Equal(t, uint64(0x12345678), binary.BigEndian.Uint64(r.Data[0:8]))
		return nil
	}))

	var reencoded Buffer
	require.NoError(t, EncodeV10(stream.Bytes(), &reencoded))
	require.Equal(t, wire, reencoded.Bytes())
}

func TestDecodeV10RejectsBadVendor(t *testing.T) {
	wire := append(be16(act10Vendor), be16(16)...)
	wire = append(wire, be32(0xdeadbeef)...)
	wire = append(wire, make([]byte, 10)...)

	var stream Buffer
	err := DecodeV10(wire, len(wire), &stream)
	require.Error(t, err)

	var ofErr *Error
	require.True(t, errors.As(err, &ofErr))
	require.Equal(t, KindBadVendor, ofErr.Kind)
	require.Zero(t, stream.Len(), "a failed decode must leave the buffer empty")
}

func TestDecodeV10RejectsObsoleteNXAST(t *testing.T) {
	wire := append(be16(act10Vendor), be16(16)...)
	wire = append(wire, be32(NXVendorID)...)
	wire = append(wire, be16(nxastSNATObsolete)...)
	wire = append(wire, make([]byte, 6)...)

	var stream Buffer
	err := DecodeV10(wire, len(wire), &stream)
	require.ErrorIs(t, err, ErrBadType)
}

func TestDecodeV10RejectsUnalignedLength(t *testing.T) {
	wire := append(be16(act10Output), be16(8)...)
	wire = append(wire, be16(5)...)
	wire = append(wire, be16(0)...)

	var stream Buffer
	err := DecodeV10(wire, 7, &stream)
	require.ErrorIs(t, err, ErrBadLen)
}

func TestDecodeV10RejectsUnknownType(t *testing.T) {
	wire := append(be16(0x1234), be16(8)...)
	wire = append(wire, make([]byte, 4)...)

	var stream Buffer
	err := DecodeV10(wire, len(wire), &stream)
	require.ErrorIs(t, err, ErrBadType)
}

func TestDecodeV10RejectsOversizedVlanVid(t *testing.T) {
	wire := append(be16(act10SetVLANVID), be16(8)...)
	wire = append(wire, be16(0x1fff)...)
	wire = append(wire, []byte{0, 0}...)

	var stream Buffer
	err := DecodeV10(wire, len(wire), &stream)
	require.ErrorIs(t, err, ErrBadArgument)
}
