package ofpact

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeV11OutputBridgesReservedPort(t *testing.T) {
	wire := append(be16(act11Output), be16(16)...)
	wire = append(wire, be32(port11Controller)...)
	wire = append(wire, be16(0xffff)...)
	wire = append(wire, make([]byte, 6)...)

	var stream Buffer
	require.NoError(t, DecodeV11(wire, len(wire), &stream))

	require.NoError(t, Walk(stream.Bytes(), func(r Record) error {
		require.Equal(t, OUTPUT, r.Type)
		port := Port(binary.BigEndian.Uint16(r.Data[0:2]))
		require.Equal(t, PortController, port)
		return nil
	}))
}

func TestDecodeV11OutputRejectsOutOfRangeRegularPort(t *testing.T) {
	wire := append(be16(act11Output), be16(16)...)
	wire = append(wire, be32(uint32(PortMax)+1)...)
	wire = append(wire, be16(0)...)
	wire = append(wire, make([]byte, 6)...)

	var stream Buffer
	require.ErrorIs(t, DecodeV11(wire, len(wire), &stream), ErrBadArgument)
}

func TestEncodeV11ActionsRejectsEnqueue(t *testing.T) {
	var stream Buffer
	_, err := stream.Put(Header{Type: ENQUEUE, Len: recLen(8)}, Port(1), uint16(0), make([]byte, 4), uint32(0))
	require.NoError(t, err)
	stream.PutEnd()

	var out Buffer
	require.ErrorIs(t, EncodeV11Actions(stream.Bytes(), &out), ErrUnsupported11)
}
