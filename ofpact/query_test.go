package ofpact

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutputsToPort(t *testing.T) {
	var stream Buffer
	_, err := stream.Put(Header{Type: OUTPUT, Len: recLen(4)}, Port(9), uint16(0))
	require.NoError(t, err)
	stream.PutEnd()

	require.True(t, OutputsToPort(stream.Bytes(), 9))
	require.False(t, OutputsToPort(stream.Bytes(), 10))
}

func TestOutputsToPortController(t *testing.T) {
	var stream Buffer
	_, err := stream.Put(Header{Type: CONTROLLER, Compat: CompatControllerExtended, Len: recLen(5)},
		uint16(128), uint16(0), uint8(1))
	require.NoError(t, err)
	stream.PutEnd()

	require.True(t, OutputsToPort(stream.Bytes(), uint32(PortController)))
	require.False(t, OutputsToPort(stream.Bytes(), 9))
}

func TestEqual(t *testing.T) {
	var a, b Buffer
	a.Put(Header{Type: DEC_TTL, Len: recLen(0)})
	a.PutEnd()
	b.Put(Header{Type: DEC_TTL, Len: recLen(0)})
	b.PutEnd()

	require.True(t, Equal(a.Bytes(), b.Bytes()))

	b.Reset()
	b.Put(Header{Type: EXIT, Len: recLen(0)})
	b.PutEnd()
	require.False(t, Equal(a.Bytes(), b.Bytes()))
}
