package ofpact

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateRejectsOutputPortBeyondSwitch(t *testing.T) {
	var stream Buffer
	_, err := stream.Put(Header{Type: OUTPUT, Len: recLen(4)}, Port(40), uint16(0))
	require.NoError(t, err)
	stream.PutEnd()

	require.ErrorIs(t, Validate(stream.Bytes(), &Flow{}, 32), ErrBadOutPort)
	require.NoError(t, Validate(stream.Bytes(), &Flow{}, 64))
}

func TestValidateAllowsReservedOutputRegardlessOfPortCount(t *testing.T) {
	var stream Buffer
	_, err := stream.Put(Header{Type: OUTPUT, Len: recLen(4)}, PortFlood, uint16(0))
	require.NoError(t, err)
	stream.PutEnd()

	require.NoError(t, Validate(stream.Bytes(), &Flow{}, 1))
}

func TestValidateRejectsEnqueueToFlood(t *testing.T) {
	var stream Buffer
	_, err := stream.Put(Header{Type: ENQUEUE, Len: recLen(8)}, PortFlood, uint16(0), make([]byte, 4), uint32(3))
	require.NoError(t, err)
	stream.PutEnd()

	require.ErrorIs(t, Validate(stream.Bytes(), &Flow{}, 64), ErrBadOutPort)
}

func TestValidateRegMoveChecksPrereq(t *testing.T) {
	var stream Buffer
	src := uint32(0x00000600) // NXM_OF_ETH_TYPE, 16 bits
	dst := uint32(0x00001200) // NXM_OF_IP_SRC, requires eth_type=ipv4
	_, err := stream.Put(Header{Type: REG_MOVE, Len: recLen(14)}, src, dst, uint16(0), uint16(0), uint16(16))
	require.NoError(t, err)
	stream.PutEnd()

	require.Error(t, Validate(stream.Bytes(), &Flow{}, 64))
	require.NoError(t, Validate(stream.Bytes(), &Flow{Prereqs: map[string]bool{"eth_type=ipv4": true}}, 64))
}
