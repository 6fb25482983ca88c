package ofpact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBridgePort11to16ReservedRoundTrip(t *testing.T) {
	p, err := bridgePort11to16(port11Flood)
	require.NoError(t, err)
	assert.Equal(t, PortFlood, p)
	assert.Equal(t, port11Flood, bridgePort16to11(p))
}

func TestBridgePort11to16RegularRoundTrip(t *testing.T) {
	p, err := bridgePort11to16(42)
	require.NoError(t, err)
	assert.Equal(t, Port(42), p)
	assert.Equal(t, uint32(42), bridgePort16to11(p))
}

func TestBridgePort11to16RejectsOutOfRange(t *testing.T) {
	_, err := bridgePort11to16(uint32(PortMax) + 1)
	require.Error(t, err)

	_, err = bridgePort11to16(0xfffffff0) // in the reserved range, but unassigned
	require.Error(t, err)
}

func TestValidOutPortAndEnqueuePort(t *testing.T) {
	assert.True(t, ValidOutPort(Port(1)))
	assert.True(t, ValidOutPort(PortFlood))
	assert.False(t, ValidOutPort(Port(PortMax)))

	assert.True(t, ValidEnqueuePort(PortInPort))
	assert.True(t, ValidEnqueuePort(PortLocal))
	assert.False(t, ValidEnqueuePort(PortFlood))
}
