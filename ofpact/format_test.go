package ofpact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatEmptyStreamIsDrop(t *testing.T) {
	var stream Buffer
	stream.PutEnd()

	var sb strings.Builder
	require.NoError(t, Format(stream.Bytes(), &sb))
	require.Equal(t, "drop", sb.String())
}

func TestFormatOutputAndStripVlan(t *testing.T) {
	var stream Buffer
	_, err := stream.Put(Header{Type: STRIP_VLAN, Len: HeaderLen})
	require.NoError(t, err)
	_, err = stream.Put(Header{Type: OUTPUT, Len: recLen(4)}, PortFlood, uint16(0))
	require.NoError(t, err)
	stream.PutEnd()

	var sb strings.Builder
	require.NoError(t, Format(stream.Bytes(), &sb))
	require.Equal(t, "strip_vlan,output:FLOOD", sb.String())
}

func TestFormatControllerExtended(t *testing.T) {
	var stream Buffer
	_, err := stream.Put(Header{Type: CONTROLLER, Compat: CompatControllerExtended, Len: recLen(5)},
		uint16(128), uint16(7), uint8(1))
	require.NoError(t, err)
	stream.PutEnd()

	var sb strings.Builder
	require.NoError(t, Format(stream.Bytes(), &sb))
	require.Equal(t, "controller(reason=1,max_len=128,id=7)", sb.String())
}

func TestFormatResubmitTable(t *testing.T) {
	var stream Buffer
	_, err := stream.Put(Header{Type: RESUBMIT, Compat: CompatResubmitTable, Len: recLen(3)}, Port(0), uint8(5))
	require.NoError(t, err)
	stream.PutEnd()

	var sb strings.Builder
	require.NoError(t, Format(stream.Bytes(), &sb))
	require.Equal(t, "resubmit(0,5)", sb.String())
}
