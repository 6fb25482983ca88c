package ofpact

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestBufferPutAlignsRecords(t *testing.T) {
	var b Buffer

	_, err := b.Put(Header{Type: SET_VLAN_PCP, Len: recLen(1)}, uint8(3))
	require.NoError(t, err)
	require.Equal(t, HeaderLen+1, b.Len())

	off, err := b.Put(Header{Type: OUTPUT, Len: recLen(4)}, Port(1), uint16(0))
	require.NoError(t, err)
	require.Equal(t, Align, off, "second record must start on an 8-byte boundary")

	b.PutEnd()

	var seen []Type
	err = Walk(b.Bytes(), func(r Record) error {
		seen = append(seen, r.Type)
		return nil
	})
	require.NoError(t, err)
	if diff := cmp.Diff([]Type{SET_VLAN_PCP, OUTPUT}, seen); diff != "" {
		t.Errorf("Walk order mismatch (-want +got):\n%s", diff)
	}
}

func TestBufferPatchLen(t *testing.T) {
	var b Buffer

	off, err := b.Put(Header{Type: NOTE, Len: recLen(0)})
	require.NoError(t, err)
	b.Write([]byte{0xde, 0xad})
	b.PatchLen(off, uint16(HeaderLen+2))

	require.NoError(t, Walk(b.Bytes(), func(r Record) error {
		require.Equal(t, []byte{0xde, 0xad}, r.Data)
		return nil
	}))
}

func TestBufferResetClears(t *testing.T) {
	var b Buffer
	b.Put(Header{Type: EXIT, Len: recLen(0)})
	require.NotZero(t, b.Len())
	b.Reset()
	require.Zero(t, b.Len())
}
