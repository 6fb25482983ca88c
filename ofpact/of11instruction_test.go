package ofpact

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func instHeader(typ, length uint16) []byte {
	hdr := append(be16(typ), be16(length)...)
	return append(hdr, make([]byte, 4)...)
}

func TestDecodeV11InstructionsAppliesActions(t *testing.T) {
	actions := append(be16(act11Output), be16(16)...)
	actions = append(actions, be32(port11Local)...)
	actions = append(actions, be16(0)...)
	actions = append(actions, make([]byte, 6)...)

	inst := instHeader(instApplyActions, uint16(8+len(actions)))
	inst = append(inst, actions...)

	var stream Buffer
	require.NoError(t, DecodeV11Instructions(inst, len(inst), &stream))

	var types []Type
	require.NoError(t, Walk(stream.Bytes(), func(r Record) error {
		types = append(types, r.Type)
		return nil
	}))
	require.Equal(t, []Type{OUTPUT}, types)
}

func TestDecodeV11InstructionsRejectsUnsupported(t *testing.T) {
	inst := instHeader(instGotoTable, 8)

	var stream Buffer
	require.ErrorIs(t, DecodeV11Instructions(inst, len(inst), &stream), ErrUnsupInst)
	require.Zero(t, stream.Len())
}

func TestDecodeV11InstructionsRejectsDuplicate(t *testing.T) {
	one := instHeader(instGotoTable, 8)

	inst := append(append([]byte{}, one...), one...)

	var stream Buffer
	require.ErrorIs(t, DecodeV11Instructions(inst, len(inst), &stream), ErrDupType)
}

func TestDecodeV11InstructionsEmptyMeansDrop(t *testing.T) {
	var stream Buffer
	require.NoError(t, DecodeV11Instructions(nil, 0, &stream))
}

func TestEncodeV11InstructionsRoundTrip(t *testing.T) {
	var actions Buffer
	_, err := actions.Put(Header{Type: OUTPUT, Len: recLen(4)}, Port(3), uint16(0))
	require.NoError(t, err)
	actions.PutEnd()

	var out Buffer
	require.NoError(t, EncodeV11Instructions(actions.Bytes(), &out))

	var stream Buffer
	require.NoError(t, DecodeV11Instructions(out.Bytes(), out.Len(), &stream))

	require.NoError(t, Walk(stream.Bytes(), func(r Record) error {
		require.Equal(t, OUTPUT, r.Type)
		return nil
	}))
}
