package mf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupReg0(t *testing.T) {
	h := Header(id(0x0001, 1) | 4) // NXM_NX_REG0, no mask, 4-byte wire length
	field, ok := Lookup(h)
	require.True(t, ok)
	assert.Equal(t, "NXM_NX_REG0", field.Name)
	assert.Equal(t, 32, field.NumBits)
	assert.True(t, field.Maskable)
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup(Header(0xdeadbeef))
	assert.False(t, ok)
}

func TestCheckSrcOutOfRange(t *testing.T) {
	f := Field{Name: "x", NumBits: 16}
	assert.NoError(t, f.CheckSrc(0, 16))
	assert.Error(t, f.CheckSrc(8, 16))
	assert.Error(t, f.CheckSrc(0, 0))
}

func TestCheckDstRequiresMaskableForPartialWrite(t *testing.T) {
	f := Field{Name: "x", NumBits: 32, Maskable: false}
	assert.NoError(t, f.CheckDst(0, 32))
	assert.Error(t, f.CheckDst(0, 16))

	maskable := Field{Name: "y", NumBits: 32, Maskable: true}
	assert.NoError(t, maskable.CheckDst(4, 8))
}
