package ofpact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecLen(t *testing.T) {
	assert.Equal(t, uint16(HeaderLen), recLen(0))
	assert.Equal(t, uint16(HeaderLen+6), recLen(6))
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "OUTPUT", OUTPUT.String())
	assert.Equal(t, "NOTE", NOTE.String())
	assert.Contains(t, Type(200).String(), "Type(200)")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "bad length", KindBadLen.String())
	assert.Contains(t, Kind(200).String(), "Kind(200)")
}
