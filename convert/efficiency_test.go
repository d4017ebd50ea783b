package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEfficiency(t *testing.T) {
	r := Efficiency(1000)

	assert.Equal(t, 1000, r.OriginalSize)
	assert.Equal(t, 1336, r.Base64Size)
	assert.Equal(t, 1250, r.Z85Size)
	assert.InDelta(t, 0.9356, r.EfficiencyRatio, 0.0001)
	assert.InDelta(t, 6.44, r.BandwidthSaving, 0.01)
}

func TestEfficiencyZero(t *testing.T) {
	r := Efficiency(0)

	assert.Equal(t, 0, r.OriginalSize)
	assert.Equal(t, 0, r.Base64Size)
	assert.Equal(t, 0, r.Z85Size)
	assert.Equal(t, 1.0, r.EfficiencyRatio)
	assert.Equal(t, 0.0, r.BandwidthSaving)
}

func TestEfficiencyLarge(t *testing.T) {
	r := Efficiency(100000)

	assert.Equal(t, 133336, r.Base64Size)
	assert.Equal(t, 125000, r.Z85Size)
	assert.Greater(t, r.BandwidthSaving, 6.0)
	assert.Less(t, r.BandwidthSaving, 7.0)
}

func TestEfficiencyBlockBoundaries(t *testing.T) {
	cases := []struct {
		size   int
		base64 int
		z85    int
	}{
		{1, 4, 5},
		{3, 4, 5},
		{4, 8, 5},
		{12, 16, 15},
	}

	for _, c := range cases {
		r := Efficiency(c.size)
		assert.Equal(t, c.base64, r.Base64Size, "size %d", c.size)
		assert.Equal(t, c.z85, r.Z85Size, "size %d", c.size)
	}
}
