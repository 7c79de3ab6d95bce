package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMPH(t *testing.T) {
	assert.InDelta(t, 22.37, ToMPH(10), 0.001)
	assert.Equal(t, 0.0, ToMPH(0))
}

func TestClamp(t *testing.T) {
	tests := []struct {
		value, min, max, want float64
	}{
		{value: -1, min: 0, max: 100, want: 0},
		{value: 50, min: 0, max: 100, want: 50},
		{value: 140, min: 0, max: 100, want: 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Clamp(tt.value, tt.min, tt.max))
	}
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 22.37, RoundTo(22.3704, 2))
	assert.Equal(t, 5.6, RoundTo(5.56, 1))
	assert.Equal(t, 3.0, RoundTo(2.6, 0))
}
