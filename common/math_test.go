package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEaseInOutSine(t *testing.T) {
	assert.Equal(t, 0.0, EaseInOutSine(-1))
	assert.Equal(t, 1.0, EaseInOutSine(2))
	assert.InDelta(t, 0.5, EaseInOutSine(0.5), 1e-9)
	assert.Less(t, EaseInOutSine(0.1), 0.1)
}

func TestYoyo(t *testing.T) {
	cases := []struct {
		tick int
		want float64
	}{
		{0, 0},
		{24, 0.5},
		{48, 1},
		{72, 0.5},
		{96, 0},
		{120, 0.5},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, Yoyo(c.tick, 48), 1e-9, "tick %d", c.tick)
	}
	assert.Equal(t, 0.0, Yoyo(5, 0))
}
