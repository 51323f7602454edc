package main

import (
	"testing"

	"github.com/milk9111/platformer/levels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countGlyph(grid [][]rune, g rune) int {
	n := 0
	for _, line := range grid {
		for _, r := range line {
			if r == g {
				n++
			}
		}
	}
	return n
}

func TestRasterizeFullScale(t *testing.T) {
	spec := &levels.Spec{
		Platforms: []levels.Platform{{X: 0, Y: 546, Image: "ground"}},
		Hero:      &levels.Point{X: 21, Y: 525},
		Spiders:   []levels.Point{{X: 600, Y: 530}},
		Coins:     []levels.Point{{X: 100, Y: 100}, {X: 200, Y: 100}},
		Door:      &levels.Point{X: 169, Y: 546},
	}
	grid := Rasterize(spec, 960, 600)
	require.Len(t, grid, 600)
	require.Len(t, grid[0], 960)

	assert.Equal(t, '@', grid[525][21])
	assert.Equal(t, 'S', grid[530][600])
	assert.Equal(t, 'D', grid[545][169])
	assert.Equal(t, 2, countGlyph(grid, 'o'))
	assert.Equal(t, 960*42, countGlyph(grid, '='))
	assert.Zero(t, countGlyph(grid, 'k'))
}

func TestRasterizeScalesDown(t *testing.T) {
	spec, err := levels.Load(0)
	require.NoError(t, err)

	grid := Rasterize(spec, 96, 30)
	require.Len(t, grid, 30)
	for _, line := range grid {
		require.Len(t, line, 96)
	}
	assert.Equal(t, 1, countGlyph(grid, '@'))
	assert.Equal(t, 1, countGlyph(grid, 'D'))
	assert.Equal(t, 1, countGlyph(grid, 'k'))
	assert.Positive(t, countGlyph(grid, '='))
}

func TestRasterizeDegenerate(t *testing.T) {
	assert.Nil(t, Rasterize(nil, 0, 10))
	grid := Rasterize(nil, 3, 2)
	assert.Equal(t, [][]rune{{' ', ' ', ' '}, {' ', ' ', ' '}}, grid)
}
