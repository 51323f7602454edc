package main

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/levels"
)

// Cell glyphs, in draw order. Later kinds overwrite earlier ones.
const (
	glyphEmpty    = ' '
	glyphPlatform = '='
	glyphCoin     = 'o'
	glyphKey      = 'k'
	glyphDoor     = 'D'
	glyphSpider   = 'S'
	glyphHero     = '@'
)

// Rasterize scales a level onto a cols by rows character grid.
func Rasterize(spec *levels.Spec, cols, rows int) [][]rune {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = make([]rune, cols)
		for c := range grid[r] {
			grid[r][c] = glyphEmpty
		}
	}
	if spec == nil {
		return grid
	}

	sx := float64(cols) / common.BaseWidth
	sy := float64(rows) / common.BaseHeight
	cell := func(x, y float64) (int, int, bool) {
		c, r := int(x*sx), int(y*sy)
		if c < 0 || c >= cols || r < 0 || r >= rows {
			return 0, 0, false
		}
		return c, r, true
	}
	put := func(x, y float64, g rune) {
		if c, r, ok := cell(x, y); ok {
			grid[r][c] = g
		}
	}

	for _, p := range spec.Platforms {
		w, h, ok := levels.PlatformSize(p.Image)
		if !ok {
			continue
		}
		c0, r0 := int(p.X*sx), int(p.Y*sy)
		c1, r1 := int((p.X+float64(w))*sx), int((p.Y+float64(h))*sy)
		if c1 <= c0 {
			c1 = c0 + 1
		}
		if r1 <= r0 {
			r1 = r0 + 1
		}
		for r := max(r0, 0); r < min(r1, rows); r++ {
			for c := max(c0, 0); c < min(c1, cols); c++ {
				grid[r][c] = glyphPlatform
			}
		}
	}

	for _, p := range spec.Coins {
		put(p.X, p.Y, glyphCoin)
	}
	if spec.Key != nil {
		put(spec.Key.X, spec.Key.Y, glyphKey)
	}
	if spec.Door != nil {
		// The door is anchored at its bottom edge.
		put(spec.Door.X, spec.Door.Y-1, glyphDoor)
	}
	for _, p := range spec.Spiders {
		put(p.X, p.Y, glyphSpider)
	}
	if spec.Hero != nil {
		put(spec.Hero.X, spec.Hero.Y, glyphHero)
	}
	return grid
}
