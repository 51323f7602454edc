// Command levelview previews level layouts in the terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/logger"
)

type viewer struct {
	screen tcell.Screen
	level  int
}

func main() {
	level := flag.Int("level", 0, "level index to show first")
	flag.Parse()

	logger.Init()

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Log.WithError(err).Error("levelview: no terminal")
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		logger.Log.WithError(err).Error("levelview: init terminal")
		os.Exit(1)
	}
	defer screen.Fini()

	v := &viewer{screen: screen, level: levels.Normalize(*level)}
	v.draw()

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				return
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
				return
			case ev.Key() == tcell.KeyLeft:
				v.level = levels.Normalize(v.level - 1)
			case ev.Key() == tcell.KeyRight:
				v.level = levels.Normalize(v.level + 1)
			}
			v.draw()
		case *tcell.EventResize:
			screen.Sync()
			v.draw()
		case nil:
			return
		}
	}
}

func (v *viewer) draw() {
	v.screen.Clear()
	cols, rows := v.screen.Size()

	spec, err := levels.Load(v.level)
	if err != nil {
		v.text(0, 0, err.Error(), tcell.StyleDefault.Foreground(tcell.ColorRed))
		v.screen.Show()
		return
	}

	grid := Rasterize(spec, cols, rows-1)
	for r, line := range grid {
		for c, g := range line {
			v.screen.SetContent(c, r, g, nil, glyphStyle(g))
		}
	}

	key := "no key"
	if spec.Key != nil {
		key = "key"
	}
	status := fmt.Sprintf(" %s  coins %d  spiders %d  %s   <-/-> switch  q quit",
		levels.Name(v.level), len(spec.Coins), len(spec.Spiders), key)
	v.text(0, rows-1, status, tcell.StyleDefault.Reverse(true))
	v.screen.Show()
}

func (v *viewer) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

func glyphStyle(g rune) tcell.Style {
	switch g {
	case glyphPlatform:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case glyphCoin:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case glyphKey:
		return tcell.StyleDefault.Foreground(tcell.ColorGold)
	case glyphDoor:
		return tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown)
	case glyphSpider:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	case glyphHero:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	default:
		return tcell.StyleDefault
	}
}
