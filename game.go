package main

import (
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/logger"
	"github.com/milk9111/platformer/play"
	"github.com/milk9111/platformer/prefabs"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/basicfont"
)

// Directories watched for hot reload in debug mode, relative to the
// working directory.
var watchDirs = []string{"prefabs", filepath.Join("prefabs", "scripts"), "levels"}

type GameOptions struct {
	Level int
	Debug bool
	Touch bool
	Mute  bool
}

type Game struct {
	opts GameOptions

	state *play.State
	lib   *assets.Library
	face  text.Face

	paused  bool
	pauseUI *ebitenui.UI
	touch   *TouchControls

	watcher *prefabs.Watcher
}

func NewGame(opts GameOptions) (*Game, error) {
	rules, err := prefabs.LoadRules()
	if err != nil {
		logger.Log.WithError(err).Warn("using default rules")
	}

	g := &Game{
		opts: opts,
		face: text.NewGoXFace(basicfont.Face7x13),
	}
	g.lib = newLibrary(opts.Mute, rules)

	stateOpts := play.Options{
		Lib:       g.lib,
		Rules:     rules,
		ReadInput: true,
		HUDFace:   g.face,
	}
	if opts.Touch {
		g.touch = NewTouchControls(g.face)
		stateOpts.Touch = g.touch
	}

	g.state, err = play.New(opts.Level, stateOpts)
	if err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)

	if opts.Debug {
		w, err := prefabs.NewWatcher(watchDirs...)
		if err != nil {
			logger.Log.WithError(err).Warn("hot reload disabled")
		} else {
			g.watcher = w
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"level": g.state.Session().Level,
		"touch": opts.Touch,
		"mute":  opts.Mute,
	}).Info("game started")

	return g, nil
}

func newLibrary(mute bool, rules prefabs.Rules) *assets.Library {
	return assets.NewLibrary(assets.Options{
		Mute:      mute,
		SkyTop:    rules.SkyTop.Or(nil),
		SkyBottom: rules.SkyBottom.Or(nil),
	})
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.applyFileChanges()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if g.touch != nil {
		g.touch.Update()
	}
	return g.state.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.state.Draw(screen, g.opts.Debug)

	if g.touch != nil {
		g.touch.Draw(screen)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

// applyFileChanges rebuilds the level after prefab, script or level edits.
// A failed rebuild is logged and the running level is kept.
func (g *Game) applyFileChanges() {
	changes := g.watcher.Drain()
	if len(changes) == 0 {
		return
	}

	for _, c := range changes {
		if filepath.Base(c.Path) != "rules.yaml" {
			continue
		}
		rules, err := prefabs.LoadRules()
		if err != nil {
			logger.Log.WithField("file", c.Path).WithError(err).Warn("rules reload failed")
			break
		}
		g.lib = newLibrary(g.opts.Mute, rules)
		g.state.SetRules(rules)
		g.state.SetLibrary(g.lib)
		break
	}

	if err := g.state.Reload(); err != nil {
		logger.Log.WithError(err).Error("hot reload failed, keeping current level")
		return
	}
	logger.Log.WithFields(logrus.Fields{
		"files": len(changes),
		"level": g.state.Session().Level,
	}).Info("hot reloaded")
}

func (g *Game) restartLevel() {
	if err := g.state.Restart(); err != nil {
		logger.Log.WithError(err).Error("restart failed")
	}
	g.paused = false
}

func (g *Game) newGame() {
	if err := g.state.NewGame(); err != nil {
		logger.Log.WithError(err).Error("new game failed")
	}
	g.paused = false
}
