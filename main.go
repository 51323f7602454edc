package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/logger"
	"github.com/sirupsen/logrus"
)

func main() {
	level := flag.Int("level", 0, "starting level index (wraps around the level count)")
	debug := flag.Bool("debug", false, "enable debug mode: physics overlay, debug logging and hot reload")
	touch := flag.Bool("touch", false, "show on-screen left, right and jump buttons")
	mute := flag.Bool("mute", false, "disable sound effects")
	monitor := flag.Int("m", -1, "monitor index to open the window on (for multi-monitor setups)")
	flag.Parse()

	logger.Init()
	if *debug {
		logger.SetDebug()
	}

	if *monitor >= 0 {
		monitors := ebiten.AppendMonitors(nil)
		if *monitor < len(monitors) {
			ebiten.SetMonitor(monitors[*monitor])
		} else {
			logger.Log.WithFields(logrus.Fields{"monitor": *monitor, "available": len(monitors)}).Warn("no such monitor, using primary")
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("platformer")
	ebiten.SetTPS(common.TPS)

	game, err := NewGame(GameOptions{
		Level: *level,
		Debug: *debug,
		Touch: *touch,
		Mute:  *mute,
	})
	if err != nil {
		logger.Log.WithError(err).Error("failed to start")
		os.Exit(1)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		logger.Log.WithError(err).Error("game exited")
		os.Exit(1)
	}
}
