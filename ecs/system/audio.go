package system

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// AudioSystem services the Play and Stop flags raised during the frame.
// Flags are cleared even when no player is attached, so a muted game never
// accumulates requests.
type AudioSystem struct{}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{}
}

func (a *AudioSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AudioComponent, func(_ ecs.Entity, audioComp *component.Audio) {
		for i := range audioComp.Play {
			if !audioComp.Play[i] {
				continue
			}
			audioComp.Play[i] = false

			player := clipPlayer(audioComp, i)
			if player == nil {
				continue
			}
			player.SetVolume(clipVolume(audioComp, i))
			if err := player.Rewind(); err != nil {
				continue
			}
			player.Play()
		}

		for i := range audioComp.Stop {
			if !audioComp.Stop[i] {
				continue
			}
			audioComp.Stop[i] = false

			if player := clipPlayer(audioComp, i); player != nil && player.IsPlaying() {
				player.Pause()
			}
		}
	})
}

func clipPlayer(a *component.Audio, i int) *audio.Player {
	if i >= len(a.Players) || a.Players[i] == nil {
		return nil
	}
	return a.Players[i]
}

func clipVolume(a *component.Audio, i int) float64 {
	if i >= len(a.Volume) {
		return 1
	}
	return a.Volume[i]
}
