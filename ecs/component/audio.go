package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// Audio holds named sound players. Systems raise Play or Stop flags and
// AudioSystem services them at the end of the frame. Players may be nil when
// audio is muted or unavailable.
type Audio struct {
	Names   []string
	Players []*audio.Player
	Volume  []float64
	Play    []bool
	Stop    []bool
}

// Request raises the Play flag for name and reports whether name exists.
func (a *Audio) Request(name string) bool {
	if a == nil {
		return false
	}
	for i, n := range a.Names {
		if n != name {
			continue
		}
		if i < len(a.Play) {
			a.Play[i] = true
			return true
		}
		return false
	}
	return false
}

// Requested reports whether a Play flag is pending for name.
func (a *Audio) Requested(name string) bool {
	if a == nil {
		return false
	}
	for i, n := range a.Names {
		if n == name && i < len(a.Play) {
			return a.Play[i]
		}
	}
	return false
}

var AudioComponent = NewComponent[Audio]()
