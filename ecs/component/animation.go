package component

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// AnimationDef is an ordered list of sheet frames played at FPS.
type AnimationDef struct {
	Frames []int
	FPS    float64
	Loop   bool
}

// Animation plays named frame sequences out of a single-row sheet. Frame
// indexes into the current def's Frames, not into the sheet.
type Animation struct {
	Sheet      *ebiten.Image
	FrameW     int
	FrameH     int
	Defs       map[string]AnimationDef
	Current    string
	Frame      int
	FrameTimer int
	Playing    bool
	Finished   bool
}

// Play restarts the named animation from its first frame. It reports false
// when no such animation is defined.
func (a *Animation) Play(name string) bool {
	if a == nil {
		return false
	}
	if _, ok := a.Defs[name]; !ok {
		return false
	}
	a.Current = name
	a.Frame = 0
	a.FrameTimer = 0
	a.Playing = true
	a.Finished = false
	return true
}

// SheetFrame returns the sheet column currently shown.
func (a *Animation) SheetFrame() int {
	if a == nil {
		return 0
	}
	def, ok := a.Defs[a.Current]
	if !ok || len(def.Frames) == 0 {
		return 0
	}
	idx := a.Frame
	if idx < 0 {
		idx = 0
	}
	if idx >= len(def.Frames) {
		idx = len(def.Frames) - 1
	}
	return def.Frames[idx]
}

var AnimationComponent = NewComponent[Animation]()
