package system

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// BobSystem floats entities such as the key up and down around the spot
// they were placed at.
type BobSystem struct{}

func NewBobSystem() *BobSystem { return &BobSystem{} }

func (s *BobSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.BobComponent, component.TransformComponent, func(e ecs.Entity, bob *component.Bob, t *component.Transform) {
		if !bob.Initialized {
			bob.BaseY = t.Y
			bob.Tick = 0
			bob.Initialized = true
		} else {
			bob.Tick++
		}
		t.Y = BobY(bob)
	})
}

// BobY is the eased position for the bob's current tick.
func BobY(bob *component.Bob) float64 {
	eased := common.EaseInOutSine(common.Yoyo(bob.Tick, bob.Period))
	return bob.BaseY + bob.Offset + bob.Distance*eased
}
