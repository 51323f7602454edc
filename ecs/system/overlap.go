package system

import (
	"sort"

	"github.com/kamstrup/intmap"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/logger"
	"github.com/milk9111/platformer/session"
	"github.com/sirupsen/logrus"
	"github.com/solarlune/resolv"
)

const (
	tagHero  = "hero"
	tagCoin  = "coin"
	tagEnemy = "enemy"
	tagKey   = "key"
	tagDoor  = "door"
)

const overlapCellSize = 32

// pickupTTL keeps a collected pickup alive long enough for AudioSystem to
// service its sound flag.
const pickupTTL = 2

// OverlapSystem finds hero overlaps with pickups, enemies and the door and
// applies their effects to the session. Handlers run in a fixed order and
// at most one level change is requested per frame.
type OverlapSystem struct {
	session *session.Session

	space   *resolv.Space
	objects *intmap.Map[ecs.Entity, *resolv.Object]
	tracked []ecs.Entity
}

func NewOverlapSystem(sess *session.Session) *OverlapSystem {
	return &OverlapSystem{
		session: sess,
		space:   resolv.NewSpace(common.BaseWidth, common.BaseHeight, overlapCellSize, overlapCellSize),
		objects: intmap.New[ecs.Entity, *resolv.Object](64),
	}
}

func (s *OverlapSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	s.sync(w)

	hero, ok := ecs.First(w, component.HeroTagComponent)
	if !ok {
		return
	}
	heroObj, ok := s.objects.Get(hero)
	if !ok {
		return
	}

	for _, e := range s.candidates(heroObj, tagCoin) {
		s.collectCoin(w, e)
	}

	// Stomps are judged on the hero's fall at contact time, so landing on
	// two spiders at once kills both.
	falling := false
	if body, ok := ecs.Get(w, hero, component.PhysicsBodyComponent); ok {
		falling = body.Velocity.Y > 0
	}
	for _, e := range s.candidates(heroObj, tagEnemy) {
		if levelChangePending(w) {
			return
		}
		s.hitEnemy(w, hero, e, falling)
	}

	for _, e := range s.candidates(heroObj, tagKey) {
		s.collectKey(w, e)
	}

	if levelChangePending(w) {
		return
	}
	for _, e := range s.candidates(heroObj, tagDoor) {
		if s.enterDoor(w, hero, e) {
			return
		}
	}
}

// sync mirrors enabled Overlap boxes into the resolv space.
func (s *OverlapSystem) sync(w *ecs.World) {
	kept := s.tracked[:0]
	for _, e := range s.tracked {
		obj, ok := s.objects.Get(e)
		if !ok {
			continue
		}
		if overlapActive(w, e) {
			kept = append(kept, e)
			continue
		}
		s.space.Remove(obj)
		s.objects.Del(e)
	}
	s.tracked = kept

	ecs.ForEach2(w, component.OverlapComponent, component.TransformComponent, func(e ecs.Entity, ov *component.Overlap, t *component.Transform) {
		if ov.Disabled {
			return
		}
		x, y := overlapOrigin(t, ov)
		if obj, ok := s.objects.Get(e); ok {
			obj.X, obj.Y = x, y
			obj.Update()
			return
		}
		tag := overlapTag(w, e)
		if tag == "" {
			return
		}
		obj := resolv.NewObject(x, y, ov.Width, ov.Height, tag)
		obj.Data = e
		s.space.Add(obj)
		s.objects.Put(e, obj)
		s.tracked = append(s.tracked, e)
	})
}

// candidates returns the entities tagged tag whose boxes strictly overlap
// the hero's, in entity order.
func (s *OverlapSystem) candidates(heroObj *resolv.Object, tag string) []ecs.Entity {
	col := heroObj.Check(0, 0, tag)
	if col == nil {
		return nil
	}
	var out []ecs.Entity
	for _, obj := range col.Objects {
		e, ok := obj.Data.(ecs.Entity)
		if !ok || !boxesOverlap(heroObj, obj) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func boxesOverlap(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

func overlapOrigin(t *component.Transform, ov *component.Overlap) (float64, float64) {
	return t.X + ov.OffsetX - ov.Width/2, t.Y + ov.OffsetY - ov.Height/2
}

func overlapTag(w *ecs.World, e ecs.Entity) string {
	switch {
	case ecs.Has(w, e, component.HeroTagComponent):
		return tagHero
	case ecs.Has(w, e, component.CoinTagComponent):
		return tagCoin
	case ecs.Has(w, e, component.EnemyTagComponent):
		return tagEnemy
	case ecs.Has(w, e, component.KeyTagComponent):
		return tagKey
	case ecs.Has(w, e, component.DoorTagComponent):
		return tagDoor
	default:
		return ""
	}
}

// overlapActive is the liveness check every handler starts with.
func overlapActive(w *ecs.World, e ecs.Entity) bool {
	ov, ok := ecs.Get(w, e, component.OverlapComponent)
	return ok && !ov.Disabled
}

func (s *OverlapSystem) collectCoin(w *ecs.World, e ecs.Entity) {
	if !overlapActive(w, e) {
		return
	}
	retirePickup(w, e, "coin")
	s.session.CollectCoin()
}

func (s *OverlapSystem) collectKey(w *ecs.World, e ecs.Entity) {
	if !overlapActive(w, e) {
		return
	}
	retirePickup(w, e, "key")
	s.session.CollectKey()
}

func retirePickup(w *ecs.World, e ecs.Entity, sound string) {
	if audioComp, ok := ecs.Get(w, e, component.AudioComponent); ok {
		audioComp.Request(sound)
	}
	if ov, ok := ecs.Get(w, e, component.OverlapComponent); ok {
		ov.Disabled = true
	}
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent); ok {
		sprite.Hidden = true
	}
	_ = ecs.Add(w, e, component.TTLComponent, &component.TTL{Frames: pickupTTL})
}

func (s *OverlapSystem) hitEnemy(w *ecs.World, hero, enemy ecs.Entity, falling bool) {
	if !overlapActive(w, enemy) {
		return
	}

	if falling {
		if body, ok := ecs.Get(w, hero, component.PhysicsBodyComponent); ok {
			if h, ok := ecs.Get(w, hero, component.HeroComponent); ok {
				BounceHero(body, h)
			}
		}
		KillEnemy(w, enemy)
		return
	}

	if audioComp, ok := ecs.Get(w, hero, component.AudioComponent); ok {
		audioComp.Request("hurt")
	}
	s.session.Damage()
	logger.Log.WithFields(logrus.Fields{
		"entity": enemy.String(),
		"health": s.session.Health,
	}).Debug("hero hit by enemy")
	RequestLevelChange(w, component.LevelRestart, "enemy")
}

func (s *OverlapSystem) enterDoor(w *ecs.World, hero, door ecs.Entity) bool {
	if !overlapActive(w, door) || !s.session.HasKey {
		return false
	}
	body, ok := ecs.Get(w, hero, component.PhysicsBodyComponent)
	if !ok || !body.Touching.Down {
		return false
	}
	if audioComp, ok := ecs.Get(w, door, component.AudioComponent); ok {
		audioComp.Request("door")
	}
	RequestLevelChange(w, component.LevelAdvance, "door")
	return true
}

// RequestLevelChange records a restart or advance for the play state to
// apply after the frame. Only the first request of a frame is kept.
func RequestLevelChange(w *ecs.World, kind component.LevelChange, reason string) bool {
	if levelChangePending(w) {
		return false
	}
	e := ecs.CreateEntity(w)
	return ecs.Add(w, e, component.LevelChangeRequestComponent, &component.LevelChangeRequest{Kind: kind, Reason: reason}) == nil
}

func levelChangePending(w *ecs.World) bool {
	_, ok := ecs.First(w, component.LevelChangeRequestComponent)
	return ok
}
