// Package play runs one playthrough: a session plus the world built for the
// session's current level.
package play

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/logger"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/session"
	"github.com/sirupsen/logrus"
)

// Options configure a State. The zero value runs headless: no images, no
// sound and no device input.
type Options struct {
	Lib   *assets.Library
	Rules prefabs.Rules

	// ReadInput schedules the keyboard, gamepad and Touch reader. Without
	// it the hero's Input component is left for the caller to drive.
	ReadInput bool
	Touch     system.TouchSource

	// HUDFace rasterizes the coin counter. Nil skips text rendering.
	HUDFace text.Face

	// LoadLevel defaults to levels.Load.
	LoadLevel func(index int) (*levels.Spec, error)
}

type State struct {
	opts    Options
	session *session.Session

	world     *ecs.World
	scheduler *ecs.Scheduler
	physics   *system.PhysicsSystem
	render    *system.RenderSystem
	level     *entity.LevelEntities
}

// New starts a session at level and builds its world.
func New(level int, opts Options) (*State, error) {
	if opts.Rules.PhysicsIterations == 0 {
		opts.Rules = prefabs.DefaultRules()
	}
	if opts.LoadLevel == nil {
		opts.LoadLevel = levels.Load
	}
	s := &State{
		opts:    opts,
		session: session.New(level, levels.Count, opts.Rules),
		render:  system.NewRenderSystem(),
	}
	if err := s.build(s.session.Level); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *State) World() *ecs.World { return s.world }
func (s *State) Session() *session.Session { return s.session }
func (s *State) Level() *entity.LevelEntities { return s.level }
func (s *State) Physics() *system.PhysicsSystem { return s.physics }
func (s *State) Scheduler() *ecs.Scheduler { return s.scheduler }
func (s *State) SetRules(rules prefabs.Rules) { s.opts.Rules = rules }
func (s *State) SetTouch(t system.TouchSource) { s.opts.Touch = t }
func (s *State) SetLibrary(lib *assets.Library) { s.opts.Lib = lib }
func (s *State) SetHUDFace(face text.Face) { s.opts.HUDFace = face }
func (s *State) HeroEntity() (ecs.Entity, bool) { return ecs.First(s.world, component.HeroTagComponent) }

// Update runs one frame and then applies any level change the frame
// requested. The session only moves once the new world is built; on a
// failed build the request is dropped and the current world keeps running.
func (s *State) Update() error {
	s.scheduler.Update(s.world)

	reqEntity, ok := ecs.First(s.world, component.LevelChangeRequestComponent)
	if !ok {
		return nil
	}
	req, _ := ecs.Get(s.world, reqEntity, component.LevelChangeRequestComponent)

	level, commit := s.session.Level, s.session.RestartLevel
	if req.Kind == component.LevelAdvance {
		level, commit = s.session.NextLevel(), s.session.AdvanceLevel
	}
	if err := s.build(level); err != nil {
		ecs.DestroyEntity(s.world, reqEntity)
		return err
	}
	commit()

	logger.Log.WithFields(logrus.Fields{
		"transition": req.Kind.String(),
		"reason":     req.Reason,
		"level":      s.session.Level,
		"health":     s.session.Health,
	}).Info("level change")
	return nil
}

// Restart rebuilds the current level without a damage penalty.
func (s *State) Restart() error {
	if err := s.build(s.session.Level); err != nil {
		return err
	}
	s.session.RestartLevel()
	return nil
}

// NewGame clears all progress and returns to the first level.
func (s *State) NewGame() error {
	if err := s.build(0); err != nil {
		return err
	}
	s.session.NewGame()
	return nil
}

// Reload rebuilds the current level from freshly read prefabs, scripts and
// levels. Pickups respawn, so per-level progress starts over as on a
// restart; health is kept. On failure the running world is kept.
func (s *State) Reload() error {
	entity.ResetLifecycleCache()
	return s.Restart()
}

// build replaces the world with a fresh one for level. The previous world
// stays in place if anything fails.
func (s *State) build(level int) error {
	spec, err := s.opts.LoadLevel(level)
	if err != nil {
		return fmt.Errorf("play: %w", err)
	}

	w := ecs.NewWorld()
	lvl, err := entity.BuildLevel(w, spec, s.opts.Lib)
	if err != nil {
		return fmt.Errorf("play: level %d: %w", level, err)
	}

	physics := system.NewPhysicsSystem(s.opts.Rules.PhysicsIterations)
	physics.SetGravity(s.opts.Rules.Gravity)

	scheduler := ecs.NewScheduler()
	if s.opts.ReadInput {
		scheduler.Add(system.NewInputSystem(s.opts.Touch))
	}
	scheduler.Add(physics)
	scheduler.Add(system.NewOverlapSystem(s.session))
	scheduler.Add(system.NewHeroControlSystem())
	scheduler.Add(system.NewPatrolSystem())
	scheduler.Add(system.NewHeroAnimationSystem())
	scheduler.Add(system.NewEnemyLifecycleSystem())
	scheduler.Add(system.NewAnimationSystem())
	scheduler.Add(system.NewBobSystem())
	scheduler.Add(system.NewAudioSystem())
	scheduler.Add(system.NewHUDSystem(s.session, s.opts.HUDFace))
	scheduler.Add(system.NewTTLSystem())

	s.world = w
	s.level = lvl
	s.physics = physics
	s.scheduler = scheduler
	return nil
}

// Draw renders the world; debug adds the collision overlay.
func (s *State) Draw(screen *ebiten.Image, debug bool) {
	s.render.Draw(s.world, screen)
	if debug {
		system.DrawPhysicsDebug(s.physics.Space(), s.world, screen)
		system.DrawHeroDebug(s.world, screen)
	}
}
