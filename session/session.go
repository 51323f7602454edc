// Package session holds the progress state that outlives a single level
// world: coins, key, level index and accumulated damage.
package session

import (
	"github.com/milk9111/platformer/prefabs"
)

// Session is mutated by the overlap handlers during a frame and by the play
// state between frames.
type Session struct {
	Coins  int
	HasKey bool
	Level  int
	// Health counts damage taken this playthrough. It survives restarts
	// and only NewGame clears it.
	Health int

	LevelCount    int
	DamagePenalty int
	HealthCap     int
}

// New starts a playthrough at level (taken modulo levelCount).
func New(level, levelCount int, rules prefabs.Rules) *Session {
	if levelCount <= 0 {
		levelCount = 1
	}
	s := &Session{
		LevelCount:    levelCount,
		DamagePenalty: rules.DamagePenalty,
		HealthCap:     rules.HealthCap,
	}
	s.Level = s.wrap(level)
	return s
}

func (s *Session) wrap(level int) int {
	level %= s.LevelCount
	if level < 0 {
		level += s.LevelCount
	}
	return level
}

func (s *Session) CollectCoin() {
	s.Coins++
}

func (s *Session) CollectKey() {
	s.HasKey = true
}

// Damage applies the hit penalty.
func (s *Session) Damage() {
	s.Health += s.DamagePenalty
}

// RestartLevel clears per-level progress and keeps health and level.
func (s *Session) RestartLevel() {
	s.Coins = 0
	s.HasKey = false
}

// NextLevel is the level AdvanceLevel moves to.
func (s *Session) NextLevel() int {
	return s.wrap(s.Level + 1)
}

// AdvanceLevel clears per-level progress and moves to the next level,
// wrapping after the last.
func (s *Session) AdvanceLevel() {
	s.RestartLevel()
	s.Level = s.NextLevel()
}

// NewGame resets everything, health included.
func (s *Session) NewGame() {
	s.RestartLevel()
	s.Health = 0
	s.Level = 0
}

// HeartsFrame is the HUD frame for the current damage, clamped to the cap.
func (s *Session) HeartsFrame() int {
	if s.Health < 0 {
		return 0
	}
	if s.HealthCap > 0 && s.Health > s.HealthCap {
		return s.HealthCap
	}
	return s.Health
}
