package session

import (
	"testing"

	"github.com/milk9111/platformer/prefabs"
	"github.com/stretchr/testify/assert"
)

func newTestSession(level int) *Session {
	return New(level, 2, prefabs.DefaultRules())
}

func TestNewWrapsLevel(t *testing.T) {
	assert.Equal(t, 0, newTestSession(0).Level)
	assert.Equal(t, 1, newTestSession(3).Level)
	assert.Equal(t, 1, newTestSession(-1).Level)
	assert.Equal(t, 0, New(5, 0, prefabs.DefaultRules()).Level)
}

func TestRestartKeepsHealth(t *testing.T) {
	s := newTestSession(1)
	s.Coins = 3
	s.HasKey = true
	s.Health = 2

	s.Damage()
	s.RestartLevel()

	assert.Equal(t, 0, s.Coins)
	assert.False(t, s.HasKey)
	assert.Equal(t, 4, s.Health)
	assert.Equal(t, 1, s.Level)
}

func TestAdvanceCyclesLevels(t *testing.T) {
	for n := 0; n < 7; n++ {
		s := newTestSession(0)
		for i := 0; i < n; i++ {
			s.CollectCoin()
			s.CollectKey()
			s.AdvanceLevel()
		}
		assert.Equal(t, n%2, s.Level, "after %d advances", n)
		assert.Zero(t, s.Coins)
		assert.False(t, s.HasKey)
	}
}

func TestNewGameClearsHealth(t *testing.T) {
	s := newTestSession(1)
	s.Damage()
	s.CollectCoin()
	s.NewGame()
	assert.Equal(t, Session{LevelCount: 2, DamagePenalty: 2, HealthCap: 6}, *s)
}

func TestHeartsFrameClamps(t *testing.T) {
	s := newTestSession(0)
	frames := []int{}
	for i := 0; i < 5; i++ {
		frames = append(frames, s.HeartsFrame())
		s.Damage()
	}
	assert.Equal(t, []int{0, 2, 4, 6, 6}, frames)
}

func TestNextLevelDoesNotMove(t *testing.T) {
	s := newTestSession(1)
	assert.Equal(t, 0, s.NextLevel())
	assert.Equal(t, 1, s.Level)
}
