package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEveryPrefabDeclaresComponents(t *testing.T) {
	entries, err := PrefabsFS.ReadDir(".")
	require.NoError(t, err)

	for _, entry := range entries {
		if entry.Name() == "rules.yaml" {
			continue
		}
		spec, err := LoadEntityBuildSpec(entry.Name())
		require.NoError(t, err, entry.Name())
		assert.NotEmpty(t, spec.Name, entry.Name())
		assert.NotEmpty(t, spec.Components, entry.Name())
	}
}

func TestLoadRules(t *testing.T) {
	rules, err := LoadRules()
	require.NoError(t, err)
	assert.Equal(t, DefaultRules().Gravity, rules.Gravity)
	assert.Equal(t, 2, rules.DamagePenalty)
	assert.Equal(t, 6, rules.HealthCap)
	assert.Equal(t, color.NRGBA{R: 0x4a, G: 0x90, B: 0xd9, A: 0xff}, rules.SkyTop.Or(nil))
}

func TestYAMLColor(t *testing.T) {
	var c struct {
		A *YAMLColor `yaml:"a"`
		B *YAMLColor `yaml:"b"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("a: \"#10203040\"\n"), &c))
	assert.Equal(t, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, c.A.Color)
	assert.Equal(t, color.White, c.B.Or(color.White))

	assert.Error(t, yaml.Unmarshal([]byte("a: \"#123\"\n"), &c))
	assert.Error(t, yaml.Unmarshal([]byte("a: [1, 2]\n"), &c))
}

func TestDecodeComponentSpec(t *testing.T) {
	spec, err := LoadEntityBuildSpec("hero.yaml")
	require.NoError(t, err)

	body, err := DecodeComponentSpec[PhysicsBodyComponentSpec](spec.Components["physics_body"])
	require.NoError(t, err)
	assert.Equal(t, 36.0, body.Width)
	assert.True(t, body.Gravity)

	empty, err := DecodeComponentSpec[PhysicsBodyComponentSpec](nil)
	require.NoError(t, err)
	assert.Zero(t, empty)
}

func TestScriptPaths(t *testing.T) {
	for _, name := range []string{"spider.tengo", "scripts/spider.tengo", "prefabs/scripts/spider.tengo"} {
		data, err := LoadScript(name)
		require.NoError(t, err, name)
		assert.Contains(t, string(data), "fsm")
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, ChangePrefab, Classify("prefabs/hero.yaml"))
	assert.Equal(t, ChangeScript, Classify("prefabs/scripts/spider.TENGO"))
	assert.Equal(t, ChangeLevel, Classify("levels/level00.json"))
	assert.Equal(t, ChangeNone, Classify("notes.txt"))
}

func TestWatcherReportsEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "coin.yaml"), []byte("name: coin\n"), 0o644))

	var got []Change
	require.Eventually(t, func() bool {
		got = append(got, w.Drain()...)
		return len(got) > 0
	}, 2*time.Second, 10*time.Millisecond)

	for _, c := range got {
		assert.Equal(t, ChangePrefab, c.Kind)
		assert.Equal(t, "coin.yaml", filepath.Base(c.Path))
	}
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
