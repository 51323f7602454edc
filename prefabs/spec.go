package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// Rules are the game-wide tuning values that do not belong to one prefab.
type Rules struct {
	Gravity           float64    `yaml:"gravity"`
	DamagePenalty     int        `yaml:"damage_penalty"`
	HealthCap         int        `yaml:"health_cap"`
	PhysicsIterations int        `yaml:"physics_iterations"`
	SkyTop            *YAMLColor `yaml:"sky_top"`
	SkyBottom         *YAMLColor `yaml:"sky_bottom"`
}

func DefaultRules() Rules {
	return Rules{
		Gravity:           1200,
		DamagePenalty:     2,
		HealthCap:         6,
		PhysicsIterations: 20,
	}
}

// LoadRules reads rules.yaml, filling anything left unset from
// DefaultRules.
func LoadRules() (Rules, error) {
	rules, err := LoadSpec[Rules]("rules.yaml")
	if err != nil {
		return DefaultRules(), err
	}
	def := DefaultRules()
	if rules.Gravity == 0 {
		rules.Gravity = def.Gravity
	}
	if rules.DamagePenalty == 0 {
		rules.DamagePenalty = def.DamagePenalty
	}
	if rules.HealthCap == 0 {
		rules.HealthCap = def.HealthCap
	}
	if rules.PhysicsIterations == 0 {
		rules.PhysicsIterations = def.PhysicsIterations
	}
	return rules, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns the wrapped color, or fallback when c is unset.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
