package prefabs

import "gopkg.in/yaml.v3"

// EntityBuildSpec is a prefab file: a name and a map of component name to
// that component's settings.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	ScaleX float64 `yaml:"scale_x"`
	ScaleY float64 `yaml:"scale_y"`
}

type SpriteComponentSpec struct {
	Image   string  `yaml:"image"`
	AnchorX float64 `yaml:"anchor_x"`
	AnchorY float64 `yaml:"anchor_y"`
	Hidden  bool    `yaml:"hidden"`
}

type AnimationDefSpec struct {
	Frames []int   `yaml:"frames"`
	FPS    float64 `yaml:"fps"`
	Loop   bool    `yaml:"loop"`
}

type AnimationComponentSpec struct {
	Sheet   string                      `yaml:"sheet"`
	FrameW  int                         `yaml:"frame_w"`
	FrameH  int                         `yaml:"frame_h"`
	Defs    map[string]AnimationDefSpec `yaml:"defs"`
	Current string                      `yaml:"current"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type PhysicsBodyComponentSpec struct {
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	OffsetX            float64 `yaml:"offset_x"`
	OffsetY            float64 `yaml:"offset_y"`
	Mass               float64 `yaml:"mass"`
	Static             bool    `yaml:"static"`
	Gravity            bool    `yaml:"gravity"`
	CollideWorldBounds bool    `yaml:"collide_world_bounds"`
}

// CollisionLayerComponentSpec names categories rather than bits:
// platform, boundary_wall, hero, enemy, world_bounds.
type CollisionLayerComponentSpec struct {
	Category []string `yaml:"category"`
	Mask     []string `yaml:"mask"`
}

type OverlapComponentSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

type HeroComponentSpec struct {
	Speed       float64 `yaml:"speed"`
	JumpSpeed   float64 `yaml:"jump_speed"`
	BounceSpeed float64 `yaml:"bounce_speed"`
}

type EnemyComponentSpec struct {
	Speed     float64 `yaml:"speed"`
	Lifecycle string  `yaml:"lifecycle"`
}

type BobComponentSpec struct {
	Offset       float64 `yaml:"offset"`
	Distance     float64 `yaml:"distance"`
	PeriodFrames int     `yaml:"period_frames"`
}

type AudioClipSpec struct {
	Name   string  `yaml:"name"`
	Sound  string  `yaml:"sound"`
	Volume float64 `yaml:"volume"`
}

type AudioComponentSpec struct {
	Clips    []AudioClipSpec `yaml:"clips"`
	Autoplay []string        `yaml:"autoplay"`
}
