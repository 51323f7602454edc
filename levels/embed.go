package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/milk9111/platformer/common"
)

//go:embed *.json
var LevelsFS embed.FS

// Count is the number of levels the game cycles through.
const Count = 2

var (
	ErrMissingHero          = errors.New("missing hero")
	ErrMissingDoor          = errors.New("missing door")
	ErrUnknownPlatformImage = errors.New("unknown platform image")
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Platform struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Image string  `json:"image"`
}

// Spec is one level record. Hero, Door and Key positions are the sprite
// anchors: centre for hero and key, bottom-centre for the door. Platform
// positions are top-left corners.
type Spec struct {
	Platforms []Platform `json:"platforms"`
	Hero      *Point     `json:"hero"`
	Spiders   []Point    `json:"spiders"`
	Coins     []Point    `json:"coins"`
	Door      *Point     `json:"door"`
	Key       *Point     `json:"key"`
}

// Validate reports the first structural problem that would make the level
// unplayable.
func (s *Spec) Validate() error {
	if s == nil {
		return ErrMissingHero
	}
	if s.Hero == nil {
		return ErrMissingHero
	}
	if s.Door == nil {
		return ErrMissingDoor
	}
	for i, p := range s.Platforms {
		if _, _, ok := PlatformSize(p.Image); !ok {
			return fmt.Errorf("platform %d %q: %w", i, p.Image, ErrUnknownPlatformImage)
		}
	}
	return nil
}

// PlatformSize returns the pixel size of a platform image: "ground" is the
// full-width floor strip and "grass:NxM" is N by M tiles.
func PlatformSize(image string) (int, int, bool) {
	if image == "ground" {
		return common.BaseWidth, common.TileSize, true
	}
	dims, ok := strings.CutPrefix(image, "grass:")
	if !ok {
		return 0, 0, false
	}
	ws, hs, ok := strings.Cut(dims, "x")
	if !ok {
		return 0, 0, false
	}
	cols, err := strconv.Atoi(ws)
	if err != nil || cols <= 0 {
		return 0, 0, false
	}
	rows, err := strconv.Atoi(hs)
	if err != nil || rows <= 0 {
		return 0, 0, false
	}
	return cols * common.TileSize, rows * common.TileSize, true
}

// Normalize maps any index onto 0..Count-1.
func Normalize(index int) int {
	index %= Count
	if index < 0 {
		index += Count
	}
	return index
}

func Name(index int) string {
	return fmt.Sprintf("level%02d.json", Normalize(index))
}

// Parse decodes and validates one level record.
func Parse(data []byte) (*Spec, error) {
	var spec Spec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Load reads the level at index (taken modulo Count). A file under the
// working directory's levels/ folder wins over the embedded copy so edits
// can be hot reloaded.
func Load(index int) (*Spec, error) {
	name := Name(index)
	data, err := os.ReadFile(filepath.Join("levels", name))
	if err != nil {
		data, err = fs.ReadFile(LevelsFS, name)
		if err != nil {
			return nil, fmt.Errorf("levels: read %s: %w", name, err)
		}
	}
	spec, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: level %d: %w", Normalize(index), err)
	}
	return spec, nil
}
