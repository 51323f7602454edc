package assets

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/logger"
	"github.com/sirupsen/logrus"
)

// Options configure a Library.
type Options struct {
	Mute      bool
	SkyTop    color.Color
	SkyBottom color.Color
}

// Library hands out generated sprite sheets and sound players by name.
// Images and PCM data are built on first use and cached. A nil *Library is
// valid and returns nil images and players, which systems treat as "draw
// nothing" and "play nothing".
type Library struct {
	opts Options

	mu     sync.Mutex
	images map[string]*ebiten.Image
	pcm    map[string][]byte
	ctx    *audio.Context
}

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

func sharedAudioContext() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.NewContext(int(SampleRate))
	})
	return audioContext
}

func NewLibrary(opts Options) *Library {
	lib := &Library{
		opts:   opts,
		images: make(map[string]*ebiten.Image),
		pcm:    make(map[string][]byte),
	}
	if !opts.Mute {
		lib.ctx = sharedAudioContext()
	}
	return lib
}

// Image returns the named image. Platform images use the level names
// ("ground", "grass:4x1"); everything else is a fixed sprite name.
func (l *Library) Image(name string) (*ebiten.Image, error) {
	if l == nil || name == "" {
		return nil, nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if img, ok := l.images[name]; ok {
		return img, nil
	}
	img, err := l.draw(name)
	if err != nil {
		return nil, err
	}
	l.images[name] = img
	return img, nil
}

func (l *Library) draw(name string) (*ebiten.Image, error) {
	if w, h, ok := levels.PlatformSize(name); ok {
		return drawPlatform(w, h, name == "ground"), nil
	}
	switch name {
	case "hero":
		return drawHeroSheet(), nil
	case "spider":
		return drawSpiderSheet(), nil
	case "coin":
		return drawCoinSheet(), nil
	case "door":
		return drawDoor(), nil
	case "key":
		return drawKey(), nil
	case "background":
		return drawBackground(l.opts.SkyTop, l.opts.SkyBottom), nil
	case "icon:heart":
		return drawHeartsSheet(), nil
	case "icon:key":
		return drawKeyIconSheet(), nil
	case "icon:coin":
		return drawCoinIcon(), nil
	}
	return nil, fmt.Errorf("assets: unknown image %q", name)
}

// Player returns a fresh player for the named sound effect, or nil when the
// library is muted.
func (l *Library) Player(sound string) (*audio.Player, error) {
	if l == nil || l.ctx == nil || sound == "" {
		return nil, nil
	}
	pcm, err := l.soundPCM(sound)
	if err != nil {
		return nil, err
	}
	return l.ctx.NewPlayerFromBytes(pcm), nil
}

func (l *Library) soundPCM(sound string) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if pcm, ok := l.pcm[sound]; ok {
		return pcm, nil
	}
	streamer, ok := Effect(sound)
	if !ok {
		return nil, fmt.Errorf("assets: unknown sound %q", sound)
	}
	pcm := RenderPCM(streamer)
	l.pcm[sound] = pcm
	logger.Log.WithFields(logrus.Fields{"sound": sound, "bytes": len(pcm)}).Debug("synthesized sound")
	return pcm, nil
}
