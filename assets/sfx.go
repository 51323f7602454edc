package assets

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate matches the ebiten audio context.
const SampleRate = beep.SampleRate(44100)

type wave int

const (
	waveSine wave = iota
	waveSquare
	waveSaw
	waveNoise
)

// noise is white noise; beep's generators only cover periodic waves.
type noise struct{}

func (noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := rand.Float64()*2 - 1
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (noise) Err() error { return nil }

// tone is d worth of the given wave. A frequency the sample rate cannot
// carry yields silence.
func tone(freq float64, d time.Duration, w wave) beep.Streamer {
	var (
		s   beep.Streamer
		err error
	)
	switch w {
	case waveSine:
		s, err = generators.SineTone(SampleRate, freq)
	case waveSquare:
		s, err = generators.SquareTone(SampleRate, freq)
	case waveSaw:
		s, err = generators.SawtoothTone(SampleRate, freq)
	default:
		s = noise{}
	}
	if err != nil {
		return generators.Silence(SampleRate.N(d))
	}
	return beep.Take(SampleRate.N(d), s)
}

// decay fades a stream linearly to silence over d, with a short attack.
type decay struct {
	s      beep.Streamer
	pos    int
	total  int
	attack int
}

func fade(s beep.Streamer, d time.Duration) beep.Streamer {
	return &decay{s: s, total: SampleRate.N(d), attack: SampleRate.N(4 * time.Millisecond)}
}

func (e *decay) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1 - float64(e.pos)/float64(e.total)
		if e.pos < e.attack {
			vol *= float64(e.pos) / float64(e.attack)
		}
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *decay) Err() error { return e.s.Err() }

func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

func note(freq float64, d time.Duration, w wave) beep.Streamer {
	return fade(tone(freq, d, w), d)
}

// Effect builds the named sound effect: jump, coin, stomp, key or door.
func Effect(name string) (beep.Streamer, bool) {
	switch name {
	case "jump":
		return volume(beep.Seq(
			note(392, 40*time.Millisecond, waveSquare),
			note(523.25, 40*time.Millisecond, waveSquare),
			note(659.25, 70*time.Millisecond, waveSquare),
		), 0.35), true
	case "coin":
		return volume(beep.Seq(
			note(987.77, 60*time.Millisecond, waveSquare),
			note(1318.51, 160*time.Millisecond, waveSquare),
		), 0.3), true
	case "stomp":
		return volume(beep.Mix(
			note(90, 140*time.Millisecond, waveSaw),
			volume(note(0, 90*time.Millisecond, waveNoise), 0.5),
		), 0.6), true
	case "key":
		return volume(beep.Seq(
			note(880, 70*time.Millisecond, waveSine),
			note(1108.73, 70*time.Millisecond, waveSine),
			note(1318.51, 220*time.Millisecond, waveSine),
		), 0.5), true
	case "door":
		return volume(beep.Seq(
			note(440, 90*time.Millisecond, waveSaw),
			note(329.63, 90*time.Millisecond, waveSaw),
			note(220, 200*time.Millisecond, waveSaw),
		), 0.35), true
	}
	return nil, false
}

// RenderPCM drains s into 16-bit little-endian stereo PCM, the format
// ebiten's audio context plays.
func RenderPCM(s beep.Streamer) []byte {
	if s == nil {
		return nil
	}
	buf := make([][2]float64, 512)
	var out []byte
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][1])))
		}
		if !ok {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	return int16(v * math.MaxInt16)
}
