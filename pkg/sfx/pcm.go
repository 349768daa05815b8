// Package sfx generates the game's sound cues as PCM and plays them through
// ebiten's audio context.
package sfx

import (
	"math"
	"math/rand/v2"
)

// SampleRate is shared by every generated cue and the audio context.
const SampleRate = 44100

// bytesPerFrame is 16-bit little endian, two channels.
const bytesPerFrame = 4

// Cue names a sound effect.
type Cue int

const (
	Hop Cue = iota
	Splash
	Squash
	Select
	Restart
)

func (c Cue) String() string {
	switch c {
	case Hop:
		return "hop"
	case Splash:
		return "splash"
	case Squash:
		return "squash"
	case Select:
		return "select"
	case Restart:
		return "restart"
	}
	return "unknown"
}

// Render returns the PCM bytes for c.
func Render(c Cue) []byte {
	switch c {
	case Hop:
		return Tone(660, 990, 0.06)
	case Splash:
		return Noise(0.35, 7)
	case Squash:
		return Tone(220, 55, 0.3)
	case Select:
		return Tone(880, 880, 0.05)
	case Restart:
		return Tone(440, 880, 0.15)
	}
	return nil
}

// Tone is a sine sweeping linearly from startHz to endHz over seconds, with
// a short attack and a linear release.
func Tone(startHz, endHz, seconds float64) []byte {
	n := int(seconds * SampleRate)
	buf := make([]byte, n*bytesPerFrame)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := startHz + (endHz-startHz)*t
		phase += 2 * math.Pi * freq / SampleRate
		putStereo16(buf, i, math.Sin(phase)*envelope(i, n))
	}
	return buf
}

// Noise is low-passed white noise from a fixed seed, fading out.
func Noise(seconds float64, seed uint64) []byte {
	rng := rand.New(rand.NewPCG(seed, 0))
	n := int(seconds * SampleRate)
	buf := make([]byte, n*bytesPerFrame)
	prev := 0.0
	for i := 0; i < n; i++ {
		prev += 0.15 * (rng.Float64()*2 - 1 - prev)
		putStereo16(buf, i, 2.5*prev*envelope(i, n))
	}
	return buf
}

func envelope(i, n int) float64 {
	attack := SampleRate / 200
	if i < attack {
		return float64(i) / float64(attack)
	}
	return 1 - float64(i)/float64(n)
}

// putStereo16 writes a [-1,1] sample to both channels of frame i.
func putStereo16(buf []byte, i int, sample float64) {
	sample = max(-1, min(1, sample))
	v := int16(sample * math.MaxInt16)
	buf[i*4] = byte(v)
	buf[i*4+1] = byte(v >> 8)
	buf[i*4+2] = byte(v)
	buf[i*4+3] = byte(v >> 8)
}
