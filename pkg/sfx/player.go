package sfx

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Player plays cues at a fixed volume. A disabled Player is silent.
type Player struct {
	ctx    *audio.Context
	volume float64
	cache  map[Cue][]byte
}

// NewPlayer creates the process's audio context when enabled. ebiten allows
// only one context per process, so create one Player.
func NewPlayer(enabled bool, volume float64) *Player {
	p := &Player{volume: volume, cache: make(map[Cue][]byte)}
	if !enabled || volume <= 0 {
		log.Printf("sfx: sound disabled")
		return p
	}
	p.ctx = audio.NewContext(SampleRate)
	for _, c := range []Cue{Hop, Splash, Squash, Select, Restart} {
		p.cache[c] = Render(c)
	}
	return p
}

// Enabled reports whether cues will be heard.
func (p *Player) Enabled() bool {
	return p != nil && p.ctx != nil
}

// Play starts c without waiting for it to finish.
func (p *Player) Play(c Cue) {
	if !p.Enabled() {
		return
	}
	pcm, ok := p.cache[c]
	if !ok {
		return
	}
	player := p.ctx.NewPlayerFromBytes(pcm)
	player.SetVolume(p.volume)
	player.Play()
}
