// Package audio plays the synthesized sound effects through oto.
package audio

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"snakegl/internal/audio/synth"
)

// Player owns the process-wide oto context. A nil *Player is valid and
// silent, so callers need no checks when audio failed to start.
type Player struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	pcm    map[synth.Kind][]byte

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// New opens the audio device. volume is clamped to [0,1].
func New(volume float64) (*Player, error) {
	ctx, ready, err := oto.NewContext(synth.SampleRate, synth.ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("audio context: %w", err)
	}
	p := &Player{
		ctx:    ctx,
		ready:  ready,
		volume: clamp01(volume),
		pcm:    make(map[synth.Kind][]byte),
	}
	// Effects are short; render them once up front.
	for _, k := range []synth.Kind{synth.Eat, synth.GameOver, synth.Restart, synth.Turn} {
		p.pcm[k] = synth.Generate(k)
	}
	return p, nil
}

// Play starts kind in the background. It never blocks the render loop and
// drops the sound if the device is not ready yet.
func (p *Player) Play(kind synth.Kind) {
	if p == nil || p.volume <= 0 {
		return
	}
	select {
	case <-p.ready:
	default:
		return
	}
	samples := p.pcm[kind]
	if len(samples) == 0 {
		return
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		player := p.ctx.NewPlayer(bytes.NewReader(samples))
		player.SetVolume(p.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// Close stops accepting sounds and waits for the ones in flight.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.wg.Wait()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
