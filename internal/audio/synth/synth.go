// Package synth generates the game's sound effects procedurally as
// interleaved stereo float32 little-endian PCM.
package synth

import "math"

const (
	SampleRate    = 44100
	ChannelCount  = 2
	BytesPerFrame = ChannelCount * 4
)

// Kind identifies a sound effect.
type Kind int

const (
	Eat Kind = iota
	GameOver
	Restart
	Turn
)

func (k Kind) String() string {
	switch k {
	case Eat:
		return "eat"
	case GameOver:
		return "game_over"
	case Restart:
		return "restart"
	case Turn:
		return "turn"
	}
	return "unknown"
}

// Generate returns the PCM for k, or nil for an unknown kind.
func Generate(k Kind) []byte {
	switch k {
	case Eat:
		return eat()
	case GameOver:
		return gameOver()
	case Restart:
		return restart()
	case Turn:
		return turn()
	}
	return nil
}

// Duration returns the playback length of pcm in seconds.
func Duration(pcm []byte) float64 {
	return float64(len(pcm)/BytesPerFrame) / SampleRate
}

// eat: snappy FM pop with rising pitch.
func eat() []byte {
	return mono(0.09, func(t, p float64) float64 {
		env := adsr(p, 0.01, 0.5, 0.0, 0.1)
		freq := 480 + 720*p
		s := fm(t, freq, 2.0, 3.5*env) * env * 0.5
		return s + math.Sin(2*math.Pi*freq*3*t)*env*0.06
	})
}

// turn: short soft tick, kept quiet so rapid steering is not tiring.
func turn() []byte {
	return mono(0.025, func(t, p float64) float64 {
		env := adsr(p, 0.02, 0.6, 0.0, 0.2)
		return fm(t, 1800-600*p, 1.0, 0.4) * env * 0.12
	})
}

// gameOver: descending minor triad, staggered.
func gameOver() []byte {
	return chord(0.75, []note{
		{freq: 329.63, onset: 0.00}, // E4
		{freq: 261.63, onset: 0.14}, // C4
		{freq: 220.00, onset: 0.28}, // A3
	}, func(t, np, freq float64) float64 {
		env := adsr(np, 0.008, 0.25, 0.3, 0.45)
		f := freq * (1 - np*0.025)
		s := fm(t, f, 2.0, 2.0*env) * env * 0.32
		return s + math.Sin(2*math.Pi*f*0.5*t)*env*0.1
	})
}

// restart: quick rising major arpeggio.
func restart() []byte {
	return chord(0.45, []note{
		{freq: 440.00, onset: 0.00},
		{freq: 554.37, onset: 0.07},
		{freq: 659.25, onset: 0.14},
	}, func(t, np, freq float64) float64 {
		env := adsr(np, 0.003, 0.65, 0.04, 0.28)
		return fm(t, freq, 3.5, 5.5*env)*env*0.26 + math.Sin(2*math.Pi*freq*2*t)*env*0.06
	})
}

type note struct {
	freq, onset float64 // Hz, seconds
}

// mono renders dur seconds of fn(t, progress) to both channels.
func mono(dur float64, fn func(t, p float64) float64) []byte {
	n := int(dur * SampleRate)
	buf := make([]byte, n*BytesPerFrame)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		putStereo(buf, i, softSat(fn(t, p)))
	}
	return buf
}

// chord mixes notes that each start at their onset and ring to the end.
func chord(dur float64, notes []note, voice func(t, np, freq float64) float64) []byte {
	n := int(dur * SampleRate)
	mix := make([]float64, n)
	for _, nt := range notes {
		start := int(nt.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			mix[i] += voice(t, np, nt.freq)
		}
	}
	buf := make([]byte, n*BytesPerFrame)
	for i, s := range mix {
		putStereo(buf, i, softSat(s))
	}
	return buf
}

// putStereo writes a [-1,1] sample as float32 LE to both channels of frame i.
func putStereo(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	off := i * BytesPerFrame
	for ch := 0; ch < ChannelCount; ch++ {
		o := off + ch*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

// softSat applies gentle tanh-like saturation instead of hard clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}
