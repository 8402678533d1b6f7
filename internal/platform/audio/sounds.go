package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/super-breakout/internal/breakout"
)

// Sound identifies one synthesized sample.
type Sound int

const (
	SoundBoop Sound = iota // Wall and paddle bounce
	SoundLine              // Brick rows descending
	SoundBrickA
	SoundBrickB
	SoundBrickC
	SoundBrickD
	soundCount
)

// String returns a human-readable name for the sound.
func (s Sound) String() string {
	switch s {
	case SoundBoop:
		return "boop"
	case SoundLine:
		return "line"
	case SoundBrickA:
		return "brick_a"
	case SoundBrickB:
		return "brick_b"
	case SoundBrickC:
		return "brick_c"
	case SoundBrickD:
		return "brick_d"
	default:
		return "unknown"
	}
}

// SoundFor maps a game cue to the sample that plays it.
func SoundFor(c breakout.Cue) Sound {
	switch c.Kind {
	case breakout.CueWallBounce, breakout.CuePaddleHit:
		return SoundBoop
	case breakout.CueLineDescend:
		return SoundLine
	default:
		return SoundBrickA + Sound(c.Sound())
	}
}

// brickPitches are the click frequencies of the four brick samples.
var brickPitches = [breakout.BrickSoundCount]float64{1046.5, 1174.7, 1318.5, 1568.0}

// synthesize generates the raw streamer for a sound.
func synthesize(s Sound, rate beep.SampleRate) beep.Streamer {
	switch s {
	case SoundBoop:
		return tone(440, 440, 60*time.Millisecond, WaveSquare, rate)
	case SoundLine:
		return beep.Seq(
			tone(330, 300, 70*time.Millisecond, WaveTriangle, rate),
			tone(262, 220, 70*time.Millisecond, WaveTriangle, rate),
			tone(196, 150, 110*time.Millisecond, WaveTriangle, rate),
		)
	default:
		pitch := brickPitches[s-SoundBrickA]
		return beep.Mix(
			newVolume(tone(pitch, pitch*0.9, 35*time.Millisecond, WaveSquare, rate), 0.7),
			newVolume(tone(pitch*2, pitch*1.8, 35*time.Millisecond, WaveSine, rate), 0.3),
		)
	}
}

// Bank holds every sound rendered into memory at one volume.
type Bank struct {
	format  beep.Format
	buffers [soundCount]*beep.Buffer
}

// NewBank renders all sounds at the given sample rate and volume.
func NewBank(rate beep.SampleRate, volume float64) *Bank {
	b := &Bank{
		format: beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2},
	}
	for s := range soundCount {
		buf := beep.NewBuffer(b.format)
		buf.Append(newVolume(synthesize(s, rate), volume))
		b.buffers[s] = buf
	}
	return b
}

// Format returns the format the bank was rendered in.
func (b *Bank) Format() beep.Format {
	return b.format
}

// Len returns a sound's length in samples.
func (b *Bank) Len(s Sound) int {
	if s < 0 || s >= soundCount {
		return 0
	}
	return b.buffers[s].Len()
}

// Streamer returns a fresh streamer over a rendered sound, or nil for an
// unknown sound.
func (b *Bank) Streamer(s Sound) beep.StreamSeeker {
	if s < 0 || s >= soundCount {
		return nil
	}
	buf := b.buffers[s]
	return buf.Streamer(0, buf.Len())
}
