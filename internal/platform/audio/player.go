package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/super-breakout/internal/breakout"
	"github.com/vovakirdan/super-breakout/internal/config"
)

// Player turns game cues into sound. Play must not block the frame loop.
type Player interface {
	Play(c breakout.Cue)
	Close() error
}

// Nop is a Player that discards every cue.
type Nop struct{}

func (Nop) Play(breakout.Cue) {}
func (Nop) Close() error      { return nil }

// Recorder is a Player that remembers the sounds it was asked to play.
type Recorder struct {
	mu     sync.Mutex
	sounds []Sound
	closed bool
}

// Play records the sound mapped from the cue.
func (r *Recorder) Play(c breakout.Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.sounds = append(r.sounds, SoundFor(c))
}

// Close stops recording.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

// Sounds returns a copy of everything recorded so far.
func (r *Recorder) Sounds() []Sound {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Sound, len(r.sounds))
	copy(out, r.sounds)
	return out
}

// maxVoices caps overlapping sounds. Brick cues arrive in bursts while the
// score drains; once the cap is reached the oldest voice is cut off.
const maxVoices = 16

// voice is a streamer that can be stopped from outside the mixer.
type voice struct {
	streamer beep.Streamer
	done     atomic.Bool
}

func (v *voice) Stream(samples [][2]float64) (int, bool) {
	if v.done.Load() {
		return 0, false
	}
	n, ok := v.streamer.Stream(samples)
	if !ok {
		v.done.Store(true)
	}
	return n, ok
}

func (v *voice) Err() error { return v.streamer.Err() }

// voicePool tracks live voices in start order.
type voicePool struct {
	limit  int
	voices []*voice
}

// add wraps s in a voice, stopping the oldest live voice if the pool is full.
func (p *voicePool) add(s beep.Streamer) *voice {
	live := p.voices[:0]
	for _, v := range p.voices {
		if !v.done.Load() {
			live = append(live, v)
		}
	}
	p.voices = live

	if len(p.voices) >= p.limit {
		p.voices[0].done.Store(true)
		p.voices = p.voices[1:]
	}

	v := &voice{streamer: s}
	p.voices = append(p.voices, v)
	return v
}

// Speaker plays cues through the system audio device.
type Speaker struct {
	bank   *Bank
	mixer  *beep.Mixer
	pool   voicePool
	mu     sync.Mutex
	closed bool
}

// speakerOnce guards speaker.Init, which may only run once per process.
var (
	speakerOnce sync.Once
	speakerErr  error
)

// NewSpeaker initializes the audio device and attaches a mixer to it.
func NewSpeaker(rate beep.SampleRate, volume float64) (*Speaker, error) {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(rate, rate.N(50*time.Millisecond))
	})
	if speakerErr != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", speakerErr)
	}

	s := &Speaker{
		bank:  NewBank(rate, volume),
		mixer: &beep.Mixer{},
		pool:  voicePool{limit: maxVoices},
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Play queues a cue's sound on the mixer.
func (s *Speaker) Play(c breakout.Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	streamer := s.bank.Streamer(SoundFor(c))
	if streamer == nil {
		return
	}

	v := s.pool.add(streamer)
	speaker.Lock()
	s.mixer.Add(v)
	speaker.Unlock()
}

// Close silences the mixer. beep has no way to release the device, so the
// speaker stays initialized for the rest of the process.
func (s *Speaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	return nil
}

// Open returns the player for the given settings. It never fails: a
// disabled, muted or unavailable device yields Nop.
func Open(cfg config.AudioConfig, muted bool, logger *log.Logger) Player {
	if !cfg.Enabled || muted || cfg.Volume <= 0 {
		logger.Debug("audio disabled", "enabled", cfg.Enabled, "muted", muted, "volume", cfg.Volume)
		return Nop{}
	}

	sp, err := NewSpeaker(beep.SampleRate(cfg.SampleRate), cfg.Volume)
	if err != nil {
		logger.Warn("audio unavailable, continuing without sound", "error", err)
		return Nop{}
	}
	logger.Debug("audio ready", "sample_rate", cfg.SampleRate, "volume", cfg.Volume)
	return sp
}
