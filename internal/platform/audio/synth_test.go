package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(44100)

// drain streams s to completion and returns every sample.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		t.Fatalf("stream error: %v", err)
	}
	return out
}

func TestOscillatorWaves(t *testing.T) {
	tests := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"triangle", WaveTriangle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples := drain(t, NewOscillator(440, 20*time.Millisecond, tt.wave, testRate))
			if want := testRate.N(20 * time.Millisecond); len(samples) != want {
				t.Errorf("streamed %d samples, expected %d", len(samples), want)
			}
			for i, s := range samples {
				if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
					t.Fatalf("sample %d = %v, expected equal channels in [-1, 1]", i, s)
				}
			}
		})
	}
}

func TestOscillatorSquareLevels(t *testing.T) {
	for i, s := range drain(t, NewOscillator(220, 10*time.Millisecond, WaveSquare, testRate)) {
		if s[0] != -1 && s[0] != 1 {
			t.Fatalf("square sample %d = %f, expected -1 or 1", i, s[0])
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	d := 40 * time.Millisecond
	osc := NewOscillator(440, d, WaveSquare, testRate)
	samples := drain(t, NewEnvelope(osc, d, 5*time.Millisecond, 10*time.Millisecond, testRate))

	if samples[0][0] != 0 {
		t.Errorf("first sample = %f, expected silence at the start of the attack", samples[0][0])
	}
	mid := len(samples) / 2
	if math.Abs(samples[mid][0]) != 1 {
		t.Errorf("sustain sample = %f, expected full level", samples[mid][0])
	}
	last := samples[len(samples)-1][0]
	if math.Abs(last) > 0.01 {
		t.Errorf("last sample = %f, expected near silence after release", last)
	}
}

func TestNewVolume(t *testing.T) {
	d := 5 * time.Millisecond

	half := drain(t, newVolume(NewOscillator(440, d, WaveSquare, testRate), 0.5))
	for i, s := range half {
		if math.Abs(math.Abs(s[0])-0.5) > 1e-9 {
			t.Fatalf("sample %d = %f, expected magnitude 0.5", i, s[0])
		}
	}

	for i, s := range drain(t, newVolume(NewOscillator(440, d, WaveSquare, testRate), 0)) {
		if s[0] != 0 {
			t.Fatalf("sample %d = %f, expected silence at zero volume", i, s[0])
		}
	}
}
