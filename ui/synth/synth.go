// Package synth generates the short feedback tones as 16-bit mono PCM.
package synth

import (
	"encoding/binary"
	"math"
	"time"
)

const SampleRate = 44100

type Waveform int

const (
	Sine Waveform = iota
	Square
	Triangle
)

// Tone is a single fixed-pitch beep
type Tone struct {
	Wave      Waveform
	Frequency float64
	Gain      float64
	Duration  time.Duration
}

var (
	EatTone      = Tone{Wave: Sine, Frequency: 600, Gain: 0.2, Duration: 250 * time.Millisecond}
	StartTone    = Tone{Wave: Triangle, Frequency: 400, Gain: 0.3, Duration: 250 * time.Millisecond}
	GameOverTone = Tone{Wave: Square, Frequency: 120, Gain: 0.4, Duration: 250 * time.Millisecond}
)

// SampleCount returns how many samples the tone takes at sampleRate
func (t Tone) SampleCount(sampleRate int) int {
	return int(t.Duration.Seconds() * float64(sampleRate))
}

// Synthesize renders the tone at sampleRate.
func Synthesize(t Tone, sampleRate int) []int16 {
	n := t.SampleCount(sampleRate)
	samples := make([]int16, n)
	for i := range samples {
		phase := math.Mod(float64(i)*t.Frequency/float64(sampleRate), 1)
		v := oscillate(t.Wave, phase) * t.Gain
		samples[i] = int16(v * math.MaxInt16)
	}
	return samples
}

// oscillate returns the waveform value in [-1, 1] at phase in [0, 1)
func oscillate(w Waveform, phase float64) float64 {
	switch w {
	case Square:
		if phase < 0.5 {
			return 1
		}
		return -1
	case Triangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// PCMBytes packs samples little-endian, the layout raylib waves expect
func PCMBytes(samples []int16) []byte {
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(s))
	}
	return data
}
