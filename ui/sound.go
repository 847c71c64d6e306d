package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game"
	"snake-arcade/monitoring"
	"snake-arcade/ui/synth"
)

// SoundPlayer plays the synthesized feedback tones through the raylib audio
// device. Tones are built once when the player is opened.
type SoundPlayer struct {
	sounds map[game.Sound]rl.Sound
}

var tones = map[game.Sound]synth.Tone{
	game.SoundEat:      synth.EatTone,
	game.SoundStart:    synth.StartTone,
	game.SoundGameOver: synth.GameOverTone,
}

// NewSoundPlayer opens the audio device. When no device is available it
// returns a player that stays silent.
func NewSoundPlayer() *SoundPlayer {
	p := &SoundPlayer{sounds: make(map[game.Sound]rl.Sound, len(tones))}

	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		monitoring.Logf("audio device unavailable, sound disabled")
		return p
	}

	for s, tone := range tones {
		samples := synth.Synthesize(tone, synth.SampleRate)
		wave := rl.NewWave(uint32(len(samples)), synth.SampleRate, 16, 1, synth.PCMBytes(samples))
		p.sounds[s] = rl.LoadSoundFromWave(wave)
	}
	return p
}

func (p *SoundPlayer) Play(s game.Sound) {
	if snd, ok := p.sounds[s]; ok {
		rl.PlaySound(snd)
	}
}

func (p *SoundPlayer) Close() {
	if len(p.sounds) == 0 {
		return
	}
	for s, snd := range p.sounds {
		rl.UnloadSound(snd)
		delete(p.sounds, s)
	}
	rl.CloseAudioDevice()
}
