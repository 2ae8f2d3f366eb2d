package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundPickup
	SoundBuffEnd
	SoundCaveEnter
	SoundCaveExit
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int     `yaml:"sampleRate"`
	SFXVolume  float64 `yaml:"sfxVolume"` // 0.0 - 1.0, 0 mutes
}

// Tone is a synthesized effect: a sine sweep from StartHz to EndHz with a linear fade out.
type Tone struct {
	StartHz  float64
	EndHz    float64
	Duration float64 // seconds
}

// SoundConfig maps sound IDs to the tones that voice them
type SoundConfig struct {
	Tones             map[SoundID]Tone
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func resetAudio() {
	Audio = AudioConfig{
		SampleRate: 44100,
		SFXVolume:  0.6,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundPickup:    {StartHz: 660, EndHz: 1320, Duration: 0.12},
			SoundBuffEnd:   {StartHz: 520, EndHz: 260, Duration: 0.15},
			SoundCaveEnter: {StartHz: 220, EndHz: 110, Duration: 0.4},
			SoundCaveExit:  {StartHz: 110, EndHz: 220, Duration: 0.3},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundBuffEnd: 0.5,
		},
	}
}
