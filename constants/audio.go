package constants

import "time"

// Audio output
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap is the minimum gap between two plays of the same sound
	MinSoundGap = 50 * time.Millisecond
)

// Collect chime (bell)
const (
	CollectSoundDuration           = 400 * time.Millisecond
	CollectSoundAttack             = 5 * time.Millisecond
	CollectSoundFundamentalRelease = 350 * time.Millisecond
	CollectSoundOvertoneRelease    = 150 * time.Millisecond
)

// Attack whoosh
const (
	AttackSoundDuration = 160 * time.Millisecond
	AttackSoundAttack   = 60 * time.Millisecond
	AttackSoundRelease  = 90 * time.Millisecond
)

// Elimination thud
const (
	EliminateSoundDuration = 120 * time.Millisecond
	EliminateSoundAttack   = 2 * time.Millisecond
	EliminateSoundRelease  = 80 * time.Millisecond
)

// Mischief buzz
const (
	MischiefSoundDuration = 150 * time.Millisecond
	MischiefSoundAttack   = 5 * time.Millisecond
	MischiefSoundRelease  = 40 * time.Millisecond
)

// Win coin (two notes)
const (
	WinSoundNote1Duration = 80 * time.Millisecond
	WinSoundNote2Duration = 280 * time.Millisecond
	WinSoundAttack        = 5 * time.Millisecond
	WinSoundNote1Release  = 40 * time.Millisecond
	WinSoundNote2Release  = 200 * time.Millisecond
)

// Loss tone (two falling notes)
const (
	LoseSoundNoteDuration = 220 * time.Millisecond
	LoseSoundAttack       = 10 * time.Millisecond
	LoseSoundRelease      = 150 * time.Millisecond
)
