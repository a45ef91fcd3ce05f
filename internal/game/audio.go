package game

import (
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies the pre-rendered one-shot effects.
type SoundKind int

const (
	SoundMenuTick SoundKind = iota
	SoundMenuConfirm
	SoundCountBeep
	SoundCountGo
	SoundSkid
	SoundThud
	SoundCrash
	SoundLapChime
	SoundRecordFanfare
	SoundFinish
	soundKindCount
)

// AudioSystem owns the oto context, the one-shot sample table rendered at
// init, and the two streaming players (engine loop, menu music).
type AudioSystem struct {
	ctx           *oto.Context
	ready         chan struct{}
	sounds        [soundKindCount][]byte
	crashVariants [3][]byte
	enginePlayer  oto.Player
	musicPlayer   oto.Player
}

var globalAudio *AudioSystem

// activeCrashes limits simultaneous crash booms to avoid speaker clipping.
var activeCrashes int32
var crashVariantCounter uint64
var audioMuted int32

var sfxVolume = 0.58
var engineVolume = 0.34
var musicVolume = 0.17

// Sim-side engine inputs cross to the audio goroutine as atomic bit stores.
var engineSpeedBits uint64
var engineGravelBits uint64
var engineGainBits uint64
var musicGainBits = math.Float64bits(1.0)

// InitAudio opens the audio device and renders every one-shot effect into
// its sample buffer. The ready channel gates playback so a slow device
// never blocks a frame.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	a := &AudioSystem{ctx: ctx, ready: ready}
	for k := SoundKind(0); k < soundKindCount; k++ {
		a.sounds[k] = renderSound(k)
	}
	for i := range a.crashVariants {
		a.crashVariants[i] = genCrash(uint64(i))
	}
	globalAudio = a
	return nil
}

// EnsureStreams starts the engine and music loops once the device reports
// ready. Safe to call every frame; a no-op after both players exist.
func EnsureStreams() {
	a := globalAudio
	if a == nil {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	if a.enginePlayer == nil {
		p := a.ctx.NewPlayer(&engineReader{seed: 0xE261E})
		p.SetVolume(engineVolume)
		p.Play()
		a.enginePlayer = p
	}
	if a.musicPlayer == nil {
		p := a.ctx.NewPlayer(&musicReader{seed: uint64(time.Now().UnixNano())})
		p.SetVolume(musicVolume)
		p.Play()
		a.musicPlayer = p
	}
}

// SetEngineState publishes the sim-side inputs for the streaming engine
// synth. speedFrac is |Speed|/TopSpeed, gravel ramps in off the asphalt,
// gain ducks the engine on menu screens.
func SetEngineState(speedFrac, gravel, gain float64) {
	atomic.StoreUint64(&engineSpeedBits, math.Float64bits(clampF(speedFrac, 0, 1)))
	atomic.StoreUint64(&engineGravelBits, math.Float64bits(clampF(gravel, 0, 1)))
	atomic.StoreUint64(&engineGainBits, math.Float64bits(clampF(gain, 0, 1)))
}

// SetMusicActive fades the menu music in or out. The stream keeps running
// either way so toggling never clicks.
func SetMusicActive(on bool) {
	g := 0.0
	if on {
		g = 1.0
	}
	atomic.StoreUint64(&musicGainBits, math.Float64bits(g))
}

func SetMuted(m bool) {
	var v int32
	if m {
		v = 1
	}
	atomic.StoreInt32(&audioMuted, v)
}

func Muted() bool { return atomic.LoadInt32(&audioMuted) != 0 }

// ToggleMuted flips the mute flag and reports the new state.
func ToggleMuted() bool {
	m := !Muted()
	SetMuted(m)
	return m
}

// PlaySound fires a pre-rendered effect at full gain.
func PlaySound(kind SoundKind) {
	PlaySoundWithGain(kind, 1.0)
}

func PlaySoundWithGain(kind SoundKind, gain float64) {
	a := globalAudio
	if a == nil || gain <= 0 || Muted() {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	// Cap simultaneous crash booms at 2, more stacks into clipping.
	if kind == SoundCrash {
		if atomic.LoadInt32(&activeCrashes) >= 2 {
			return
		}
		atomic.AddInt32(&activeCrashes, 1)
	}
	samples := a.sounds[kind]
	if kind == SoundCrash {
		v := atomic.AddUint64(&crashVariantCounter, 1)
		samples = a.crashVariants[v%uint64(len(a.crashVariants))]
	}
	if len(samples) == 0 {
		if kind == SoundCrash {
			atomic.AddInt32(&activeCrashes, -1)
		}
		return
	}
	go func() {
		if kind == SoundCrash {
			defer atomic.AddInt32(&activeCrashes, -1)
		}
		reader := &soundReader{data: samples}
		player := a.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume * clampF(gain, 0, 1))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// ---- Engine loop ---------------------------------------------------------

// engineReader streams the car engine. Pitch follows the published speed
// fraction, a gravel layer fades in off the asphalt, and every control is
// smoothed per sample so state jumps never click.
type engineReader struct {
	t      float64
	phase  float64
	speed  float64
	gravel float64
	gain   float64
	intake float64
	crunch float64
	seed   uint64
}

func (e *engineReader) Read(p []byte) (int, error) {
	samples := len(p) / 8
	if samples == 0 {
		return 0, nil
	}
	targetSpeed := math.Float64frombits(atomic.LoadUint64(&engineSpeedBits))
	targetGravel := math.Float64frombits(atomic.LoadUint64(&engineGravelBits))
	targetGain := math.Float64frombits(atomic.LoadUint64(&engineGainBits))
	if Muted() {
		targetGain = 0
	}
	for i := 0; i < samples && i*8+7 < len(p); i++ {
		e.t += 1.0 / SampleRate
		e.speed += (targetSpeed - e.speed) * 0.00030
		e.gravel += (targetGravel - e.gravel) * 0.00045
		e.gain += (targetGain - e.gain) * 0.0012

		// Idle chug around 34 Hz climbing to a 230 Hz howl at top speed.
		freq := 34 + 196*e.speed
		flutter := 1 + 0.012*math.Sin(2*math.Pi*(11+6*e.speed)*e.t)
		e.phase += 2 * math.Pi * freq * flutter / SampleRate

		// Uneven harmonic stack reads as cylinders rather than a test tone.
		s := math.Sin(e.phase)*0.46 +
			math.Sin(e.phase*0.5)*0.30 +
			math.Sin(e.phase*2+0.35)*0.20 +
			math.Sin(e.phase*3.02+0.8)*0.10

		// Intake hiss rises with revs.
		e.intake = e.intake*0.72 + lcg(&e.seed)*0.28
		s += e.intake * (0.05 + 0.28*e.speed)

		// Gravel crunch under the floorpan when off the asphalt.
		if e.gravel > 0.001 {
			e.crunch = e.crunch*0.90 + lcg(&e.seed)*0.10
			gm := 0.55 + 0.45*math.Sin(2*math.Pi*27*e.t)
			s += e.crunch * gm * e.gravel * (0.25 + 0.5*e.speed)
		}

		out := softSat(s*(0.34+0.52*e.speed)) * e.gain
		putStereoF32(p, i, out)
	}
	return len(p), nil
}

// ---- Menu music ----------------------------------------------------------

// musicReader streams an endless night-drive groove for the menu screens:
// a descending four-chord bed, pulse bass, analog-style drums and a pluck
// arp. Gain fades toward the published target so screens hand off cleanly.
type musicReader struct {
	t        float64
	measure  int
	chordIdx int
	gain     float64
	seed     uint64
}

func (m *musicReader) Read(p []byte) (int, error) {
	samples := len(p) / 8
	if samples == 0 {
		return 0, nil
	}
	chords := [][]float64{
		{220.0, 277.2, 329.6}, // A
		{196.0, 246.9, 293.7}, // G
		{174.6, 220.0, 261.6}, // F
		{164.8, 207.7, 246.9}, // E
		{220.0, 261.6, 329.6}, // Am
		{196.0, 246.9, 311.1}, // Gm
		{174.6, 220.0, 277.2}, // F variant
		{164.8, 207.7, 261.6}, // E variant
	}
	const tempo = 1.8 // 108 BPM
	const beatsPerChord = 4
	const step16Len = 1.0 / (tempo * 4.0)
	const step8Len = 1.0 / (tempo * 2.0)

	kickPattern := [16]bool{
		true, false, false, false,
		true, false, false, false,
		true, false, false, false,
		true, false, false, true,
	}
	snarePattern := [16]bool{
		false, false, false, false,
		true, false, false, false,
		false, false, false, false,
		true, false, false, false,
	}
	bassPattern := [8]bool{true, false, true, true, false, true, false, true}
	arpOrder := [8]int{0, 1, 2, 1, 0, 2, 1, 2}

	targetGain := math.Float64frombits(atomic.LoadUint64(&musicGainBits))
	if Muted() {
		targetGain = 0
	}

	for i := 0; i < samples && i*8+7 < len(p); i++ {
		m.t += 1.0 / SampleRate
		m.gain += (targetGain - m.gain) * 0.0004

		beatLen := 1.0 / tempo
		beatTrig := math.Mod(m.t, beatLen)
		step16Trig := math.Mod(m.t, step16Len)
		step8Trig := math.Mod(m.t, step8Len)
		step16 := int(m.t*tempo*4) % 16
		step8 := int(m.t*tempo*2) % 8
		currentBeat := int(m.t * tempo)

		if currentBeat/beatsPerChord != m.measure {
			m.measure = currentBeat / beatsPerChord
			m.chordIdx = (m.chordIdx + 1) % len(chords)
		}
		chord := chords[m.chordIdx]
		chordProg := math.Mod(m.t*tempo, beatsPerChord) / beatsPerChord

		s := 0.0

		// Chord bed: harmonic stack with a slow swell per chord.
		chordEnv := 0.5 + 0.5*math.Min(1.0, chordProg*1.4)
		for ni := 0; ni < len(chord); ni++ {
			freq := chord[ni]
			ph := 2 * math.Pi * freq * m.t
			vox := math.Sin(ph)*0.66 + math.Sin(ph*2.0)*0.20 + triWave(ph*0.5)*0.12
			detune := math.Sin(2*math.Pi*(freq*1.004)*m.t) * 0.08
			s += (vox + detune) * chordEnv * 0.085
		}

		// Pulse bass, root with a fifth pickup.
		if bassPattern[step8] {
			bassFreq := chord[0] / 2
			if step8 == 5 {
				bassFreq = chord[2] / 2
			}
			if step8 == 7 {
				bassFreq = chord[0]
			}
			bEnv := adsr(math.Mod(m.t*tempo*2, 1.0), 0.02, 0.5, 0.24, 0.2)
			bPh := 2 * math.Pi * bassFreq * m.t
			bass := triWave(bPh)*0.56 + softSquareWave(bPh*0.5)*0.26
			s += bass * bEnv * 0.44
		}

		// Muted analog drums plus an offbeat shaker.
		if kickPattern[step16] {
			kf := 118.0*math.Exp(-step16Trig*16.0) + 44.0
			kickTone := math.Sin(2*math.Pi*kf*step16Trig) * math.Exp(-step16Trig*13.0) * 0.46
			kickClick := math.Sin(2*math.Pi*1800*step16Trig) * math.Exp(-step16Trig*120.0) * 0.07
			s += kickTone + kickClick
		}
		if snarePattern[step16] {
			n := lcg(&m.seed)
			snBody := math.Sin(2*math.Pi*190*step16Trig) * math.Exp(-step16Trig*22.0) * 0.15
			snNoise := n * math.Exp(-step16Trig*30.0) * 0.19
			s += snBody + snNoise
		}
		if step16%2 == 1 {
			shake := lcg(&m.seed) * math.Exp(-step8Trig*22.0) * 0.08
			s += shake
		}

		// Pluck arp over the chord, octave pops on the offbeats.
		arpIdx := arpOrder[step8]
		if arpIdx >= len(chord) {
			arpIdx = len(chord) - 1
		}
		arpFreq := chord[arpIdx]
		if step8%2 == 1 {
			arpFreq *= 2.0
		}
		arpEnv := adsr(math.Mod(m.t*tempo*2, 1.0), 0.01, 0.36, 0.12, 0.2)
		arpPh := 2 * math.Pi * arpFreq * m.t
		pluck := softSquareWave(arpPh)*0.62 + math.Sin(arpPh*2.0)*0.2
		s += pluck * arpEnv * 0.19

		duck := 1.0 - 0.10*math.Exp(-beatTrig*12.0)
		s = softSat(s*duck*0.9) * m.gain
		pan := 0.10*math.Sin(2*math.Pi*0.09*m.t) + 0.03*math.Sin(2*math.Pi*0.23*m.t+1.0)
		left := softSat(s * (1 - pan))
		right := softSat(s * (1 + pan))
		putStereoF32LR(p, i, left, right)
	}
	return len(p), nil
}
