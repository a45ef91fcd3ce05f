package game

import "math"

// Procedural DSP for every effect in the game. All sounds are synthesized
// into stereo float32 LE buffers, nothing is loaded from disk.

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// putStereoF32LR writes independent left/right samples in [-1,1].
func putStereoF32LR(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	buf[i*8] = byte(lv)
	buf[i*8+1] = byte(lv >> 8)
	buf[i*8+2] = byte(lv >> 16)
	buf[i*8+3] = byte(lv >> 24)
	buf[i*8+4] = byte(rv)
	buf[i*8+5] = byte(rv >> 8)
	buf[i*8+6] = byte(rv >> 16)
	buf[i*8+7] = byte(rv >> 24)
}

// softSat applies gentle tanh-like saturation, no harsh clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
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
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

func triWave(phase float64) float64 {
	return (2.0 / math.Pi) * math.Asin(math.Sin(phase))
}

func softSquareWave(phase float64) float64 {
	return math.Tanh(math.Sin(phase) * 3.4)
}

// ---- One-shot effects ----------------------------------------------------

func renderSound(kind SoundKind) []byte {
	switch kind {
	case SoundMenuTick:
		return genMenuTick()
	case SoundMenuConfirm:
		return genMenuConfirm()
	case SoundCountBeep:
		return genCountBeep()
	case SoundCountGo:
		return genCountGo()
	case SoundSkid:
		return genSkid()
	case SoundThud:
		return genThud()
	case SoundLapChime:
		return genLapChime()
	case SoundRecordFanfare:
		return genRecordFanfare()
	case SoundFinish:
		return genFinish()
	}
	return nil
}

// genMenuTick: crisp click for cycling menu entries.
func genMenuTick() []byte {
	n := SampleRate * 55 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.12)
		freq := 1250 - 520*p
		s := fm(t, freq, 1.0, 0.55) * env * 0.34
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genMenuConfirm: two-note FM rise.
func genMenuConfirm() []byte {
	freqs := []float64{659.25, 987.77} // E5 B5
	noteLen := SampleRate * 70 / 1000
	tail := int(0.12 * SampleRate)
	total := len(freqs)*noteLen + tail
	mix := make([]float64, total)
	for fi, freq := range freqs {
		start := fi * noteLen
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.005, 0.5, 0.06, 0.3)
			s := fm(t, freq, 2.0, 3.0*env) * env * 0.34
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genCountBeep: flat starting-grid tone, one per countdown step.
func genCountBeep() []byte {
	n := int(0.16 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.1, 0.8, 0.18)
		s := math.Sin(2*math.Pi*524*t)*0.40 + math.Sin(2*math.Pi*1048*t)*0.08
		putStereoF32(buf, i, softSat(s*env))
	}
	return buf
}

// genCountGo: the grid tone an octave up, held and ringing out.
func genCountGo() []byte {
	n := int(0.55 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.008, 0.2, 0.55, 0.45)
		s := math.Sin(2*math.Pi*1048*t)*0.36 +
			math.Sin(2*math.Pi*1572*t)*0.10 +
			math.Sin(2*math.Pi*524*t)*0.14
		putStereoF32(buf, i, softSat(s*env))
	}
	return buf
}

// genSkid: tire squeal, a resonant wobble over bandpassed rub noise.
func genSkid() []byte {
	n := int(0.42 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(0x5C1D)
	lp1, lp2 := 0.0, 0.0
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.06, 0.2, 0.7, 0.3)
		wob := 1120 + 210*math.Sin(2*math.Pi*8.2*t) + 120*math.Sin(2*math.Pi*2.9*t+1.1)
		phase += 2 * math.Pi * wob / SampleRate
		squeal := math.Sin(phase) * 0.30
		raw := lcg(&seed)
		lp1 = lp1*0.55 + raw*0.45
		lp2 = lp2*0.93 + raw*0.07
		rub := (lp1 - lp2) * 0.5
		s := (squeal + rub) * env * 0.6
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genThud: blunt body hit for wall scrapes and spinouts.
func genThud() []byte {
	n := int(0.14 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(0x7D0D)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		crack := 0.0
		if p < 0.05 {
			crack = lcg(&seed) * (1 - p/0.05) * 0.5
		}
		lp = lp*0.80 + lcg(&seed)*0.20
		body := lp * math.Exp(-p*13) * 0.34
		thump := fm(t, 96, 0.5, 1.1) * math.Exp(-p*17) * 0.55
		s := crack + body + thump
		putStereoF32(buf, i, softSat(s*0.8))
	}
	return buf
}

// genCrash: sub boom, crack, bandpassed debris body and metal panel ring.
// Variants keep back-to-back crashes from sounding stamped out.
func genCrash(variant uint64) []byte {
	norm := 0.45 + 0.18*float64(variant%3)
	dur := 0.34 + 0.5*norm
	n := int(dur * SampleRate)
	buf := makeBuf(n)
	seed := splitmix64(0xBA57 ^ variant)
	lp1, lp2 := 0.0, 0.0
	rumLP := 0.0
	subPhase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)

		subStart := 150.0 - 52.0*norm
		subEnd := 32.0 - 12.0*norm
		subFreq := subStart * math.Pow(subEnd/subStart, p*(1.7+1.2*norm))
		subPhase += 2 * math.Pi * subFreq / SampleRate
		sub := math.Sin(subPhase) * math.Exp(-p*(6.6-3.0*norm)) * (0.46 + 0.28*norm)

		crack := 0.0
		if p < 0.03 {
			crack = lcg(&seed) * (1 - p/0.03) * 0.8
		}

		// Bandpassed body (~120-2200 Hz).
		raw := lcg(&seed)
		lp1 = lp1*0.76 + raw*0.24
		lp2 = lp2*0.975 + raw*0.025
		body := (lp1 - lp2) * math.Exp(-p*(5.8-2.0*norm)) * 0.36

		rumLP = rumLP*0.95 + lcg(&seed)*0.05
		rumble := rumLP * math.Exp(-p*2.6) * 0.20

		// Two detuned panel modes give the metallic clatter.
		ring := (math.Sin(2*math.Pi*870*t+1.3)*0.6 + math.Sin(2*math.Pi*1410*t)*0.4) *
			math.Exp(-p*9) * 0.12

		s := sub + crack + body + rumble + ring
		putStereoF32(buf, i, softSat(s*0.85))
	}
	return buf
}

// genLapChime: two-note bell marking a completed lap.
func genLapChime() []byte {
	freqs := []float64{783.99, 1174.66} // G5 D6
	noteLen := SampleRate * 90 / 1000
	tail := int(0.22 * SampleRate)
	total := len(freqs)*noteLen + tail
	mix := make([]float64, total)
	for fi, freq := range freqs {
		start := fi * noteLen
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.55, 0.05, 0.35)
			s := fm(t, freq, 2.756, 5.0*env) * env * 0.36
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genRecordFanfare: ascending FM bell staircase, each note rings over the next.
func genRecordFanfare() []byte {
	notes := []float64{523.25, 659.25, 783.99, 1046.5, 1318.51}
	noteStep := SampleRate * 85 / 1000
	total := len(notes)*noteStep + int(0.3*SampleRate)
	mix := make([]float64, total)
	for fi, freq := range notes {
		start := fi * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.003, 0.65, 0.04, 0.28)
			s := fm(t, freq, 3.5, 5.5*env) * env * 0.28
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.07
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genFinish: a major chord swelling in note by note as the car takes the flag.
func genFinish() []byte {
	dur := 0.9
	n := int(dur * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{261.63, 0.00}, // C4
		{329.63, 0.10}, // E4
		{392.00, 0.20}, // G4
		{523.25, 0.30}, // C5
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.01, 0.22, 0.32, 0.42)
			s := fm(t, note.freq, 2.0, 2.2*env) * env * 0.3
			s += math.Sin(2*math.Pi*note.freq*0.5*t) * env * 0.09
			mix[i] += s
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
