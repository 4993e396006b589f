package audio

import "math"

// SampleRate is the output rate for every synthesized cue.
const SampleRate = 44100

// bytesPerFrame is two float32 channels.
const bytesPerFrame = 8

// putStereo writes a [-1,1] sample as float32 LE to both channels of frame i.
func putStereo(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	o := i * bytesPerFrame
	buf[o] = byte(v)
	buf[o+1] = byte(v >> 8)
	buf[o+2] = byte(v >> 16)
	buf[o+3] = byte(v >> 24)
	copy(buf[o+4:o+8], buf[o:o+4])
}

// softSat saturates gently instead of clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1]. attack, decay and
// release are fractions of the total duration.
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

func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func frames(seconds float64) int {
	return int(seconds * SampleRate)
}

// render fills a buffer of the given length from a per-sample generator
// taking time in seconds and progress in [0,1).
func render(seconds float64, gen func(t, p float64) float64) []byte {
	n := frames(seconds)
	buf := make([]byte, n*bytesPerFrame)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		putStereo(buf, i, softSat(gen(t, p)))
	}
	return buf
}

// arpeggio overlaps notes started noteLen apart, each ringing to the end.
func arpeggio(freqs []float64, noteLen, tail, gain float64) []byte {
	step := frames(noteLen)
	total := len(freqs)*step + frames(tail)
	mix := make([]float64, total)
	for fi, freq := range freqs {
		start := fi * step
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			env := adsr(float64(j)/float64(dur), 0.004, 0.55, 0.05, 0.35)
			mix[start+j] += fm(t, freq, 2.756, 5.0*env) * env * gain
		}
	}
	buf := make([]byte, total*bytesPerFrame)
	for i, s := range mix {
		putStereo(buf, i, softSat(s))
	}
	return buf
}

func genSplash() []byte {
	seed := uint64(0x5eed)
	lp := 0.0
	return render(0.35, func(t, p float64) float64 {
		env := adsr(p, 0.02, 0.3, 0.3, 0.5)
		lp += (lcg(&seed) - lp) * (0.5 - 0.4*p)
		return lp * env * 0.8
	})
}

func genSurface() []byte {
	return render(0.25, func(t, p float64) float64 {
		env := adsr(p, 0.05, 0.4, 0.2, 0.4)
		freq := 300 + 500*p
		return fm(t, freq, 1.5, 2*env) * env * 0.35
	})
}

func genBoard() []byte {
	return render(0.3, func(t, p float64) float64 {
		env := adsr(p, 0.01, 0.4, 0.2, 0.4)
		return (math.Sin(2*math.Pi*110*t) + 0.5*math.Sin(2*math.Pi*220*t)) * env * 0.45
	})
}

func genExit() []byte {
	return render(0.2, func(t, p float64) float64 {
		env := adsr(p, 0.01, 0.5, 0.1, 0.3)
		return math.Sin(2*math.Pi*(220-100*p)*t) * env * 0.4
	})
}

func genClick(freq float64) []byte {
	return render(0.06, func(t, p float64) float64 {
		env := adsr(p, 0.02, 0.5, 0, 0.2)
		return fm(t, freq, 3, 4*env) * env * 0.4
	})
}

func genDepleted() []byte {
	return render(0.6, func(t, p float64) float64 {
		env := adsr(p, 0.01, 0.2, 0.6, 0.4)
		freq := 440 * math.Pow(0.5, 2*p)
		return fm(t, freq, 1, 1.5) * env * 0.35
	})
}

func genToggleWorld() []byte {
	return render(0.4, func(t, p float64) float64 {
		env := adsr(p, 0.2, 0.2, 0.5, 0.4)
		return fm(t, 180, 1.01, 6*p) * env * 0.3
	})
}

func genMinigameOpen() []byte {
	return render(0.5, func(t, p float64) float64 {
		env := adsr(p, 0.3, 0.2, 0.6, 0.3)
		return (math.Sin(2*math.Pi*330*t) + math.Sin(2*math.Pi*331.5*t)) * env * 0.25
	})
}

func genMiss() []byte {
	return render(0.18, func(t, p float64) float64 {
		env := adsr(p, 0.01, 0.6, 0, 0.2)
		return fm(t, 140, 1.41, 3) * env * 0.45
	})
}

func genBlackout() []byte {
	seed := uint64(0xd33b)
	return render(1.0, func(t, p float64) float64 {
		env := adsr(p, 0.05, 0.3, 0.4, 0.5)
		thud := math.Sin(2*math.Pi*(60-30*p)*t) * 0.7
		return (thud + lcg(&seed)*0.1) * env
	})
}
