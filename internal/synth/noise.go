package synth

// NoiseColor selects the spectral slope of the noise generator.
type NoiseColor int

const (
	White NoiseColor = iota // flat spectrum
	Pink                    // 1/f
	Brown                   // 1/f², integrated white
)

func (c NoiseColor) String() string {
	switch c {
	case White:
		return "white"
	case Pink:
		return "pink"
	case Brown:
		return "brown"
	}
	return "unknown"
}

// lcg is the fixed-seed linear congruential generator shared by all
// noise colors. Fixing the seed keeps every render reproducible: the
// same spec and duration always produce the same file.
type lcg uint64

const noiseSeed lcg = 12345

func (s *lcg) next() float64 {
	*s = *s*1103515245 + 12345
	return float64((*s>>16)&0x7FFF)/32767*2 - 1
}

// Noise renders deterministic pseudo-random noise. Output is pre-scaled
// by 0.7 so the colors sit at a comfortable background level relative to
// the tonal generators.
type Noise struct {
	Color NoiseColor
}

func (n Noise) sealed() {}

func (n Noise) Render(duration, amplitude float64) (Buffer, error) {
	if err := checkAmplitude(amplitude); err != nil {
		return nil, err
	}
	count := GridSize(duration)
	switch n.Color {
	case Pink:
		return pinkNoise(count, amplitude), nil
	case Brown:
		return brownNoise(count, amplitude), nil
	default:
		return whiteNoise(count, amplitude), nil
	}
}

func whiteNoise(count int, amplitude float64) Mono {
	seed := noiseSeed
	out := make(Mono, count)
	for i := range out {
		out[i] = amplitude * seed.next() * 0.7
	}
	return out
}

// pinkNoise uses the Voss-McCartney construction: one white source plus
// sixteen rows, where row j refreshes every 2^j samples.
func pinkNoise(count int, amplitude float64) Mono {
	seed := noiseSeed
	var rows [16]float64
	out := make(Mono, count)
	for i := range out {
		sum := seed.next()
		for j := range rows {
			if (i>>j)&1 != ((i-1)>>j)&1 {
				rows[j] = seed.next()
			}
			sum += rows[j]
		}
		out[i] = amplitude * sum / 17 * 0.7
	}
	return out
}

// brownNoise integrates white steps, clamped so the walk cannot drift
// outside [-1, 1].
func brownNoise(count int, amplitude float64) Mono {
	seed := noiseSeed
	last := 0.0
	out := make(Mono, count)
	for i := range out {
		last = min(max(last+seed.next()*0.02, -1), 1)
		out[i] = amplitude * last * 0.7
	}
	return out
}
