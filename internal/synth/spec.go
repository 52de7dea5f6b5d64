package synth

import (
	"errors"
	"fmt"
	"math"
)

// Spec describes one waveform to render. The set of implementations is
// closed: each variant carries exactly the numeric parameters its
// generator needs, so a missing parameter is a compile error rather than
// a missing map key.
//
// Render is permissive about duration (non-positive yields an empty
// buffer) but strict about everything else: non-positive frequencies and
// amplitudes outside (0, 1] fail before any samples are produced.
type Spec interface {
	Render(duration, amplitude float64) (Buffer, error)

	sealed()
}

func checkAmplitude(a float64) error {
	if a <= 0 || a > 1 {
		return fmt.Errorf("amplitude %v outside (0, 1]", a)
	}
	return nil
}

func checkFrequency(name string, hz float64) error {
	if hz <= 0 {
		return fmt.Errorf("%s frequency must be positive, got %v Hz", name, hz)
	}
	return nil
}

func checkFrequencies(name string, hz []float64) error {
	if len(hz) == 0 {
		return errors.New(name + " needs at least one frequency")
	}
	for _, f := range hz {
		if err := checkFrequency(name, f); err != nil {
			return err
		}
	}
	return nil
}

// Tone is a constant-frequency pure sinusoid.
type Tone struct {
	Frequency float64
}

func (t Tone) sealed() {}

func (t Tone) Render(duration, amplitude float64) (Buffer, error) {
	if err := checkFrequency("tone", t.Frequency); err != nil {
		return nil, err
	}
	if err := checkAmplitude(amplitude); err != nil {
		return nil, err
	}
	grid := TimeGrid(duration)
	out := make(Mono, len(grid))
	for i, tm := range grid {
		out[i] = amplitude * math.Sin(2*math.Pi*t.Frequency*tm)
	}
	return out, nil
}

// Binaural renders Base in the left ear and Base+Beat in the right. The
// perceived beat comes from the interaural frequency difference, so the
// channels stay independent pure sinusoids and are never mixed.
type Binaural struct {
	Base float64
	Beat float64
}

func (b Binaural) sealed() {}

func (b Binaural) Render(duration, amplitude float64) (Buffer, error) {
	if err := checkFrequency("binaural base", b.Base); err != nil {
		return nil, err
	}
	if err := checkFrequency("binaural beat", b.Beat); err != nil {
		return nil, err
	}
	if err := checkAmplitude(amplitude); err != nil {
		return nil, err
	}
	right := b.Base + b.Beat
	grid := TimeGrid(duration)
	out := make(Stereo, len(grid))
	for i, tm := range grid {
		out[i][0] = amplitude * math.Sin(2*math.Pi*b.Base*tm)
		out[i][1] = amplitude * math.Sin(2*math.Pi*right*tm)
	}
	return out, nil
}

// Isochronic pulses a carrier sinusoid on and off at the pulse rate.
// Audible without stereo separation, unlike a binaural pair.
type Isochronic struct {
	Carrier float64
	Pulse   float64
}

func (c Isochronic) sealed() {}

func (c Isochronic) Render(duration, amplitude float64) (Buffer, error) {
	if err := checkFrequency("isochronic carrier", c.Carrier); err != nil {
		return nil, err
	}
	if err := checkFrequency("isochronic pulse", c.Pulse); err != nil {
		return nil, err
	}
	if err := checkAmplitude(amplitude); err != nil {
		return nil, err
	}
	grid := TimeGrid(duration)
	out := make(Mono, len(grid))
	for i, tm := range grid {
		carrier := math.Sin(2 * math.Pi * c.Carrier * tm)
		// The half-range sinusoid already sits in [0, 1]; the clamp
		// guards against float drift and future envelope shapes.
		env := min(max(0.5*(1+math.Sin(2*math.Pi*c.Pulse*tm)), 0), 1)
		out[i] = amplitude * carrier * env
	}
	return out, nil
}

// Sweep is a linear chirp from Start to End over the full duration.
type Sweep struct {
	Start float64
	End   float64
}

func (s Sweep) sealed() {}

func (s Sweep) Render(duration, amplitude float64) (Buffer, error) {
	if err := checkFrequency("sweep start", s.Start); err != nil {
		return nil, err
	}
	if err := checkFrequency("sweep end", s.End); err != nil {
		return nil, err
	}
	if err := checkAmplitude(amplitude); err != nil {
		return nil, err
	}
	grid := TimeGrid(duration)
	out := make(Mono, len(grid))
	for i, tm := range grid {
		// Phase is the time integral of the instantaneous frequency.
		// sin(2π·f(t)·t) is not equivalent: it doubles the effective
		// sweep rate and produces audible discontinuities.
		phase := 2 * math.Pi * (s.Start*tm + (s.End-s.Start)*tm*tm/(2*duration))
		out[i] = amplitude * math.Sin(phase)
	}
	return out, nil
}

// Layered sums unit sinusoids at each frequency and divides by the count,
// so a longer frequency list never pushes the output past the amplitude.
type Layered struct {
	Frequencies []float64
}

func (l Layered) sealed() {}

func (l Layered) Render(duration, amplitude float64) (Buffer, error) {
	if err := checkFrequencies("layered", l.Frequencies); err != nil {
		return nil, err
	}
	if err := checkAmplitude(amplitude); err != nil {
		return nil, err
	}
	scale := amplitude / float64(len(l.Frequencies))
	grid := TimeGrid(duration)
	out := make(Mono, len(grid))
	for i, tm := range grid {
		var sum float64
		for _, f := range l.Frequencies {
			sum += math.Sin(2 * math.Pi * f * tm)
		}
		out[i] = sum * scale
	}
	return out, nil
}

// harmonicWeightSum normalizes the 1 + 0.5 + 0.25 harmonic weights.
const harmonicWeightSum = 1.75

// HarmonicStack layers the 2nd and 3rd harmonics over a fundamental at
// half and quarter weight, with a 0.5 s linear fade at each end. For
// durations of one second or less the fade windows overlap; the fade-out
// ramp wins there (see ApplyLinearFade).
type HarmonicStack struct {
	Fundamental float64
}

func (h HarmonicStack) sealed() {}

func (h HarmonicStack) Render(duration, amplitude float64) (Buffer, error) {
	if err := checkFrequency("harmonic stack", h.Fundamental); err != nil {
		return nil, err
	}
	if err := checkAmplitude(amplitude); err != nil {
		return nil, err
	}
	grid := TimeGrid(duration)
	out := make(Mono, len(grid))
	for i, tm := range grid {
		wave := math.Sin(2*math.Pi*h.Fundamental*tm) +
			0.5*math.Sin(2*math.Pi*h.Fundamental*2*tm) +
			0.25*math.Sin(2*math.Pi*h.Fundamental*3*tm)
		out[i] = amplitude * wave / harmonicWeightSum
	}
	fade := SampleRate / 2
	return ApplyLinearFade(out, fade, fade), nil
}
