package synth

import "math"

// SingingBowl approximates a struck bowl: a fundamental with slow
// amplitude shimmer, inharmonic upper partials, an exponential decay and
// a 10 ms attack so the strike does not click.
type SingingBowl struct {
	Frequency float64
}

func (s SingingBowl) sealed() {}

func (s SingingBowl) Render(duration, amplitude float64) (Buffer, error) {
	if err := checkFrequency("singing bowl", s.Frequency); err != nil {
		return nil, err
	}
	if err := checkAmplitude(amplitude); err != nil {
		return nil, err
	}

	const (
		shimmerHz = 0.5
		attackSec = 0.01
		weightSum = 2.25 // 1 + 0.6 + 0.35 + 0.2 + 0.1
	)

	grid := TimeGrid(duration)
	out := make(Mono, len(grid))
	for i, tm := range grid {
		fundamental := math.Sin(2*math.Pi*s.Frequency*tm) *
			(1 + 0.1*math.Sin(2*math.Pi*shimmerHz*tm))

		// Real bowls ring at slightly stretched, inharmonic partials.
		wave := fundamental +
			0.6*math.Sin(2*math.Pi*s.Frequency*2.01*tm) +
			0.35*math.Sin(2*math.Pi*s.Frequency*3.03*tm) +
			0.2*math.Sin(2*math.Pi*s.Frequency*4.07*tm) +
			0.1*math.Sin(2*math.Pi*s.Frequency*5.12*tm)

		decay := math.Exp(-tm / (duration * 0.7))
		attack := 1.0
		if tm < attackSec {
			attack = tm / attackSec
		}
		out[i] = amplitude * wave / weightSum * decay * attack
	}
	return out, nil
}

// Drone sums slightly detuned voices, each with its own slow amplitude
// wobble, under a 3 s fade at both ends.
type Drone struct {
	Frequencies []float64
}

func (d Drone) sealed() {}

func (d Drone) Render(duration, amplitude float64) (Buffer, error) {
	if err := checkFrequencies("drone", d.Frequencies); err != nil {
		return nil, err
	}
	if err := checkAmplitude(amplitude); err != nil {
		return nil, err
	}

	voices := float64(len(d.Frequencies))
	grid := TimeGrid(duration)
	out := make(Mono, len(grid))
	for i, tm := range grid {
		var sum float64
		for idx, f := range d.Frequencies {
			detune := 1 + float64(idx)*0.001
			modRate := 0.1 + float64(idx)*0.03
			amp := 1 + 0.15*math.Sin(2*math.Pi*modRate*tm)
			sum += amp * math.Sin(2*math.Pi*f*detune*tm)
		}
		out[i] = amplitude * sum / voices
	}
	fade := FadeSamples(3)
	return ApplyLinearFade(out, fade, fade), nil
}
