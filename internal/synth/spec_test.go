package synth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zeroCrossings counts sign changes; a sinusoid at f Hz over d seconds
// crosses zero about 2·f·d times.
func zeroCrossings(s []float64) int {
	count := 0
	for i := 1; i < len(s); i++ {
		if (s[i-1] >= 0) != (s[i] >= 0) {
			count++
		}
	}
	return count
}

func renderMono(t *testing.T, spec Spec, duration, amplitude float64) Mono {
	t.Helper()
	buf, err := spec.Render(duration, amplitude)
	require.NoError(t, err)
	m, ok := buf.(Mono)
	require.True(t, ok, "expected mono buffer, got %T", buf)
	return m
}

func TestToneMatchesSine(t *testing.T) {
	const (
		freq = 528.0
		dur  = 0.01
		amp  = 0.8
	)
	out := renderMono(t, Tone{Frequency: freq}, dur, amp)
	grid := TimeGrid(dur)
	require.Len(t, out, len(grid))
	for i, tm := range grid {
		want := amp * math.Sin(2*math.Pi*freq*tm)
		assert.InDelta(t, want, out[i], 1e-12, "sample %d", i)
	}
}

func TestToneZeroDurationIsEmpty(t *testing.T) {
	buf, err := Tone{Frequency: 440}.Render(0, 0.8)
	require.NoError(t, err)
	assert.Zero(t, buf.Frames())

	buf, err = Tone{Frequency: 440}.Render(-3, 0.8)
	require.NoError(t, err)
	assert.Zero(t, buf.Frames())
}

func TestRenderRejectsBadParameters(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		amp  float64
	}{
		{"zero frequency", Tone{Frequency: 0}, 0.8},
		{"negative frequency", Tone{Frequency: -440}, 0.8},
		{"zero amplitude", Tone{Frequency: 440}, 0},
		{"amplitude above one", Tone{Frequency: 440}, 1.5},
		{"binaural zero base", Binaural{Base: 0, Beat: 10}, 0.8},
		{"binaural zero beat", Binaural{Base: 200, Beat: 0}, 0.8},
		{"isochronic zero pulse", Isochronic{Carrier: 200, Pulse: 0}, 0.8},
		{"sweep zero start", Sweep{Start: 0, End: 1000}, 0.8},
		{"sweep zero end", Sweep{Start: 100, End: 0}, 0.8},
		{"layered empty", Layered{}, 0.8},
		{"layered negative member", Layered{Frequencies: []float64{440, -20}}, 0.8},
		{"harmonic stack zero fundamental", HarmonicStack{Fundamental: 0}, 0.8},
		{"bowl zero frequency", SingingBowl{Frequency: 0}, 0.8},
		{"drone empty", Drone{}, 0.8},
		{"noise bad amplitude", Noise{Color: White}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.spec.Render(1, tt.amp)
			assert.Error(t, err)
		})
	}
}

func TestBinauralChannelFrequencies(t *testing.T) {
	const (
		base = 200.0
		beat = 10.0
		dur  = 2.0
	)
	buf, err := Binaural{Base: base, Beat: beat}.Render(dur, 0.8)
	require.NoError(t, err)
	st, ok := buf.(Stereo)
	require.True(t, ok)
	require.Len(t, st, GridSize(dur))

	left := make([]float64, len(st))
	right := make([]float64, len(st))
	for i, frame := range st {
		left[i] = frame[0]
		right[i] = frame[1]
	}

	// ~2·f·d crossings per channel; right runs exactly beat Hz faster.
	assert.InDelta(t, 2*base*dur, float64(zeroCrossings(left)), 2)
	assert.InDelta(t, 2*(base+beat)*dur, float64(zeroCrossings(right)), 2)
}

func TestBinauralChannelsAreIndependentSinusoids(t *testing.T) {
	buf, err := Binaural{Base: 200, Beat: 7.83}.Render(0.05, 0.8)
	require.NoError(t, err)
	st := buf.(Stereo)
	grid := TimeGrid(0.05)
	for i, tm := range grid {
		assert.InDelta(t, 0.8*math.Sin(2*math.Pi*200*tm), st[i][0], 1e-12)
		assert.InDelta(t, 0.8*math.Sin(2*math.Pi*207.83*tm), st[i][1], 1e-12)
	}
}

func TestIsochronicStaysWithinAmplitude(t *testing.T) {
	const amp = 0.8
	out := renderMono(t, Isochronic{Carrier: 200, Pulse: 7.83}, 1, amp)
	for i, s := range out {
		require.LessOrEqual(t, math.Abs(s), amp+1e-12, "sample %d", i)
	}
}

func TestSweepQuadraticPhase(t *testing.T) {
	const (
		start = 100.0
		end   = 1000.0
		dur   = 2.0
		amp   = 0.8
	)
	out := renderMono(t, Sweep{Start: start, End: end}, dur, amp)
	grid := TimeGrid(dur)
	for _, i := range []int{0, 1, 1000, 22050, 44100, 88199} {
		tm := grid[i]
		phase := 2 * math.Pi * (start*tm + (end-start)*tm*tm/(2*dur))
		assert.InDelta(t, amp*math.Sin(phase), out[i], 1e-9, "sample %d", i)
	}
}

func TestSweepInstantaneousFrequencyAtEnds(t *testing.T) {
	const (
		start = 100.0
		end   = 1000.0
		dur   = 2.0
	)
	out := renderMono(t, Sweep{Start: start, End: end}, dur, 0.8)

	// Average instantaneous frequency over the first 0.05 s is
	// start + (end-start)·0.025/dur ≈ 111.25 Hz, so about 11 crossings.
	window := GridSize(0.05)
	head := zeroCrossings(out[:window])
	assert.InDelta(t, 11.1, float64(head), 2)

	// Over the last 0.05 s it is ≈ 988.75 Hz, about 99 crossings.
	tail := zeroCrossings(out[len(out)-window:])
	assert.InDelta(t, 98.9, float64(tail), 3)
}

func TestLayeredAmplitudeScalesWithCount(t *testing.T) {
	const amp = 0.8
	peak := func(freqs []float64) float64 {
		out := renderMono(t, Layered{Frequencies: freqs}, 1, amp)
		m := 0.0
		for _, s := range out {
			m = math.Max(m, math.Abs(s))
		}
		return m
	}

	// Equal-weight averaging keeps the sum within amplitude no matter
	// how many frequencies are stacked.
	few := peak([]float64{396, 417, 528})
	many := peak([]float64{174, 285, 396, 417, 528, 639, 741, 852, 963})
	assert.LessOrEqual(t, few, amp+1e-9)
	assert.LessOrEqual(t, many, amp+1e-9)
}

func TestLayeredMatchesAveragedSum(t *testing.T) {
	freqs := []float64{432, 528}
	out := renderMono(t, Layered{Frequencies: freqs}, 0.01, 0.8)
	grid := TimeGrid(0.01)
	for i, tm := range grid {
		want := 0.8 * (math.Sin(2*math.Pi*432*tm) + math.Sin(2*math.Pi*528*tm)) / 2
		assert.InDelta(t, want, out[i], 1e-12, "sample %d", i)
	}
}

func TestHarmonicStackEnvelope(t *testing.T) {
	const (
		dur  = 5.0
		amp  = 0.8
		fund = 136.1
	)
	out := renderMono(t, HarmonicStack{Fundamental: fund}, dur, amp)
	require.Len(t, out, GridSize(dur))

	// Faded to silence at both ends.
	assert.Zero(t, out[0])
	assert.Zero(t, out[len(out)-1])

	// The middle region carries no ramp: samples match the raw stack.
	grid := TimeGrid(dur)
	for _, i := range []int{SampleRate, SampleRate * 2, SampleRate * 4} {
		tm := grid[i]
		wave := math.Sin(2*math.Pi*fund*tm) +
			0.5*math.Sin(2*math.Pi*fund*2*tm) +
			0.25*math.Sin(2*math.Pi*fund*3*tm)
		assert.InDelta(t, amp*wave/1.75, out[i], 1e-12, "sample %d", i)
	}

	// Peak amplitude grows through the fade-in window.
	peak := func(lo, hi int) float64 {
		m := 0.0
		for _, s := range out[lo:hi] {
			m = math.Max(m, math.Abs(s))
		}
		return m
	}
	q := SampleRate / 8 // fade window is SampleRate/2 long
	assert.Less(t, peak(0, q), peak(q, 2*q))
	assert.Less(t, peak(q, 2*q), peak(2*q, 3*q))
}

func TestHarmonicStackShortDurationFadeOutWins(t *testing.T) {
	// At 0.6 s the two 0.5 s fade windows overlap; the fade-out ramp
	// must replace, not stack on, the fade-in ramp.
	const (
		dur  = 0.6
		amp  = 0.8
		fund = 136.1
	)
	out := renderMono(t, HarmonicStack{Fundamental: fund}, dur, amp)
	n := len(out)
	require.Equal(t, GridSize(dur), n)

	fade := SampleRate / 2
	grid := TimeGrid(dur)
	i := n - 1000 // inside both windows
	tm := grid[i]
	wave := math.Sin(2*math.Pi*fund*tm) +
		0.5*math.Sin(2*math.Pi*fund*2*tm) +
		0.25*math.Sin(2*math.Pi*fund*3*tm)
	want := amp * wave / 1.75 * float64(n-1-i) / float64(fade)
	assert.InDelta(t, want, out[i], 1e-12)
}

func TestSingingBowlDecays(t *testing.T) {
	out := renderMono(t, SingingBowl{Frequency: 432}, 3, 0.8)

	peak := func(lo, hi int) float64 {
		m := 0.0
		for _, s := range out[lo:hi] {
			m = math.Max(m, math.Abs(s))
		}
		return m
	}
	window := GridSize(0.5)
	early := peak(0, window)
	late := peak(len(out)-window, len(out))
	assert.Greater(t, early, late, "bowl should ring down")
}

func TestDroneEnvelopeAndBounds(t *testing.T) {
	out := renderMono(t, Drone{Frequencies: []float64{110, 220, 330}}, 2, 0.8)
	require.Len(t, out, GridSize(2))

	assert.Zero(t, out[0])
	assert.Zero(t, out[len(out)-1])

	// Per-voice AM depth is 0.15, so the averaged sum stays under
	// 1.15 × amplitude.
	for i, s := range out {
		require.LessOrEqual(t, math.Abs(s), 0.8*1.15+1e-9, "sample %d", i)
	}
}

func TestNoiseDeterministicAndBounded(t *testing.T) {
	for _, color := range []NoiseColor{White, Pink, Brown} {
		t.Run(color.String(), func(t *testing.T) {
			a := renderMono(t, Noise{Color: color}, 0.5, 0.8)
			b := renderMono(t, Noise{Color: color}, 0.5, 0.8)
			require.Len(t, a, GridSize(0.5))
			assert.Equal(t, a, b, "fixed seed must reproduce")

			for i, s := range a {
				require.LessOrEqual(t, math.Abs(s), 0.8*0.7+1e-9, "sample %d", i)
			}
		})
	}
}
