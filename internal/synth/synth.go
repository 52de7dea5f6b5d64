// Package synth renders fixed-duration waveforms as normalized float
// sample buffers on a shared 44100 Hz time grid. Every generator is a
// pure function of its spec, duration and amplitude, so renders are
// reproducible and safe to run in parallel.
package synth

// Process-wide PCM format. Every generator and the encoder agree on these.
const (
	SampleRate       = 44100 // samples per second, CD quality
	BitDepth         = 16
	DefaultAmplitude = 0.8
)

// GridSize returns the number of samples TimeGrid yields for a duration:
// floor(SampleRate * duration), zero for non-positive durations.
func GridSize(duration float64) int {
	if duration <= 0 {
		return 0
	}
	return int(float64(SampleRate) * duration)
}

// TimeGrid returns the sample instants for a duration: GridSize(duration)
// evenly spaced values covering [0, duration), right endpoint excluded so
// generators sharing a duration stay phase-aligned sample for sample.
// A non-positive duration yields an empty grid, not an error.
func TimeGrid(duration float64) []float64 {
	n := GridSize(duration)
	if n == 0 {
		return nil
	}
	t := make([]float64, n)
	for i := range t {
		t[i] = float64(i) * duration / float64(n)
	}
	return t
}

// Buffer is a rendered sample sequence, mono or stereo. Sample values are
// normalized floats; bounding to [-1, 1] happens at encode time.
type Buffer interface {
	Channels() int
	Frames() int
	Interleaved() []float64
}

// Mono is a single-channel sample sequence.
type Mono []float64

func (m Mono) Channels() int          { return 1 }
func (m Mono) Frames() int            { return len(m) }
func (m Mono) Interleaved() []float64 { return m }

// Stereo is a sequence of (left, right) sample pairs.
type Stereo [][2]float64

func (s Stereo) Channels() int { return 2 }
func (s Stereo) Frames() int   { return len(s) }

// Interleaved flattens the frames to left,right,left,right order.
func (s Stereo) Interleaved() []float64 {
	out := make([]float64, 0, len(s)*2)
	for _, frame := range s {
		out = append(out, frame[0], frame[1])
	}
	return out
}
