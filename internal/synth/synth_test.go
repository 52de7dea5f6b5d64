package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeGridLength(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		want     int
	}{
		{"one second", 1, 44100},
		{"two seconds", 2, 88200},
		{"half second", 0.5, 22050},
		{"fractional sample count floors", 0.0001, 4},
		{"zero duration is empty, not an error", 0, 0},
		{"negative duration is empty, not an error", -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, TimeGrid(tt.duration), tt.want)
			assert.Equal(t, tt.want, GridSize(tt.duration))
		})
	}
}

func TestTimeGridSpacing(t *testing.T) {
	grid := TimeGrid(1)
	require.Len(t, grid, 44100)

	assert.Zero(t, grid[0])
	assert.InDelta(t, 1.0/44100, grid[1], 1e-15)

	// Right endpoint excluded
	assert.Less(t, grid[len(grid)-1], 1.0)

	// Evenly spaced throughout
	step := grid[1] - grid[0]
	for i := 2; i < len(grid); i += 4411 {
		assert.InDelta(t, step, grid[i]-grid[i-1], 1e-12, "index %d", i)
	}
}

func TestTimeGridDeterministic(t *testing.T) {
	// Generators sharing a duration must see the identical grid.
	assert.Equal(t, TimeGrid(1.5), TimeGrid(1.5))
}

func TestStereoInterleaved(t *testing.T) {
	s := Stereo{{1, -1}, {2, -2}, {3, -3}}
	assert.Equal(t, 2, s.Channels())
	assert.Equal(t, 3, s.Frames())
	assert.Equal(t, []float64{1, -1, 2, -2, 3, -3}, s.Interleaved())
}

func TestMonoBuffer(t *testing.T) {
	m := Mono{0.1, 0.2, 0.3}
	assert.Equal(t, 1, m.Channels())
	assert.Equal(t, 3, m.Frames())
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, m.Interleaved())
}
