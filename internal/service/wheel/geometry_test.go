package wheel

import (
	"food_wheel/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetAngle_Scenarios(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		index     int
		fullTurns int
		want      float64
	}{
		{name: "two candidates, first wins", count: 2, index: 0, fullTurns: 5, want: 2070},
		{name: "two candidates, second wins", count: 2, index: 1, fullTurns: 5, want: 1890},
		{name: "four candidates, third wins", count: 4, index: 2, fullTurns: 5, want: 1935},
		{name: "four candidates, no extra turns", count: 4, index: 0, fullTurns: 0, want: 315},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TargetAngle(tt.count, tt.index, tt.fullTurns)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestTargetAngle_Properties(t *testing.T) {
	for n := 2; n <= 12; n++ {
		for i := 0; i < n; i++ {
			for turns := 0; turns <= 6; turns++ {
				got, err := TargetAngle(n, i, turns)
				require.NoError(t, err)

				again, err := TargetAngle(n, i, turns)
				require.NoError(t, err)
				assert.Equal(t, got, again, "deterministic")

				want := NormalizeAngle(360 - (float64(i)*360/float64(n) + 180/float64(n)))
				assert.InDelta(t, want, NormalizeAngle(got), 1e-9, "n=%d i=%d", n, i)

				next, err := TargetAngle(n, i, turns+1)
				require.NoError(t, err)
				assert.InDelta(t, 360.0, next-got, 1e-9)

				assert.Equal(t, i, SliceAt(n, got), "winner slice must sit under the pointer")
			}
		}
	}
}

func TestTargetAngle_InvalidInput(t *testing.T) {
	tests := []struct {
		name                    string
		count, index, fullTurns int
	}{
		{name: "single candidate", count: 1, index: 0, fullTurns: 5},
		{name: "no candidates", count: 0, index: 0, fullTurns: 5},
		{name: "index too large", count: 3, index: 3, fullTurns: 5},
		{name: "negative index", count: 3, index: -1, fullTurns: 5},
		{name: "negative turns", count: 3, index: 0, fullTurns: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TargetAngle(tt.count, tt.index, tt.fullTurns)
			assert.ErrorIs(t, err, model.ErrInvalidGeometry)
		})
	}
}

func TestNormalizeAngle(t *testing.T) {
	assert.Equal(t, 0.0, NormalizeAngle(0))
	assert.Equal(t, 0.0, NormalizeAngle(360))
	assert.InDelta(t, 270.0, NormalizeAngle(2070), 1e-9)
	assert.InDelta(t, 350.0, NormalizeAngle(-10), 1e-9)
}

func TestSliceAt(t *testing.T) {
	assert.Equal(t, 0, SliceAt(4, 0), "unrotated wheel shows slice 0 right of the pointer")
	assert.Equal(t, 3, SliceAt(4, 1))
	assert.Equal(t, 2, SliceAt(4, 1935))
	assert.Equal(t, -1, SliceAt(0, 10))
}
