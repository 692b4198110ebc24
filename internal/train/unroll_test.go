package train

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestUnrollOrder(t *testing.T) {
	ws := []*mat.Dense{
		mat.NewDense(2, 2, []float64{1, 2, 3, 4}),
		mat.NewDense(1, 2, []float64{5, 6}),
	}
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, Unroll(ws))
}

func TestReshapeInvertsUnroll(t *testing.T) {
	ws := []*mat.Dense{
		mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6}),
		mat.NewDense(1, 3, []float64{7, 8, 9}),
	}
	out := Reshape(Unroll(ws), [][2]int{{2, 3}, {1, 3}})
	require.Len(t, out, 2)
	assert.True(t, mat.Equal(ws[0], out[0]))
	assert.True(t, mat.Equal(ws[1], out[1]))
}

func TestReshapeLengthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() { Reshape([]float64{1, 2, 3}, [][2]int{{2, 2}}) })
}
