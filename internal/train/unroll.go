package train

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Unroll flattens the weight matrices into a single vector, matrices in
// layer order, each in row-major order. The minimizers operate on this
// flat form.
func Unroll(ws []*mat.Dense) []float64 {
	var total int
	for _, w := range ws {
		r, c := w.Dims()
		total += r * c
	}
	out := make([]float64, 0, total)
	for _, w := range ws {
		r, c := w.Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				out = append(out, w.At(i, j))
			}
		}
	}
	return out
}

// Reshape splits a flat weight vector back into matrices of the given
// shapes, the inverse of Unroll.
//
// Panics when the vector length does not match the shapes, as the
// caller controls both sides.
func Reshape(x []float64, dims [][2]int) []*mat.Dense {
	var total int
	for _, d := range dims {
		total += d[0] * d[1]
	}
	if len(x) != total {
		panic(fmt.Sprintf("train: Reshape got %d values, shapes need %d", len(x), total))
	}

	out := make([]*mat.Dense, len(dims))
	offset := 0
	for i, d := range dims {
		size := d[0] * d[1]
		out[i] = mat.NewDense(d[0], d[1], append([]float64(nil), x[offset:offset+size]...))
		offset += size
	}
	return out
}
