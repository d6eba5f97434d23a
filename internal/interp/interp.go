// Package interp implements the N-dimensional hypercube location and
// multilinear blend used to evaluate every coefficient table.
package interp

import (
	"math"

	"github.com/camsima/f16model/internal/telemetry"
	"github.com/camsima/f16model/internal/tensor"
)

// Query evaluates t at the point x, one component per tensor dimension. On
// an out-of-grid query it logs through sink and returns NaN; the caller is
// responsible for staying within the table's envelope.
func Query(t *tensor.Tensor, x []float64, sink telemetry.Sink) float64 {
	low := make([]int, t.NDimension)
	high := make([]int, t.NDimension)
	for i := 0; i < t.NDimension; i++ {
		axisPts := t.Axes[i].Points
		xi := x[i]
		xmin, xmax := axisPts[0], axisPts[len(axisPts)-1]
		if xi < xmin || xi > xmax {
			sink.Error("interp: point lies outside the data grid", "dimension", i, "value", xi, "min", xmin, "max", xmax)
			return math.NaN()
		}
		l, h := locate(axisPts, xi)
		low[i] = l
		high[i] = h
	}
	return blend(t, x, low, high)
}

// locate scans a monotonic axis for the hypercube bracket containing x,
// collapsing to a single index on an exact grid hit.
func locate(axisPts []float64, x float64) (low, high int) {
	n := len(axisPts)
	for j := 0; j < n-1; j++ {
		switch {
		case x == axisPts[j]:
			return j, j
		case x == axisPts[j+1]:
			return j + 1, j + 1
		case x > axisPts[j] && x < axisPts[j+1]:
			return j, j + 1
		}
	}
	// x equals the final grid point (n-1 == n-1 case handled above for n>=2);
	// defensive fallback for a single-point axis.
	return n - 1, n - 1
}

// blend enumerates the 2^n hypercube corners, fetches their stored values,
// and collapses dimensions 0..n-1 in order via linear interpolation.
func blend(t *tensor.Tensor, x []float64, low, high []int) float64 {
	n := t.NDimension
	nVerts := 1 << uint(n)
	corner := make([]float64, nVerts)
	idx := make([]int, n)
	for i := 0; i < nVerts; i++ {
		for j := 0; j < n; j++ {
			if (i>>uint(j))&1 == 1 {
				idx[j] = high[j]
			} else {
				idx[j] = low[j]
			}
		}
		corner[i] = t.Data[t.LinIndex(idx)]
	}

	for dim := 0; dim < n; dim++ {
		half := nVerts / 2
		next := make([]float64, half)
		xlo := t.Axes[dim].Points[low[dim]]
		xhi := t.Axes[dim].Points[high[dim]]
		for i := 0; i < half; i++ {
			f1 := corner[2*i]
			f2 := corner[2*i+1]
			if low[dim] == high[dim] {
				next[i] = f1
				continue
			}
			lambda := (x[dim] - xlo) / (xhi - xlo)
			next[i] = (1-lambda)*f1 + lambda*f2
		}
		corner = next
		nVerts = half
	}
	return corner[0]
}
