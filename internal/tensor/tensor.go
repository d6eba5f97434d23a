// Package tensor owns the dense N-dimensional coefficient tables queried by
// the interpolator, and the catalog that loads all of them from a data
// directory at install time.
package tensor

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/camsima/f16model/internal/axis"
	"github.com/camsima/f16model/internal/ioutil"
)

// ErrNotFound is returned when a coefficient data file is missing.
var ErrNotFound = errors.New("tensor: file not found")

// ErrMalformed is returned when a coefficient data file is short or non-numeric.
var ErrMalformed = errors.New("tensor: malformed data")

// ErrInvalidAxis is returned when a table names an axis-set outside the
// seven recognized combinations.
var ErrInvalidAxis = errors.New("tensor: invalid axis set")

// AxisSetID names one of the seven axis-set combinations tensors are
// declared against.
type AxisSetID int

const (
	SetALPHA1 AxisSetID = iota
	SetALPHA2
	SetDH1
	SetALPHA1BETA1
	SetALPHA2BETA1
	SetALPHA1BETA1DH1
	SetALPHA1BETA1DH2
)

// axesFor returns the ordered axis identities making up a set, fastest
// varying first, matching the column-major stride convention.
func axesFor(id AxisSetID) ([]axis.ID, error) {
	switch id {
	case SetALPHA1:
		return []axis.ID{axis.ALPHA1}, nil
	case SetALPHA2:
		return []axis.ID{axis.ALPHA2}, nil
	case SetDH1:
		return []axis.ID{axis.DH1}, nil
	case SetALPHA1BETA1:
		return []axis.ID{axis.ALPHA1, axis.BETA1}, nil
	case SetALPHA2BETA1:
		return []axis.ID{axis.ALPHA2, axis.BETA1}, nil
	case SetALPHA1BETA1DH1:
		return []axis.ID{axis.ALPHA1, axis.BETA1, axis.DH1}, nil
	case SetALPHA1BETA1DH2:
		return []axis.ID{axis.ALPHA1, axis.BETA1, axis.DH2}, nil
	default:
		return nil, fmt.Errorf("axis-set %d: %w", int(id), ErrInvalidAxis)
	}
}

// Tensor is a dense N-dimensional array in column-major linear order, with
// stride P[i] = product of nPoints[j] for j < i. It carries the axis
// vectors it was built against by reference, never by copy.
type Tensor struct {
	NDimension int
	NPoints    []int
	Axes       []axis.Vector
	Data       []float64
}

// Stride returns the column-major stride for dimension i.
func (t *Tensor) Stride(i int) int {
	p := 1
	for j := 0; j < i; j++ {
		p *= t.NPoints[j]
	}
	return p
}

// LinIndex maps an index vector to the linear offset into Data.
func (t *Tensor) LinIndex(idx []int) int {
	lin := 0
	for i := range idx {
		lin += t.Stride(i) * idx[i]
	}
	return lin
}

func load(dataDir, file string, setID AxisSetID, reg *axis.Registry) (*Tensor, error) {
	axes, err := axesFor(setID)
	if err != nil {
		return nil, err
	}
	nPoints := make([]int, len(axes))
	axVecs := make([]axis.Vector, len(axes))
	size := 1
	for i, a := range axes {
		v := reg.Get(a)
		nPoints[i] = v.Len()
		axVecs[i] = v
		size *= v.Len()
	}
	path := filepath.Join(dataDir, file)
	data, err := ioutil.ParseDoubles(path, size)
	if err != nil {
		if errors.Is(err, ioutil.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", file, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", file, ErrMalformed)
	}
	return &Tensor{
		NDimension: len(axes),
		NPoints:    nPoints,
		Axes:       axVecs,
		Data:       data,
	}, nil
}
