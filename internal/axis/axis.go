// Package axis owns the five one-dimensional grid vectors the coefficient
// tensors are indexed against. Axes are loaded once at install time and
// never mutated afterward; tensors borrow them by reference.
package axis

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/camsima/f16model/internal/ioutil"
)

// ErrNotFound is returned when an axis file is missing.
var ErrNotFound = errors.New("axis: file not found")

// ErrMalformed is returned when an axis file is short, non-numeric, or not
// strictly monotonically increasing.
var ErrMalformed = errors.New("axis: malformed data")

// ID names one of the five recognized axis vectors.
type ID int

const (
	ALPHA1 ID = iota
	ALPHA2
	BETA1
	DH1
	DH2
	numIDs
)

func (id ID) String() string {
	switch id {
	case ALPHA1:
		return "ALPHA1"
	case ALPHA2:
		return "ALPHA2"
	case BETA1:
		return "BETA1"
	case DH1:
		return "DH1"
	case DH2:
		return "DH2"
	default:
		return fmt.Sprintf("axis.ID(%d)", int(id))
	}
}

// fileName and length are fixed per the data file contract.
var fileName = map[ID]string{
	ALPHA1: "ALPHA1.dat",
	ALPHA2: "ALPHA2.dat",
	BETA1:  "BETA1.dat",
	DH1:    "DH1.dat",
	DH2:    "DH2.dat",
}

var length = map[ID]int{
	ALPHA1: 20,
	ALPHA2: 14,
	BETA1:  19,
	DH1:    5,
	DH2:    3,
}

// Vector is a named, immutable, strictly monotonically increasing grid.
type Vector struct {
	ID     ID
	Points []float64
}

// Len returns the number of grid points.
func (v Vector) Len() int { return len(v.Points) }

// Registry holds the fully loaded set of axis vectors for one installed
// catalog. It is immutable once Load returns successfully.
type Registry struct {
	vectors [numIDs]Vector
}

// Load reads the five fixed axis files from dataDir, in the fixed order
// ALPHA1, ALPHA2, BETA1, DH1, DH2, validating strict monotonicity. On any
// failure no partial registry is returned.
func Load(dataDir string) (*Registry, error) {
	var reg Registry
	for id := ID(0); id < numIDs; id++ {
		path := filepath.Join(dataDir, fileName[id])
		pts, err := ioutil.ParseDoubles(path, length[id])
		if err != nil {
			return nil, fmt.Errorf("axis %s: %w", id, translate(err))
		}
		if !strictlyIncreasing(pts) {
			return nil, fmt.Errorf("axis %s: %w: not strictly monotonically increasing", id, ErrMalformed)
		}
		reg.vectors[id] = Vector{ID: id, Points: pts}
	}
	return &reg, nil
}

// Get returns the vector for id. Panics if id is out of range, which can
// only happen for a value not produced by this package.
func (r *Registry) Get(id ID) Vector {
	return r.vectors[id]
}

func strictlyIncreasing(pts []float64) bool {
	for i := 1; i < len(pts); i++ {
		if pts[i] <= pts[i-1] {
			return false
		}
	}
	return true
}

func translate(err error) error {
	if errors.Is(err, ioutil.ErrNotFound) {
		return fmt.Errorf("%w", ErrNotFound)
	}
	return fmt.Errorf("%w", ErrMalformed)
}
