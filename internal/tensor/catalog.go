package tensor

import (
	"fmt"

	"github.com/camsima/f16model/internal/axis"
)

// TableID names one of the 43 coefficient tables loaded at install time.
type TableID int

const (
	CX0120 TableID = iota
	CZ0120
	CM0120
	CY0320
	CN0120
	CL0120
	CX0820
	CZ0820
	CM0820
	CY0820
	CN0820
	CL0820
	CX1120
	CZ1120
	CM1120
	CY1220
	CY1320
	CN1320
	CN1220
	CL1220
	CL1320
	CX1420
	CY1620
	CY1520
	CZ1420
	CL1620
	CL1520
	CM1420
	CN1620
	CN1520
	CY0720
	CN0720
	CL0720
	CY0620
	CY0920
	CN0620
	CN0920
	CL0620
	CL0920
	CN9999
	CL9999
	CM9999
	ETADH1brett
	numTables
)

type entry struct {
	file string
	set  AxisSetID
}

var catalogSpec = [numTables]entry{
	CX0120:      {"CX0120_ALPHA1_BETA1_DH1_201.dat", SetALPHA1BETA1DH1},
	CZ0120:      {"CZ0120_ALPHA1_BETA1_DH1_301.dat", SetALPHA1BETA1DH1},
	CM0120:      {"CM0120_ALPHA1_BETA1_DH1_101.dat", SetALPHA1BETA1DH1},
	CY0320:      {"CY0320_ALPHA1_BETA1_401.dat", SetALPHA1BETA1},
	CN0120:      {"CN0120_ALPHA1_BETA1_DH2_501.dat", SetALPHA1BETA1DH2},
	CL0120:      {"CL0120_ALPHA1_BETA1_DH2_601.dat", SetALPHA1BETA1DH2},
	CX0820:      {"CX0820_ALPHA2_BETA1_202.dat", SetALPHA2BETA1},
	CZ0820:      {"CZ0820_ALPHA2_BETA1_302.dat", SetALPHA2BETA1},
	CM0820:      {"CM0820_ALPHA2_BETA1_102.dat", SetALPHA2BETA1},
	CY0820:      {"CY0820_ALPHA2_BETA1_402.dat", SetALPHA2BETA1},
	CN0820:      {"CN0820_ALPHA2_BETA1_502.dat", SetALPHA2BETA1},
	CL0820:      {"CL0820_ALPHA2_BETA1_602.dat", SetALPHA2BETA1},
	CX1120:      {"CX1120_ALPHA1_204.dat", SetALPHA1},
	CZ1120:      {"CZ1120_ALPHA1_304.dat", SetALPHA1},
	CM1120:      {"CM1120_ALPHA1_104.dat", SetALPHA1},
	CY1220:      {"CY1220_ALPHA1_408.dat", SetALPHA1},
	CY1320:      {"CY1320_ALPHA1_406.dat", SetALPHA1},
	CN1320:      {"CN1320_ALPHA1_506.dat", SetALPHA1},
	CN1220:      {"CN1220_ALPHA1_508.dat", SetALPHA1},
	CL1220:      {"CL1220_ALPHA1_608.dat", SetALPHA1},
	CL1320:      {"CL1320_ALPHA1_606.dat", SetALPHA1},
	CX1420:      {"CX1420_ALPHA2_205.dat", SetALPHA2},
	CY1620:      {"CY1620_ALPHA2_407.dat", SetALPHA2},
	CY1520:      {"CY1520_ALPHA2_409.dat", SetALPHA2},
	CZ1420:      {"CZ1420_ALPHA2_305.dat", SetALPHA2},
	CL1620:      {"CL1620_ALPHA2_607.dat", SetALPHA2},
	CL1520:      {"CL1520_ALPHA2_609.dat", SetALPHA2},
	CM1420:      {"CM1420_ALPHA2_105.dat", SetALPHA2},
	CN1620:      {"CN1620_ALPHA2_507.dat", SetALPHA2},
	CN1520:      {"CN1520_ALPHA2_509.dat", SetALPHA2},
	CY0720:      {"CY0720_ALPHA1_BETA1_405.dat", SetALPHA1BETA1},
	CN0720:      {"CN0720_ALPHA1_BETA1_503.dat", SetALPHA1BETA1},
	CL0720:      {"CL0720_ALPHA1_BETA1_603.dat", SetALPHA1BETA1},
	CY0620:      {"CY0620_ALPHA1_BETA1_403.dat", SetALPHA1BETA1},
	CY0920:      {"CY0920_ALPHA2_BETA1_404.dat", SetALPHA2BETA1},
	CN0620:      {"CN0620_ALPHA1_BETA1_504.dat", SetALPHA1BETA1},
	CN0920:      {"CN0920_ALPHA2_BETA1_505.dat", SetALPHA2BETA1},
	CL0620:      {"CL0620_ALPHA1_BETA1_604.dat", SetALPHA1BETA1},
	CL0920:      {"CL0920_ALPHA2_BETA1_605.dat", SetALPHA2BETA1},
	CN9999:      {"CN9999_ALPHA1_brett.dat", SetALPHA1},
	CL9999:      {"CL9999_ALPHA1_brett.dat", SetALPHA1},
	CM9999:      {"CM9999_ALPHA1_brett.dat", SetALPHA1},
	ETADH1brett: {"ETA_DH1_brett.dat", SetDH1},
}

// Catalog is the immutable, indexed collection of all 43 loaded coefficient
// tables for one installed model.
type Catalog struct {
	tables [numTables]*Tensor
}

// LoadCatalog loads every table in catalogSpec from dataDir against the
// given axis registry. On any failure, nothing is retained.
func LoadCatalog(dataDir string, reg *axis.Registry) (*Catalog, error) {
	var cat Catalog
	for id := TableID(0); id < numTables; id++ {
		spec := catalogSpec[id]
		t, err := load(dataDir, spec.file, spec.set, reg)
		if err != nil {
			return nil, fmt.Errorf("table %d (%s): %w", int(id), spec.file, err)
		}
		cat.tables[id] = t
	}
	return &cat, nil
}

// Get returns the tensor for id.
func (c *Catalog) Get(id TableID) *Tensor {
	return c.tables[id]
}
