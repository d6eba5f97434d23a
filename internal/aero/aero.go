// Package aero exposes the named aerodynamic coefficient queries as a
// single dispatch table rather than ~45 near-identical hand-written
// wrapper functions.
package aero

import (
	"github.com/camsima/f16model/internal/interp"
	"github.com/camsima/f16model/internal/telemetry"
	"github.com/camsima/f16model/internal/tensor"
)

// CoeffID names one coefficient query exposed by the façade.
type CoeffID int

const (
	Cx CoeffID = iota
	Cz
	Cm
	Cy
	Cn
	Cl
	CxLef
	CzLef
	CmLef
	CyLef
	CnLef
	ClLef
	CXq
	CZq
	CMq
	CYp
	CYr
	CNr
	CNp
	CLp
	CLr
	DeltaCXqLef
	DeltaCYrLef
	DeltaCYpLef
	DeltaCZqLef
	DeltaCLrLef
	DeltaCLpLef
	DeltaCMqLef
	DeltaCNrLef
	DeltaCNpLef
	CyR30
	CnR30
	ClR30
	CyA20
	CyA20Lef
	CnA20
	CnA20Lef
	ClA20
	ClA20Lef
	DeltaCNbeta
	DeltaCLbeta
	DeltaCm
	EtaEl
	numCoeffs
)

// Spec names the (table, arity) pair a coefficient query resolves against.
// Arity is the number of arguments expected by Lookup, which must equal the
// table's dimensionality.
type Spec struct {
	Name  string
	Table tensor.TableID
	Arity int
}

var specs = [numCoeffs]Spec{
	Cx:    {"Cx", tensor.CX0120, 3},
	Cz:    {"Cz", tensor.CZ0120, 3},
	Cm:    {"Cm", tensor.CM0120, 3},
	Cy:    {"Cy", tensor.CY0320, 2},
	Cn:    {"Cn", tensor.CN0120, 3},
	Cl:    {"Cl", tensor.CL0120, 3},
	CxLef: {"Cx_lef", tensor.CX0820, 2},
	CzLef: {"Cz_lef", tensor.CZ0820, 2},
	CmLef: {"Cm_lef", tensor.CM0820, 2},
	CyLef: {"Cy_lef", tensor.CY0820, 2},
	CnLef: {"Cn_lef", tensor.CN0820, 2},
	ClLef: {"Cl_lef", tensor.CL0820, 2},

	CXq: {"CXq", tensor.CX1120, 1},
	CZq: {"CZq", tensor.CZ1120, 1},
	CMq: {"CMq", tensor.CM1120, 1},
	CYp: {"CYp", tensor.CY1220, 1},
	CYr: {"CYr", tensor.CY1320, 1},
	CNr: {"CNr", tensor.CN1320, 1},
	CNp: {"CNp", tensor.CN1220, 1},
	CLp: {"CLp", tensor.CL1220, 1},
	CLr: {"CLr", tensor.CL1320, 1},

	DeltaCXqLef: {"delta_CXq_lef", tensor.CX1420, 1},
	DeltaCYrLef: {"delta_CYr_lef", tensor.CY1620, 1},
	DeltaCYpLef: {"delta_CYp_lef", tensor.CY1520, 1},
	DeltaCZqLef: {"delta_CZq_lef", tensor.CZ1420, 1},
	DeltaCLrLef: {"delta_CLr_lef", tensor.CL1620, 1},
	DeltaCLpLef: {"delta_CLp_lef", tensor.CL1520, 1},
	DeltaCMqLef: {"delta_CMq_lef", tensor.CM1420, 1},
	DeltaCNrLef: {"delta_CNr_lef", tensor.CN1620, 1},
	DeltaCNpLef: {"delta_CNp_lef", tensor.CN1520, 1},

	CyR30: {"Cy_r30", tensor.CY0720, 2},
	CnR30: {"Cn_r30", tensor.CN0720, 2},
	ClR30: {"Cl_r30", tensor.CL0720, 2},

	CyA20:    {"Cy_a20", tensor.CY0620, 2},
	CyA20Lef: {"Cy_a20_lef", tensor.CY0920, 2},
	CnA20:    {"Cn_a20", tensor.CN0620, 2},
	CnA20Lef: {"Cn_a20_lef", tensor.CN0920, 2},
	ClA20:    {"Cl_a20", tensor.CL0620, 2},
	ClA20Lef: {"Cl_a20_lef", tensor.CL0920, 2},

	DeltaCNbeta: {"delta_CNbeta", tensor.CN9999, 1},
	DeltaCLbeta: {"delta_CLbeta", tensor.CL9999, 1},
	DeltaCm:     {"delta_Cm", tensor.CM9999, 1},
	EtaEl:       {"eta_el", tensor.ETADH1brett, 1},
}

// Facade binds a catalog and a logging sink and dispatches every coefficient
// query through one generic lookup.
type Facade struct {
	catalog *tensor.Catalog
	sink    telemetry.Sink
}

// NewFacade builds a façade over an installed catalog.
func NewFacade(catalog *tensor.Catalog, sink telemetry.Sink) *Facade {
	return &Facade{catalog: catalog, sink: sink}
}

// Lookup resolves id against the catalog and evaluates the interpolator at
// args, which must be given in (alpha, beta, dele-or-dh) order matching the
// table's declared axis order.
func (f *Facade) Lookup(id CoeffID, args ...float64) float64 {
	spec := specs[id]
	t := f.catalog.Get(spec.Table)
	return interp.Query(t, args, f.sink)
}
