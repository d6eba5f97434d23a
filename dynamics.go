package f16model

import (
	"fmt"
	"math"

	"github.com/camsima/f16model/internal/aero"
	"github.com/camsima/f16model/internal/atmosphere"
)

const radToDeg = 180.0 / math.Pi

// Step evaluates one frame: given state, control, a leading-edge-flap
// deflection, and a fidelity selector, it returns the state derivative and
// the auxiliary accel/atmosphere outputs. fiFlag must be 1, selecting the
// high-fidelity table path this repository implements; 0 selects a
// low-fidelity path this repository has no source for and returns
// ErrLowFidelityUnsupported.
func (m *Model) Step(state State, control Control, dLef float64, fiFlag int) (StateDot, Extras, error) {
	if !m.installed() {
		return StateDot{}, Extras{}, ErrNotInitialized
	}
	if fiFlag != 1 {
		return StateDot{}, Extras{}, fmt.Errorf("%w: damping, dmomdcon, clcn, cxcm, cz", ErrLowFidelityUnsupported)
	}

	c := m.consts
	const g = atmosphere.GravityEOMFtS2

	vt := math.Max(state.Vt, 0.01)
	alphaDeg := state.Alpha * radToDeg
	betaDeg := state.Beta * radToDeg

	dail := control.Aileron / 21.5
	drud := control.Rudder / 30.0
	dlef := 1 - dLef/25.0

	sa, ca := math.Sin(state.Alpha), math.Cos(state.Alpha)
	sb, cb := math.Sin(state.Beta), math.Cos(state.Beta)
	sphi, cphi := math.Sin(state.Phi), math.Cos(state.Phi)
	st, ct, tt := math.Sin(state.Theta), math.Cos(state.Theta), math.Tan(state.Theta)
	spsi, cpsi := math.Sin(state.Psi), math.Cos(state.Psi)

	mach, qbar, ps := atmosphere.Atmos(state.Alt, vt)

	// Navigation derivatives.
	U := vt * ca * cb
	V := vt * sb
	W := vt * sa * cb

	var dot StateDot
	dot.Npos = U*(ct*cpsi) + V*(sphi*cpsi*st-cphi*spsi) + W*(cphi*st*cpsi+sphi*spsi)
	dot.Epos = U*(ct*spsi) + V*(sphi*spsi*st+cphi*cpsi) + W*(cphi*st*spsi-sphi*cpsi)
	dot.Alt = U*st - V*(sphi*ct) - W*(cphi*ct)

	// Euler-rate kinematics.
	dot.Phi = state.P + tt*(state.Q*sphi+state.R*cphi)
	dot.Theta = state.Q*cphi - state.R*sphi
	dot.Psi = (state.Q*sphi + state.R*cphi) / ct

	coef := m.lookupCoefficients(alphaDeg, betaDeg, control.Elevator)

	dXdQ := (c.Chord / (2 * vt)) * (coef.cxq + coef.deltaCxqLef*dlef)
	cxTot := coef.cx + coef.deltaCxLef*dlef + dXdQ*state.Q

	dZdQ := (c.Chord / (2 * vt)) * (coef.czq + coef.deltaCzLef*dlef)
	czTot := coef.cz + coef.deltaCzLef*dlef + dZdQ*state.Q

	dMdQ := (c.Chord / (2 * vt)) * (coef.cmq + coef.deltaCmqLef*dlef)
	deltaCmDs := 0.0
	cmTot := coef.cm*coef.etaEl + czTot*(c.XcgR-c.Xcg) + coef.deltaCmLef*dlef + dMdQ*state.Q + coef.deltaCm + deltaCmDs

	dYdail := coef.deltaCyA20 + coef.deltaCyA20Lef*dlef
	dYdR := (c.Span / (2 * vt)) * (coef.cyr + coef.deltaCyrLef*dlef)
	dYdP := (c.Span / (2 * vt)) * (coef.cyp + coef.deltaCypLef*dlef)
	cyTot := coef.cy + coef.deltaCyLef*dlef + dYdail*dail + coef.deltaCyR30*drud + dYdR*state.R + dYdP*state.P

	dNdail := coef.deltaCnA20 + coef.deltaCnA20Lef*dlef
	dNdR := (c.Span / (2 * vt)) * (coef.cnr + coef.deltaCnrLef*dlef)
	dNdP := (c.Span / (2 * vt)) * (coef.cnp + coef.deltaCnpLef*dlef)
	cnTot := coef.cn + coef.deltaCnLef*dlef - cyTot*(c.XcgR-c.Xcg)*(c.Chord/c.Span) + dNdail*dail + coef.deltaCnR30*drud + dNdR*state.R + dNdP*state.P + coef.deltaCNbeta*betaDeg

	dLdail := coef.deltaClA20 + coef.deltaClA20Lef*dlef
	dLdR := (c.Span / (2 * vt)) * (coef.clr + coef.deltaClrLef*dlef)
	dLdP := (c.Span / (2 * vt)) * (coef.clp + coef.deltaClpLef*dlef)
	clTot := coef.cl + coef.deltaClLef*dlef + dLdail*dail + coef.deltaClR30*drud + dLdR*state.R + dLdP*state.P + coef.deltaCLbeta*betaDeg

	// Translational dynamics.
	uDot := state.R*V - state.Q*W - g*st + qbar*c.Area*cxTot/c.Mass + control.Thrust/c.Mass
	vDot := state.P*W - state.R*U + g*ct*sphi + qbar*c.Area*cyTot/c.Mass
	wDot := state.Q*U - state.P*V + g*ct*cphi + qbar*c.Area*czTot/c.Mass

	dot.Vt = (U*uDot + V*vDot + W*wDot) / vt
	dot.Alpha = (U*wDot - W*uDot) / (U*U + W*W)
	dot.Beta = (vDot*vt - V*dot.Vt) / (vt * vt * cb)

	// Rotational dynamics.
	lTot := clTot * qbar * c.Area * c.Span
	mTot := cmTot * qbar * c.Area * c.Chord
	nTot := cnTot * qbar * c.Area * c.Span
	den := c.Jx*c.Jz - c.Jxz*c.Jxz

	dot.P = (c.Jz*lTot + c.Jxz*nTot - (c.Jz*(c.Jz-c.Jy)+c.Jxz*c.Jxz)*state.Q*state.R + c.Jxz*(c.Jx-c.Jy+c.Jz)*state.P*state.Q + c.Jxz*state.Q*c.HEng) / den
	dot.Q = (mTot + (c.Jz-c.Jx)*state.P*state.R - c.Jxz*(state.P*state.P-state.R*state.R) - state.R*c.HEng) / c.Jy
	dot.R = (c.Jx*nTot + c.Jxz*lTot + (c.Jx*(c.Jx-c.Jy)+c.Jxz*c.Jxz)*state.P*state.Q - c.Jxz*(c.Jx-c.Jy+c.Jz)*state.Q*state.R + c.Jx*state.Q*c.HEng) / den

	nx, ny, nz := atmosphere.Accels(atmosphere.Kinematics{
		Vt: state.Vt, Alpha: state.Alpha, Beta: state.Beta,
		Theta: state.Theta, Phi: state.Phi,
		P: state.P, Q: state.Q, R: state.R,
		VtDot: dot.Vt, AlphaDot: dot.Alpha, BetaDot: dot.Beta,
	})

	extras := Extras{Nx: nx, Ny: ny, Nz: nz, Mach: mach, Qbar: qbar, Ps: ps}

	if m.snapshot != nil {
		m.snapshot.Set("alphaDeg", alphaDeg)
		m.snapshot.Set("betaDeg", betaDeg)
		m.snapshot.Set("mach", mach)
		m.snapshot.Set("qbar", qbar)
		m.snapshot.Set("ps", ps)
		m.snapshot.Set("cxTot", cxTot)
		m.snapshot.Set("cyTot", cyTot)
		m.snapshot.Set("czTot", czTot)
		m.snapshot.Set("clTot", clTot)
		m.snapshot.Set("cmTot", cmTot)
		m.snapshot.Set("cnTot", cnTot)
	}

	return dot, extras, nil
}

// coefficients collects every named lookup the synthesis formulas combine,
// grouped the way hifi_C/hifi_damping/hifi_C_lef/... group them.
type coefficients struct {
	cx, cz, cm, cy, cn, cl                                                float64
	cxq, cyr, cyp, czq, clr, clp, cmq, cnr, cnp                           float64
	deltaCxLef, deltaCzLef, deltaCmLef, deltaCyLef, deltaCnLef, deltaClLef float64

	deltaCxqLef, deltaCyrLef, deltaCypLef, deltaCzqLef, deltaClrLef,
	deltaClpLef, deltaCmqLef, deltaCnrLef, deltaCnpLef float64

	deltaCyR30, deltaCnR30, deltaClR30 float64

	deltaCyA20, deltaCyA20Lef, deltaCnA20, deltaCnA20Lef,
	deltaClA20, deltaClA20Lef float64

	deltaCNbeta, deltaCLbeta, deltaCm, etaEl float64
}

func (m *Model) lookupCoefficients(alphaDeg, betaDeg, elevator float64) coefficients {
	f := m.facade
	var c coefficients

	c.cx = f.Lookup(aero.Cx, alphaDeg, betaDeg, elevator)
	c.cz = f.Lookup(aero.Cz, alphaDeg, betaDeg, elevator)
	c.cm = f.Lookup(aero.Cm, alphaDeg, betaDeg, elevator)
	c.cy = f.Lookup(aero.Cy, alphaDeg, betaDeg)
	c.cn = f.Lookup(aero.Cn, alphaDeg, betaDeg, elevator)
	c.cl = f.Lookup(aero.Cl, alphaDeg, betaDeg, elevator)

	c.cxq = f.Lookup(aero.CXq, alphaDeg)
	c.cyr = f.Lookup(aero.CYr, alphaDeg)
	c.cyp = f.Lookup(aero.CYp, alphaDeg)
	c.czq = f.Lookup(aero.CZq, alphaDeg)
	c.clr = f.Lookup(aero.CLr, alphaDeg)
	c.clp = f.Lookup(aero.CLp, alphaDeg)
	c.cmq = f.Lookup(aero.CMq, alphaDeg)
	c.cnr = f.Lookup(aero.CNr, alphaDeg)
	c.cnp = f.Lookup(aero.CNp, alphaDeg)

	// LEF/rudder/aileron groups are baseline-subtracted (lef or deflected
	// lookup minus the el=0 or undeflected lookup), matching
	// hifi_C_lef/hifi_rudder/hifi_ailerons (see DESIGN.md).
	cxBase0 := f.Lookup(aero.Cx, alphaDeg, betaDeg, 0)
	czBase0 := f.Lookup(aero.Cz, alphaDeg, betaDeg, 0)
	cmBase0 := f.Lookup(aero.Cm, alphaDeg, betaDeg, 0)
	cnBase0 := f.Lookup(aero.Cn, alphaDeg, betaDeg, 0)
	clBase0 := f.Lookup(aero.Cl, alphaDeg, betaDeg, 0)

	c.deltaCxLef = f.Lookup(aero.CxLef, alphaDeg, betaDeg) - cxBase0
	c.deltaCzLef = f.Lookup(aero.CzLef, alphaDeg, betaDeg) - czBase0
	c.deltaCmLef = f.Lookup(aero.CmLef, alphaDeg, betaDeg) - cmBase0
	cyLef := f.Lookup(aero.CyLef, alphaDeg, betaDeg)
	c.deltaCyLef = cyLef - c.cy
	c.deltaCnLef = f.Lookup(aero.CnLef, alphaDeg, betaDeg) - cnBase0
	c.deltaClLef = f.Lookup(aero.ClLef, alphaDeg, betaDeg) - clBase0

	c.deltaCxqLef = f.Lookup(aero.DeltaCXqLef, alphaDeg)
	c.deltaCyrLef = f.Lookup(aero.DeltaCYrLef, alphaDeg)
	c.deltaCypLef = f.Lookup(aero.DeltaCYpLef, alphaDeg)
	c.deltaCzqLef = f.Lookup(aero.DeltaCZqLef, alphaDeg)
	c.deltaClrLef = f.Lookup(aero.DeltaCLrLef, alphaDeg)
	c.deltaClpLef = f.Lookup(aero.DeltaCLpLef, alphaDeg)
	c.deltaCmqLef = f.Lookup(aero.DeltaCMqLef, alphaDeg)
	c.deltaCnrLef = f.Lookup(aero.DeltaCNrLef, alphaDeg)
	c.deltaCnpLef = f.Lookup(aero.DeltaCNpLef, alphaDeg)

	c.deltaCyR30 = f.Lookup(aero.CyR30, alphaDeg, betaDeg) - c.cy
	c.deltaCnR30 = f.Lookup(aero.CnR30, alphaDeg, betaDeg) - cnBase0
	c.deltaClR30 = f.Lookup(aero.ClR30, alphaDeg, betaDeg) - clBase0

	cyA20 := f.Lookup(aero.CyA20, alphaDeg, betaDeg) - c.cy
	c.deltaCyA20 = cyA20
	c.deltaCyA20Lef = f.Lookup(aero.CyA20Lef, alphaDeg, betaDeg) - cyLef - cyA20

	cnA20 := f.Lookup(aero.CnA20, alphaDeg, betaDeg) - cnBase0
	c.deltaCnA20 = cnA20
	c.deltaCnA20Lef = f.Lookup(aero.CnA20Lef, alphaDeg, betaDeg) - f.Lookup(aero.CnLef, alphaDeg, betaDeg) - cnA20

	clA20 := f.Lookup(aero.ClA20, alphaDeg, betaDeg) - clBase0
	c.deltaClA20 = clA20
	c.deltaClA20Lef = f.Lookup(aero.ClA20Lef, alphaDeg, betaDeg) - f.Lookup(aero.ClLef, alphaDeg, betaDeg) - clA20

	c.deltaCNbeta = f.Lookup(aero.DeltaCNbeta, alphaDeg)
	c.deltaCLbeta = f.Lookup(aero.DeltaCLbeta, alphaDeg)
	c.deltaCm = f.Lookup(aero.DeltaCm, alphaDeg)
	c.etaEl = f.Lookup(aero.EtaEl, elevator)

	return c
}
