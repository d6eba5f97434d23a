// Package atmosphere implements the closed-form ISA-like atmosphere model
// and the body-axis load factor accelerations derived from a state and its
// derivative.
package atmosphere

import "math"

// GravityEOMFtS2 is the gravity constant used throughout the rigid-body
// equations of motion.
const GravityEOMFtS2 = 32.17

// GravityAccelsFtS2 is a distinct, more precise gravity rounding used only
// by Accels; kept separate from GravityEOMFtS2 so neither drifts.
const GravityAccelsFtS2 = 32.174

// Atmos maps altitude (ft) and true airspeed (ft/s) to Mach number, dynamic
// pressure (psf), and static pressure (psf). The 35000 ft threshold is
// inclusive.
func Atmos(alt, vt float64) (mach, qbar, ps float64) {
	const rho0 = 2.377e-3
	tfac := 1 - 0.703e-5*alt
	temp := 519.0 * tfac
	if alt >= 35000.0 {
		temp = 390
	}
	rho := rho0 * math.Pow(tfac, 4.14)
	mach = vt / math.Sqrt(1.4*1716.3*temp)
	qbar = 0.5 * rho * vt * vt
	ps = 1715.0 * rho * temp
	if ps == 0 {
		ps = 1715
	}
	return mach, qbar, ps
}

// Kinematics is the subset of state/state-derivative Accels needs, named
// rather than passed as an 18-slot compatibility vector.
type Kinematics struct {
	Vt, Alpha, Beta          float64
	Theta, Phi               float64
	P, Q, R                  float64
	VtDot, AlphaDot, BetaDot float64
}

// Accels computes body-axis load factors (g) from a kinematics snapshot.
func Accels(k Kinematics) (nx, ny, nz float64) {
	sa, ca := math.Sin(k.Alpha), math.Cos(k.Alpha)
	sb, cb := math.Sin(k.Beta), math.Cos(k.Beta)

	u := k.Vt * cb * ca
	v := k.Vt * sb
	w := k.Vt * cb * sa

	uDot := cb*ca*k.VtDot - k.Vt*sb*ca*k.BetaDot - k.Vt*cb*sa*k.AlphaDot
	vDot := sb*k.VtDot + k.Vt*cb*k.BetaDot
	wDot := cb*sa*k.VtDot - k.Vt*sb*sa*k.BetaDot + k.Vt*cb*ca*k.AlphaDot

	nx = (uDot+k.Q*w-k.R*v)/GravityAccelsFtS2 + math.Sin(k.Theta)
	ny = (vDot+k.R*u-k.P*w)/GravityAccelsFtS2 - math.Cos(k.Theta)*math.Sin(k.Phi)
	nz = -(wDot+k.P*v-k.Q*u)/GravityAccelsFtS2 + math.Cos(k.Theta)*math.Cos(k.Phi)
	return nx, ny, nz
}
