// Package f16model composes the aerodynamic coefficient façade, the
// atmosphere model, and the rigid-body equations of motion into a
// deterministic, step-wise F-16 flight-dynamics evaluator.
package f16model

// State is the instantaneous aircraft state: 12 scalars, angles in radians.
type State struct {
	Npos, Epos, Alt float64
	Phi, Theta, Psi float64
	Vt              float64
	Alpha, Beta     float64
	P, Q, R         float64
}

// Control is the four-channel control input. Elevator, aileron, and rudder
// are in degrees.
type Control struct {
	Thrust   float64
	Elevator float64
	Aileron  float64
	Rudder   float64
}

// StateDot is the time derivative of State, in the same field order.
type StateDot struct {
	Npos, Epos, Alt float64
	Phi, Theta, Psi float64
	Vt              float64
	Alpha, Beta     float64
	P, Q, R         float64
}

// Extras carries the auxiliary outputs produced alongside StateDot.
type Extras struct {
	Nx, Ny, Nz     float64
	Mach, Qbar, Ps float64
}

// PlantConstants is the fixed aircraft geometry and inertia used by the
// dynamics assembly. Units are slug/ft.
type PlantConstants struct {
	Mass    float64 // m
	Span    float64 // B
	Area    float64 // S
	Chord   float64 // c-bar
	XcgR    float64 // reference CG fraction
	Xcg     float64 // actual CG fraction
	HEng    float64 // engine angular momentum
	Jy, Jxz float64
	Jz, Jx  float64
}

// LoadPlantConstants returns the fixed geometry/inertia constants. These
// are compile-time constants, not loaded from the data directory.
func LoadPlantConstants() PlantConstants {
	return PlantConstants{
		Mass:  636.94,
		Span:  30.0,
		Area:  300.0,
		Chord: 11.32,
		XcgR:  0.35,
		Xcg:   0.30,
		HEng:  0.0,
		Jy:    55814,
		Jxz:   982,
		Jz:    63100,
		Jx:    9496,
	}
}

// ControlLimit describes the admissible range of each control channel.
// See DESIGN.md for how these values were resolved.
type ControlLimit struct {
	ThrustMin, ThrustMax     float64
	ElevatorMin, ElevatorMax float64
	AileronMin, AileronMax   float64
	RudderMin, RudderMax     float64
	DLefMin, DLefMax         float64
}

// LoadControlLimits returns the compile-time control envelope.
func LoadControlLimits() ControlLimit {
	return ControlLimit{
		ThrustMin: 1000, ThrustMax: 19000,
		ElevatorMin: -25, ElevatorMax: 25,
		AileronMin: -21.5, AileronMax: 21.5,
		RudderMin: -30, RudderMax: 30,
		DLefMin: 0, DLefMax: 25,
	}
}
