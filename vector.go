package f16model

// ToVector12 packs State into the 12-slot xu layout: npos, epos, alt, phi,
// theta, psi, vt, alpha, beta, p, q, r.
func (s State) ToVector12() [12]float64 {
	return [12]float64{
		s.Npos, s.Epos, s.Alt,
		s.Phi, s.Theta, s.Psi,
		s.Vt, s.Alpha, s.Beta,
		s.P, s.Q, s.R,
	}
}

// StateFromVector12 unpacks the xu[0..11] layout into a State.
func StateFromVector12(v [12]float64) State {
	return State{
		Npos: v[0], Epos: v[1], Alt: v[2],
		Phi: v[3], Theta: v[4], Psi: v[5],
		Vt: v[6], Alpha: v[7], Beta: v[8],
		P: v[9], Q: v[10], R: v[11],
	}
}

// ToVector12 packs StateDot into the same twelve-slot layout as State.
func (d StateDot) ToVector12() [12]float64 {
	return [12]float64{
		d.Npos, d.Epos, d.Alt,
		d.Phi, d.Theta, d.Psi,
		d.Vt, d.Alpha, d.Beta,
		d.P, d.Q, d.R,
	}
}

// FromVector18 unpacks the consolidated 18-slot xu layout: indices 0..11
// are the state, and 12..17 carry
// (thrust, elevator, aileron, rudder, d_lef, fi_flag).
func FromVector18(xu [18]float64) (state State, control Control, dLef float64, fiFlag int) {
	state = StateFromVector12([12]float64{
		xu[0], xu[1], xu[2], xu[3], xu[4], xu[5],
		xu[6], xu[7], xu[8], xu[9], xu[10], xu[11],
	})
	control = Control{Thrust: xu[12], Elevator: xu[13], Aileron: xu[14], Rudder: xu[15]}
	dLef = xu[16]
	fiFlag = int(xu[17])
	return state, control, dLef, fiFlag
}

// ToVector18 packs a state derivative and its auxiliary outputs into the
// xdot[18] layout, with extras carried in slots 12..17 in declared order
// (Nx, Ny, Nz, Mach, Qbar, Ps).
func ToVector18(dot StateDot, extras Extras) [18]float64 {
	v := dot.ToVector12()
	return [18]float64{
		v[0], v[1], v[2], v[3], v[4], v[5],
		v[6], v[7], v[8], v[9], v[10], v[11],
		extras.Nx, extras.Ny, extras.Nz,
		extras.Mach, extras.Qbar, extras.Ps,
	}
}
