package f16model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/camsima/f16model"
)

func TestVector18RoundTrip(t *testing.T) {
	xu := [18]float64{
		1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12,
		2109.4, -2.24, -0.09, 0.094, 6.28, 1,
	}
	state, control, dLef, fiFlag := f16model.FromVector18(xu)
	assert.Equal(t, xu[6], state.Vt)
	assert.Equal(t, xu[13], control.Elevator)
	assert.Equal(t, xu[16], dLef)
	assert.Equal(t, 1, fiFlag)

	dot := f16model.StateDot{Npos: 1, Epos: 2, Alt: 3, Phi: 4, Theta: 5, Psi: 6, Vt: 7, Alpha: 8, Beta: 9, P: 10, Q: 11, R: 12}
	extras := f16model.Extras{Nx: 0.1, Ny: 0.2, Nz: 0.3, Mach: 0.5, Qbar: 200, Ps: 1000}
	xdot := f16model.ToVector18(dot, extras)
	assert.Equal(t, dot.ToVector12(), [12]float64{xdot[0], xdot[1], xdot[2], xdot[3], xdot[4], xdot[5], xdot[6], xdot[7], xdot[8], xdot[9], xdot[10], xdot[11]})
	assert.Equal(t, extras.Ps, xdot[17])
}
