package atmosphere_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/camsima/f16model/internal/atmosphere"
)

func TestAtmosZeroVelocity(t *testing.T) {
	mach, qbar, ps := atmosphere.Atmos(15000, 0)
	assert.Equal(t, 0.0, mach)
	assert.Equal(t, 0.0, qbar)
	assert.Greater(t, ps, 0.0)
}

func TestAtmosHighAltitudeTemperatureClamp(t *testing.T) {
	// T = 390 for alt >= 35000; verify via the Mach relation at a fixed vt.
	mach, _, _ := atmosphere.Atmos(50000, 1000)
	expectedMach := 1000.0 / math.Sqrt(1.4*1716.3*390.0)
	assert.InDelta(t, expectedMach, mach, 1e-9)
}

func TestAtmosThresholdIsInclusive(t *testing.T) {
	machAt, _, _ := atmosphere.Atmos(35000, 1000)
	machAbove, _, _ := atmosphere.Atmos(35000.0001, 1000)
	assert.InDelta(t, machAt, machAbove, 1e-6)
}

func TestAccelsLevelTrimIsNearGravityProjection(t *testing.T) {
	k := atmosphere.Kinematics{
		Vt: 500, Alpha: 0.079, Beta: 0,
		Theta: 0.079, Phi: 0,
		P: 0, Q: 0, R: 0,
		VtDot: 0, AlphaDot: 0, BetaDot: 0,
	}
	nx, ny, nz := atmosphere.Accels(k)
	assert.InDelta(t, math.Sin(k.Theta), nx, 1e-9)
	assert.InDelta(t, 0, ny, 1e-9)
	assert.InDelta(t, math.Cos(k.Theta), nz, 1e-9)
}
