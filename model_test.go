package f16model_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camsima/f16model"
	"github.com/camsima/f16model/internal/telemetry"
	"github.com/camsima/f16model/internal/testfixture"
)

func installFixture(t *testing.T) *f16model.Model {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, testfixture.Write(dir))
	m, err := f16model.Install(dir, telemetry.NullSink{})
	require.NoError(t, err)
	t.Cleanup(func() { m.Uninstall() })
	return m
}

func TestStepBeforeInstallFails(t *testing.T) {
	var m *f16model.Model
	_, _, err := m.Step(f16model.State{}, f16model.Control{}, 0, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, f16model.ErrNotInitialized))
}

func TestUninstallIsIdempotent(t *testing.T) {
	m := installFixture(t)
	require.NoError(t, m.Uninstall())
	require.NoError(t, m.Uninstall())
}

func TestLowFidelityPathUnsupported(t *testing.T) {
	m := installFixture(t)
	_, _, err := m.Step(endToEndState(), endToEndControl(), endToEndDLef(), 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, f16model.ErrLowFidelityUnsupported))
}

func endToEndState() f16model.State {
	return f16model.State{
		Npos: 0, Epos: 0, Alt: 15000,
		Phi: 0, Theta: 0.0790758040827099, Psi: 0,
		Vt: 500, Alpha: 0.0790758040827099, Beta: 0,
		P: 0, Q: 0, R: 0,
	}
}

func endToEndControl() f16model.Control {
	return f16model.Control{
		Thrust: 2109.41286903712, Elevator: -2.24414978017729,
		Aileron: -0.0935778861396136, Rudder: 0.0944687551889544,
	}
}

func endToEndDLef() float64 { return 6.28161378774449 }

func TestEndToEndScenario(t *testing.T) {
	m := installFixture(t)

	state := endToEndState()
	dot, extras, err := m.Step(state, endToEndControl(), endToEndDLef(), 1)
	require.NoError(t, err)

	// With beta, phi and psi zero the north rate is U*cos(theta) + W*sin(theta).
	wantNdot := state.Vt * (math.Cos(state.Alpha)*math.Cos(state.Theta) + math.Sin(state.Alpha)*math.Sin(state.Theta))
	assert.InDelta(t, wantNdot, dot.Npos, 1e-6)
	assert.InDelta(t, 0, dot.Epos, 1e-6)

	assert.InDelta(t, 0, dot.Phi, 1e-6)
	assert.InDelta(t, 0, dot.Theta, 1e-6)
	assert.InDelta(t, 0, dot.Psi, 1e-6)

	for _, v := range []float64{dot.Vt, dot.Alpha, dot.Beta, dot.P, dot.Q, dot.R} {
		assert.False(t, math.IsNaN(v))
		assert.False(t, math.IsInf(v, 0))
	}

	wantMach, wantQbar, wantPs := atmosRef(state.Alt, state.Vt)
	assert.InDelta(t, wantMach, extras.Mach, 1e-9)
	assert.InDelta(t, wantQbar, extras.Qbar, 1e-9)
	assert.InDelta(t, wantPs, extras.Ps, 1e-9)
}

func TestEndToEndScenarioReproducible(t *testing.T) {
	m := installFixture(t)
	state := endToEndState()
	dot1, _, err := m.Step(state, endToEndControl(), endToEndDLef(), 1)
	require.NoError(t, err)
	dot2, _, err := m.Step(state, endToEndControl(), endToEndDLef(), 1)
	require.NoError(t, err)
	assert.Equal(t, dot1, dot2)
}

func TestOutOfGridQueryLogsErrorWithoutReturningOne(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, testfixture.Write(dir))
	logged := false
	sink := &recordingSink{onError: func() { logged = true }}
	m, err := f16model.Install(dir, sink)
	require.NoError(t, err)
	defer m.Uninstall()

	state := endToEndState()
	state.Alpha = -30 * math.Pi / 180 // far outside the ALPHA1 grid
	_, _, err = m.Step(state, endToEndControl(), endToEndDLef(), 1)
	require.NoError(t, err) // out-of-grid yields NaN, not a returned error
	assert.True(t, logged)
}

func TestStepPopulatesSnapshot(t *testing.T) {
	m := installFixture(t)
	_, _, err := m.Step(endToEndState(), endToEndControl(), endToEndDLef(), 1)
	require.NoError(t, err)

	snap := m.Snapshot()
	for _, key := range []string{"alphaDeg", "betaDeg", "mach", "qbar", "ps", "cxTot", "cyTot", "czTot", "clTot", "cmTot", "cnTot"} {
		_, ok := snap[key]
		assert.True(t, ok, "snapshot missing %q", key)
	}
}

func TestTwoIndependentCatalogsAgree(t *testing.T) {
	m1 := installFixture(t)
	m2 := installFixture(t)

	state := endToEndState()
	dot1, extras1, err := m1.Step(state, endToEndControl(), endToEndDLef(), 1)
	require.NoError(t, err)
	dot2, extras2, err := m2.Step(state, endToEndControl(), endToEndDLef(), 1)
	require.NoError(t, err)

	assert.Equal(t, dot1, dot2)
	assert.Equal(t, extras1, extras2)
}

func atmosRef(alt, vt float64) (mach, qbar, ps float64) {
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
	return mach, qbar, ps
}

type recordingSink struct {
	onError func()
}

func (r *recordingSink) Error(string, ...interface{}) {
	if r.onError != nil {
		r.onError()
	}
}
func (r *recordingSink) Info(string, ...interface{}) {}

var _ telemetry.Sink = (*recordingSink)(nil)
