package telemetry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/camsima/f16model/internal/telemetry"
)

func TestSnapshotSetGetAll(t *testing.T) {
	s := telemetry.NewSnapshot()

	_, ok := s.Get("mach")
	assert.False(t, ok)

	s.Set("mach", 0.75)
	s.Set("qbar", 221.4)

	v, ok := s.Get("mach")
	assert.True(t, ok)
	assert.Equal(t, 0.75, v)

	all := s.All()
	assert.Equal(t, map[string]float64{"mach": 0.75, "qbar": 221.4}, all)

	s.Set("mach", 0.8)
	assert.NotEqual(t, s.All()["mach"], all["mach"], "All must return a copy, not a live view")
}
