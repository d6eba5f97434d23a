package axis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camsima/f16model/internal/axis"
	"github.com/camsima/f16model/internal/testfixture"
)

func TestLoadMonotonicAndLengths(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, testfixture.Write(dir))

	reg, err := axis.Load(dir)
	require.NoError(t, err)

	cases := []struct {
		id  axis.ID
		len int
	}{
		{axis.ALPHA1, 20},
		{axis.ALPHA2, 14},
		{axis.BETA1, 19},
		{axis.DH1, 5},
		{axis.DH2, 3},
	}
	for _, c := range cases {
		v := reg.Get(c.id)
		assert.Equal(t, c.len, v.Len(), "%s length", c.id)
		for i := 1; i < len(v.Points); i++ {
			assert.Greater(t, v.Points[i], v.Points[i-1], "%s strictly increasing at %d", c.id, i)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := axis.Load(dir)
	require.Error(t, err)
}

func TestReloadYieldsIdenticalVectors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, testfixture.Write(dir))

	reg1, err := axis.Load(dir)
	require.NoError(t, err)
	reg2, err := axis.Load(dir)
	require.NoError(t, err)

	for id := axis.ALPHA1; id <= axis.DH2; id++ {
		assert.Equal(t, reg1.Get(id).Points, reg2.Get(id).Points)
	}
}
