package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camsima/f16model/internal/axis"
	"github.com/camsima/f16model/internal/tensor"
	"github.com/camsima/f16model/internal/testfixture"
)

func TestLoadCatalogLengthsMatchDimensions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, testfixture.Write(dir))

	reg, err := axis.Load(dir)
	require.NoError(t, err)

	cat, err := tensor.LoadCatalog(dir, reg)
	require.NoError(t, err)

	cases := []struct {
		id   tensor.TableID
		dims []int
	}{
		{tensor.CX0120, []int{20, 19, 5}},
		{tensor.CN0120, []int{20, 19, 3}},
		{tensor.CY0320, []int{20, 19}},
		{tensor.CX1120, []int{20}},
		{tensor.ETADH1brett, []int{5}},
	}
	for _, c := range cases {
		ten := cat.Get(c.id)
		assert.Equal(t, len(c.dims), ten.NDimension)
		assert.Equal(t, c.dims, ten.NPoints)
		want := 1
		for _, d := range c.dims {
			want *= d
		}
		assert.Equal(t, want, len(ten.Data))
	}
}

func TestLinIndexColumnMajor(t *testing.T) {
	ten := &tensor.Tensor{NDimension: 2, NPoints: []int{3, 2}}
	assert.Equal(t, 0, ten.LinIndex([]int{0, 0}))
	assert.Equal(t, 1, ten.LinIndex([]int{1, 0}))
	assert.Equal(t, 2, ten.LinIndex([]int{2, 0}))
	assert.Equal(t, 3, ten.LinIndex([]int{0, 1}))
	assert.Equal(t, 5, ten.LinIndex([]int{2, 1}))
}

func TestLoadCatalogMissingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, testfixture.Write(dir))
	reg, err := axis.Load(dir)
	require.NoError(t, err)

	_, err = tensor.LoadCatalog(t.TempDir(), reg)
	require.Error(t, err)
}
