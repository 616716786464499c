package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDirect(t *testing.T) {
	r := NewResolver(nil)

	p, err := r.Resolve(12)
	require.NoError(t, err)
	assert.True(t, p.Softwood)
	assert.Equal(t, "balsam fir", p.CommonName)
	assert.Equal(t, 0, p.Index)
	assert.Equal(t, defaultDDBH()[12], p.DDBH)
	assert.Equal(t, defaultMort()[12], p.Mort)
	assert.InDelta(t, 0.33, p.Attrib.SG, 1e-9)
}

func TestResolveSentinelIndex(t *testing.T) {
	r := NewResolver(nil)

	// gray birch keeps its own identity but borrows the paper birch row
	p, err := r.Resolve(379)
	require.NoError(t, err)
	assert.Equal(t, "gray birch", p.CommonName)
	assert.False(t, p.Softwood)

	pb, err := r.Resolve(375)
	require.NoError(t, err)
	assert.Equal(t, pb.Index, p.Index)
	assert.Equal(t, pb.MCW, p.MCW)
	assert.Equal(t, pb.Attrib, p.Attrib)

	// the donor's fitted equations resolve, not the hardwood generic
	assert.Equal(t, pb.DDBH, p.DDBH)
	assert.Equal(t, pb.DHT, p.DHT)
	assert.Equal(t, pb.Mort, p.Mort)
	assert.NotEqual(t, defaultDDBH()[OtherHardwood], p.DDBH)
}

func TestResolveThroughCrosswalk(t *testing.T) {
	r := NewResolver(nil)

	// larch spp. is absent from the species table; it resolves entirely
	// to tamarack
	p, err := r.Resolve(70)
	require.NoError(t, err)
	assert.Equal(t, "tamarack", p.CommonName)
	assert.True(t, p.Softwood)
	assert.Equal(t, defaultDDBH()[71], p.DDBH)
	assert.Equal(t, defaultDHT()[71], p.DHT)
	assert.Equal(t, defaultMort()[71], p.Mort)
	assert.NotEqual(t, defaultDDBH()[OtherSoftwood], p.DDBH)
}

func TestResolveUnknown(t *testing.T) {
	r := NewResolver(nil)

	_, err := r.Resolve(9999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestEquationFallback(t *testing.T) {
	r := NewResolver(nil)

	t.Run("hardwood without a fitted increment model", func(t *testing.T) {
		p, err := r.Resolve(531) // American beech
		require.NoError(t, err)
		assert.Equal(t, defaultDDBH()[OtherHardwood], p.DDBH)
		assert.Equal(t, defaultMort()[OtherHardwood], p.Mort)
	})

	t.Run("zeroed crown row", func(t *testing.T) {
		p, err := r.Resolve(541) // white ash
		require.NoError(t, err)
		oh := defaultMCW()[17]
		assert.Equal(t, oh, p.MCW)
		assert.NotZero(t, p.HCB)
	})

	t.Run("softwoods fall back to the softwood generic", func(t *testing.T) {
		p, err := r.Resolve(261) // eastern hemlock has its own fits
		require.NoError(t, err)
		assert.Equal(t, defaultDDBH()[261], p.DDBH)
	})
}
