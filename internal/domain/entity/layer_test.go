package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLayerMask(t *testing.T) {
	mask, err := ParseLayerMask([]string{"ground", " Danger "})
	require.NoError(t, err)

	assert.True(t, mask.Has(LayerGround))
	assert.True(t, mask.Has(LayerDanger))
	assert.False(t, mask.Has(LayerPlayer))
	assert.False(t, mask.Has(LayerPickup))
}

func TestParseLayerMask_Unknown(t *testing.T) {
	_, err := ParseLayerMask([]string{"ground", "lava"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lava")
}

func TestParseLayerMask_Empty(t *testing.T) {
	mask, err := ParseLayerMask(nil)
	require.NoError(t, err)
	assert.Equal(t, LayerNone, mask)
}

func TestLayerForTile(t *testing.T) {
	assert.Equal(t, LayerGround, LayerForTile(TileGround))
	assert.Equal(t, LayerDanger, LayerForTile(TileDanger))
	assert.Equal(t, LayerFinish, LayerForTile(TileFinish))
	assert.Equal(t, LayerNone, LayerForTile(TileEmpty))
}
