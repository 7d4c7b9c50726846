package entity

import (
	"fmt"
	"strings"
)

// LayerMask is a bit set of collision layers
type LayerMask uint

const (
	LayerGround LayerMask = 1 << iota
	LayerDanger
	LayerFinish
	LayerPickup
	LayerPlayer

	LayerNone LayerMask = 0
)

var layerNames = map[string]LayerMask{
	"ground": LayerGround,
	"danger": LayerDanger,
	"finish": LayerFinish,
	"pickup": LayerPickup,
	"player": LayerPlayer,
}

// ParseLayerMask combines named layers into a mask
func ParseLayerMask(names []string) (LayerMask, error) {
	mask := LayerNone
	for _, name := range names {
		layer, ok := layerNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return LayerNone, fmt.Errorf("unknown collision layer %q", name)
		}
		mask |= layer
	}
	return mask, nil
}

// Has reports whether any bit of other is set in m
func (m LayerMask) Has(other LayerMask) bool {
	return m&other != 0
}

// LayerForTile returns the collision layer a solid tile type belongs to
func LayerForTile(t TileType) LayerMask {
	switch t {
	case TileGround:
		return LayerGround
	case TileDanger:
		return LayerDanger
	case TileFinish:
		return LayerFinish
	default:
		return LayerNone
	}
}
