package texture

import "wolfcast/level"

// Pair is the two lighting variants of one wall. Light is used for faces hit
// on a vertical grid line and Dark for faces on a horizontal one.
type Pair struct {
	Light *Texture
	Dark  *Texture
}

// Atlas resolves wall tiles to texture pairs. Textures are laid out the way
// VSWAP stores them: tile n uses textures 2(n-1) and 2(n-1)+1.
type Atlas struct {
	textures []*Texture
	fallback Pair
}

func NewAtlas(textures []*Texture, fallback Pair) *Atlas {
	return &Atlas{textures: textures, fallback: fallback}
}

// WallPair returns the pair for tile, or the fallback pair when the atlas has
// no textures for it.
func (a *Atlas) WallPair(tile level.Tile) Pair {
	if tile == level.Empty {
		return a.fallback
	}
	i := 2 * (int(tile) - 1)
	if i+1 >= len(a.textures) || a.textures[i] == nil || a.textures[i+1] == nil {
		return a.fallback
	}
	return Pair{Light: a.textures[i], Dark: a.textures[i+1]}
}

func (a *Atlas) Len() int { return len(a.textures) }
