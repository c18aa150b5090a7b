package aquarium

// SpriteHandle is an opaque reference to a visual resource.
// The simulation stores and hands it back; it never draws.
type SpriteHandle struct {
	Asset string
	W, H  int
}

// IsZero reports whether the handle refers to nothing.
func (h SpriteHandle) IsZero() bool {
	return h.Asset == ""
}

// SpriteProvider returns the visual handle for a creature kind.
type SpriteProvider interface {
	Sprite(kind Kind) (SpriteHandle, bool)
}

// AssetCatalog is a static SpriteProvider keyed by kind.
type AssetCatalog map[Kind]SpriteHandle

// Sprite implements SpriteProvider.
func (c AssetCatalog) Sprite(kind Kind) (SpriteHandle, bool) {
	h, ok := c[kind]
	return h, ok
}

// PlayerBoosted is the handle shown while the size boost is active.
var PlayerBoosted = SpriteHandle{Asset: "pez_Espada.png", W: 100, H: 100}

// DefaultCatalog returns the stock asset names and sizes.
func DefaultCatalog() AssetCatalog {
	return AssetCatalog{
		KindPlayer:     {Asset: "player-fish.png", W: 70, H: 70},
		KindNPC:        {Asset: "base-fish.png", W: 70, H: 70},
		KindBiggerFish: {Asset: "bigger-fish.png", W: 120, H: 120},
		KindPowerUp:    {Asset: "devil_Fruit.png", W: 40, H: 40},
		KindSpeedFruit: {Asset: "kizaru_Fruit.png", W: 40, H: 40},
		KindGyarados:   {Asset: "gyarados.png", W: 140, H: 140},
		KindAngler:     {Asset: "angler_Fish.png", W: 90, H: 90},
	}
}
