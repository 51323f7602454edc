package common

const (
	// BaseWidth and BaseHeight are the logical screen size. Levels are
	// authored in these coordinates.
	BaseWidth  = 960
	BaseHeight = 600

	TPS = 60

	TileSize = 42
)
