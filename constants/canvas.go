package constants

// Canvas (world units). Simulation runs on a fixed virtual canvas;
// renderers project it onto whatever terminal area is available
const (
	CanvasWidth  = 800.0
	CanvasHeight = 600.0

	// RoadHeight is the reserved bottom strip (road + HUD); the player stays above it
	RoadHeight = 60.0

	// PlayHeight is the vertical extent available to targets and the player
	PlayHeight = CanvasHeight - RoadHeight

	// OceanStartFraction marks the ocean sub-region: right 30% of the play width
	OceanStartFraction = 0.7

	// GridCellSize is the placement cell edge used to keep collectibles apart
	GridCellSize = 40.0
)

// Entity sizes (world units)
const (
	PlayerSize      = 30.0
	CollectibleSize = 22.0
	PlantSpotSize   = 28.0
	AdversarySize   = 28.0
)

// Planting grid; rows fill [PlantTop, PlantBottom] below the building row
const (
	PlantColumns       = 10
	PlantMarginX       = 60.0
	PlantTop           = 160.0
	PlantBottom        = 480.0
	PlantMaxRowSpacing = 60.0
)

// Window bitmap cell size for buildings
const (
	WindowCellWidth  = 20.0
	WindowCellHeight = 25.0
	WindowLitChance  = 0.6
)
