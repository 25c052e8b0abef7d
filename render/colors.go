package render

// Palette
var (
	RgbBackground = RGB{26, 27, 38} // Tokyo Night background
	RgbText       = RGB{220, 220, 220}
	RgbTextDim    = RGB{130, 130, 140}
	RgbTextBright = RGB{255, 255, 255}

	// Cleanup theme
	RgbOceanDeep    = RGB{12, 52, 96}
	RgbOceanShallow = RGB{28, 92, 140}
	RgbWave         = RGB{120, 180, 220}
	RgbCityGround   = RGB{70, 72, 78}
	RgbCityPavement = RGB{84, 86, 92}
	RgbRoad         = RGB{40, 40, 44}
	RgbRoadStripe   = RGB{230, 200, 60}

	// Planting theme
	RgbSand     = RGB{196, 160, 98}
	RgbDune     = RGB{176, 138, 80}
	RgbDuneLine = RGB{150, 116, 64}
	RgbDirtRoad = RGB{120, 92, 60}

	// Scenery
	RgbBuildingWall  = RGB{92, 96, 110}
	RgbBuildingEdge  = RGB{60, 62, 72}
	RgbWindowLit     = RGB{250, 220, 120}
	RgbWindowDark    = RGB{36, 40, 52}
	RgbVehicleBody   = RGB{180, 50, 50}
	RgbVehicleWindow = RGB{150, 200, 230}
	RgbTreeLeaf      = RGB{40, 140, 60}
	RgbTreeTrunk     = RGB{110, 70, 40}
	RgbLampPost      = RGB{150, 150, 160}
	RgbLampLight     = RGB{255, 240, 170}

	// Targets
	RgbTrash     = RGB{160, 130, 90}
	RgbBottle    = RGB{90, 200, 160}
	RgbCan       = RGB{200, 200, 210}
	RgbPlantSpot = RGB{120, 84, 50}
	RgbSapling   = RGB{80, 200, 90}
	RgbDwellRing = RGB{255, 255, 120}

	// Actors
	RgbPlayer       = RGB{80, 220, 255}
	RgbPlayerAccent = RGB{255, 255, 255}
	RgbAttack       = RGB{255, 180, 60}
	RgbAdversary    = [3]RGB{{220, 80, 80}, {200, 90, 200}, {230, 140, 40}}

	// UI
	RgbHudBg        = RGB{16, 16, 24}
	RgbHudLabel     = RGB{135, 206, 250}
	RgbHudXP        = RGB{255, 215, 0}
	RgbNotice       = RGB{255, 170, 120}
	RgbOverlayBg    = RGB{20, 22, 34}
	RgbOverlayEdge  = RGB{135, 206, 250}
	RgbWin          = RGB{120, 230, 120}
	RgbLose         = RGB{240, 100, 100}
	RgbAudioMuted   = RGB{255, 0, 0}
	RgbAudioUnmuted = RGB{0, 255, 0}
)

// TimerColor returns the countdown bar color for the fraction of time left
// 1.0 is green, fading through yellow to red at 0
func TimerColor(fraction float64) RGB {
	if fraction <= 0.0 {
		return RGB{139, 0, 0}
	}
	if fraction > 1.0 {
		fraction = 1.0
	}

	green := RGB{34, 200, 80}
	yellow := RGB{255, 215, 0}
	red := RGB{220, 40, 40}

	if fraction < 0.5 { // Red to Yellow
		return Lerp(red, yellow, fraction/0.5)
	}
	// Yellow to Green
	return Lerp(yellow, green, (fraction-0.5)/0.5)
}
