package constants

// HUD layout (cells)
const (
	// TopMargin reserves the HUD row above the play field
	TopMargin = 1

	// BottomMargin reserves the notice/status row below the play field
	BottomMargin = 1

	// ProgressRingFrames is the number of dwell ring glyphs
	ProgressRingFrames = 4
)

// Status text
const (
	TitleText        = " ECO FIGHTER "
	PausedText       = "PAUSED - press p to resume"
	HelpText         = "arrows/wasd move  space attack  p pause  m mute  q exit"
	ConfirmExitTitle = "Leave the game?"
	ConfirmExitText  = "Banked XP will be saved to your profile. [y] leave  [n] stay"
)
