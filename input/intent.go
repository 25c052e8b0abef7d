package input

// IntentType discriminates semantic actions produced from raw key events
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Ctrl+C: leave through the exit path
	IntentToggleMute // m
	IntentResize     // terminal resize

	// Gameplay
	IntentMove   // arrows, WASD; Key carries the direction
	IntentAttack // space, f, j
	IntentPause  // p

	// Flow
	IntentConfirm    // Enter: advance briefing, next scene
	IntentExit       // q, Esc: request exit
	IntentYes        // y: confirm exit
	IntentNo         // n: cancel exit
	IntentDifficulty // 1-3 on the start screen; Level carries the index
	IntentWatchAd    // r after a loss
	IntentClaim      // c: claim XP and exit
)

// Intent is a parsed key event
type Intent struct {
	Type  IntentType
	Key   Key // IntentMove
	Level int // IntentDifficulty, 0-based
}
