package input

import "github.com/gdamore/tcell/v2"

// specialKeys maps non-rune tcell keys to intents
var specialKeys = map[tcell.Key]Intent{
	tcell.KeyUp:     {Type: IntentMove, Key: KeyUp},
	tcell.KeyDown:   {Type: IntentMove, Key: KeyDown},
	tcell.KeyLeft:   {Type: IntentMove, Key: KeyLeft},
	tcell.KeyRight:  {Type: IntentMove, Key: KeyRight},
	tcell.KeyEnter:  {Type: IntentConfirm},
	tcell.KeyEscape: {Type: IntentExit},
	tcell.KeyCtrlC:  {Type: IntentQuit},
	tcell.KeyCtrlQ:  {Type: IntentQuit},
}

// runeKeys maps printable keys to intents; lookup is case-insensitive
var runeKeys = map[rune]Intent{
	'w': {Type: IntentMove, Key: KeyUp},
	's': {Type: IntentMove, Key: KeyDown},
	'a': {Type: IntentMove, Key: KeyLeft},
	'd': {Type: IntentMove, Key: KeyRight},

	' ': {Type: IntentAttack},
	'f': {Type: IntentAttack},
	'j': {Type: IntentAttack},

	'p': {Type: IntentPause},
	'm': {Type: IntentToggleMute},
	'q': {Type: IntentExit},
	'y': {Type: IntentYes},
	'n': {Type: IntentNo},
	'c': {Type: IntentClaim},
	'r': {Type: IntentWatchAd},

	'1': {Type: IntentDifficulty, Level: 0},
	'2': {Type: IntentDifficulty, Level: 1},
	'3': {Type: IntentDifficulty, Level: 2},
}

// Parse converts a tcell key event into an intent
func Parse(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		if in, ok := runeKeys[r]; ok {
			return in
		}
		return Intent{}
	}
	if in, ok := specialKeys[ev.Key()]; ok {
		return in
	}
	return Intent{}
}
