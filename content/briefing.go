// Package content holds the scripted briefing lines shown before each attempt
package content

import (
	"time"
	"unicode/utf8"

	"github.com/lixenwraith/eco-fighter/constants"
	"github.com/lixenwraith/eco-fighter/core"
)

var cleanupScripts = [constants.BriefingScenes][]string{
	{
		"Welcome, ranger. The shoreline is buried in litter.",
		"Stand on a piece of trash for half a second to pick it up.",
		"Watch out for bad citizens: they throw trash back on the ground.",
		"Press space to shoo them away. Clear every item before time runs out!",
	},
	{
		"Nice work out there. The tide brought in a fresh batch.",
		"The bad citizens are faster now, keep an eye on the buildings and cars.",
		"Clear the beach and the streets again. Good luck!",
	},
	{
		"This is the big one. The whole bay is counting on you.",
		"Every scene from here on, the troublemakers get quicker.",
		"Stay sharp, stay moving, and bank as much XP as you can.",
	},
}

var plantingScripts = [constants.BriefingScenes][]string{
	{
		"Welcome, ranger. This stretch of desert is ready for new trees.",
		"Stand on a marked spot for half a second to plant a sapling.",
		"Bad citizens will try to cut your trees down.",
		"Press space to stop them. Plant every spot before time runs out!",
	},
	{
		"The first grove is taking root. Time for the next field.",
		"The bad citizens are faster now, keep an eye on the huts and trucks.",
		"Plant every spot again. Good luck!",
	},
	{
		"The dunes are turning green thanks to you.",
		"Every scene from here on, the troublemakers get quicker.",
		"Keep planting and bank as much XP as you can.",
	},
}

// Script returns the briefing lines for mode and scene; scenes past the last script reuse it
func Script(mode core.Mode, scene int) []string {
	idx := min(max(scene, 1), constants.BriefingScenes) - 1
	if mode == core.ModePlanting {
		return plantingScripts[idx]
	}
	return cleanupScripts[idx]
}

// RevealDuration is how long the typewriter effect takes for line
func RevealDuration(line string) time.Duration {
	return time.Duration(utf8.RuneCountInString(line)) * constants.RevealPerRune
}

// Revealed returns the visible prefix of line after elapsed
func Revealed(line string, elapsed time.Duration) string {
	if elapsed <= 0 {
		return ""
	}
	n := int(elapsed / constants.RevealPerRune)
	if n >= utf8.RuneCountInString(line) {
		return line
	}
	runes := []rune(line)
	return string(runes[:n])
}
