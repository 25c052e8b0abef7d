package engine

// Phase is the mission state of a session
// Exactly one phase is active; transitions are methods on Session
type Phase uint8

const (
	PhaseIdle         Phase = iota // difficulty selection
	PhaseBriefing                  // scripted lines before an attempt
	PhaseRunning                   // simulator and countdown active
	PhasePaused                    // frozen attempt
	PhaseWon                       // attempt ended, reward credited
	PhaseLost                      // countdown expired
	PhaseWatchingAd                // awaiting the ad collaborator
	PhaseConfirmExit               // exit prompt over the previous phase
	PhaseExited                    // terminal
)

var phaseNames = [...]string{
	PhaseIdle:        "idle",
	PhaseBriefing:    "briefing",
	PhaseRunning:     "running",
	PhasePaused:      "paused",
	PhaseWon:         "won",
	PhaseLost:        "lost",
	PhaseWatchingAd:  "watching_ad",
	PhaseConfirmExit: "confirm_exit",
	PhaseExited:      "exited",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// InAttempt reports phases where an attempt is started or about to start
func (p Phase) InAttempt() bool {
	return p == PhaseBriefing || p == PhaseRunning || p == PhasePaused
}

// Ended reports the post-attempt phases
func (p Phase) Ended() bool {
	return p == PhaseWon || p == PhaseLost
}
