package engine

import (
	"strconv"
	"time"

	"github.com/lixenwraith/eco-fighter/constants"
	"github.com/lixenwraith/eco-fighter/core"
	"github.com/lixenwraith/eco-fighter/events"
)

// Notice is one HUD message
type Notice struct {
	Text string
	At   time.Time // game time
}

// NoticeBoard turns game events into short HUD messages
type NoticeBoard struct {
	items []Notice
}

// NewNoticeBoard creates an empty board
func NewNoticeBoard() *NoticeBoard {
	return &NoticeBoard{items: make([]Notice, 0, constants.MaxNotices)}
}

// EventTypes implements events.Handler
func (n *NoticeBoard) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventMischief,
		events.EventAdversaryEliminated,
		events.EventAdversarySpawned,
		events.EventSceneCleared,
		events.EventXPCredited,
	}
}

// HandleEvent implements events.Handler
func (n *NoticeBoard) HandleEvent(gs *GameState, ev events.GameEvent) {
	var text string
	switch ev.Type {
	case events.EventMischief:
		if gs.Mode == core.ModePlanting {
			text = "A bad citizen cut down a tree!"
		} else {
			text = "A bad citizen threw trash back!"
		}
	case events.EventAdversaryEliminated:
		text = "Bad citizen stopped!"
	case events.EventAdversarySpawned:
		text = "A bad citizen showed up"
	case events.EventSceneCleared:
		if gs.Mode == core.ModePlanting {
			text = "Every spot planted!"
		} else {
			text = "Area cleared!"
		}
	case events.EventXPCredited:
		p, ok := ev.Payload.(*events.XPPayload)
		if !ok {
			return
		}
		text = "+" + strconv.Itoa(p.Amount) + " XP banked"
	default:
		return
	}
	n.Push(text, ev.Timestamp)
}

// Push adds a notice, dropping the oldest beyond MaxNotices
func (n *NoticeBoard) Push(text string, at time.Time) {
	if len(n.items) == constants.MaxNotices {
		copy(n.items, n.items[1:])
		n.items = n.items[:len(n.items)-1]
	}
	n.items = append(n.items, Notice{Text: text, At: at})
}

// Active returns notices younger than NoticeLifetime, oldest first
func (n *NoticeBoard) Active(now time.Time) []Notice {
	out := make([]Notice, 0, len(n.items))
	for _, it := range n.items {
		if now.Sub(it.At) < constants.NoticeLifetime {
			out = append(out, it)
		}
	}
	return out
}

// Clear drops all notices
func (n *NoticeBoard) Clear() {
	n.items = n.items[:0]
}
