package engine

import (
	"time"

	"github.com/lixenwraith/eco-fighter/content"
)

// Briefing walks the scripted lines shown before an attempt
// Reveal runs on real time so it is unaffected by the paused game clock
type Briefing struct {
	Lines     []string
	Index     int
	StartedAt time.Time // real time the current line began revealing
}

// Reset loads lines and starts revealing the first one
func (b *Briefing) Reset(lines []string, now time.Time) {
	b.Lines = lines
	b.Index = 0
	b.StartedAt = now
}

// Current returns the line being shown
func (b *Briefing) Current() string {
	if b.Index < 0 || b.Index >= len(b.Lines) {
		return ""
	}
	return b.Lines[b.Index]
}

// Visible returns the revealed part of the current line
func (b *Briefing) Visible(now time.Time) string {
	return content.Revealed(b.Current(), now.Sub(b.StartedAt))
}

// LineDone reports whether the current line finished revealing
func (b *Briefing) LineDone(now time.Time) bool {
	return now.Sub(b.StartedAt) >= content.RevealDuration(b.Current())
}

// Last reports whether the current line is the final one
func (b *Briefing) Last() bool {
	return b.Index >= len(b.Lines)-1
}

// Next moves to the following line
func (b *Briefing) Next(now time.Time) {
	if b.Last() {
		return
	}
	b.Index++
	b.StartedAt = now
}
