package components

import (
	"time"

	"github.com/lixenwraith/eco-fighter/constants"
	"github.com/lixenwraith/eco-fighter/vmath"
)

// Player is the user-controlled avatar
type Player struct {
	Rect   vmath.Rect
	Speed  float64
	Facing Direction
	Score  int // targets completed this attempt

	// Melee state; a new attack needs AttackActive == false and no pending cooldown
	AttackActive        bool
	AttackActiveUntil   time.Time
	AttackCooldownUntil time.Time
}

// NewPlayer creates a player at the attempt start position
func NewPlayer() Player {
	p := Player{}
	p.Reset()
	return p
}

// StartPosition is the top-left corner the player spawns at each attempt
func StartPosition() vmath.Vec2 {
	return vmath.Vec2{
		X: constants.CanvasWidth*0.35 - constants.PlayerSize/2,
		Y: constants.PlayHeight - constants.PlayerSize - 10,
	}
}

// Reset restores the attempt start state
func (p *Player) Reset() {
	start := StartPosition()
	p.Rect = vmath.Rect{X: start.X, Y: start.Y, W: constants.PlayerSize, H: constants.PlayerSize}
	p.Speed = constants.PlayerSpeed
	p.Facing = DirRight
	p.Score = 0
	p.AttackActive = false
	p.AttackActiveUntil = time.Time{}
	p.AttackCooldownUntil = time.Time{}
}

// CoolingDown reports a pending attack cooldown
func (p *Player) CoolingDown(now time.Time) bool {
	return !p.AttackCooldownUntil.IsZero() && now.Before(p.AttackCooldownUntil)
}

// ExpireAttack clears the active window and cooldown once their deadlines pass
func (p *Player) ExpireAttack(now time.Time) {
	if p.AttackActive && !now.Before(p.AttackActiveUntil) {
		p.AttackActive = false
		p.AttackActiveUntil = time.Time{}
	}
	if !p.AttackCooldownUntil.IsZero() && !now.Before(p.AttackCooldownUntil) {
		p.AttackCooldownUntil = time.Time{}
	}
}

// TryAttack starts an attack if none is active and no cooldown is pending
// Cooldown runs from request time, independent of the active window
func (p *Player) TryAttack(now time.Time) bool {
	if p.AttackActive || p.CoolingDown(now) {
		return false
	}
	p.AttackActive = true
	p.AttackActiveUntil = now.Add(constants.AttackActiveDuration)
	p.AttackCooldownUntil = now.Add(constants.AttackCooldown)
	return true
}

// ReachRect is the melee hit box extending from the player edge in the facing direction
func (p *Player) ReachRect() vmath.Rect {
	r := p.Rect
	reach := constants.AttackReach
	switch p.Facing {
	case DirLeft:
		return vmath.Rect{X: r.X - reach, Y: r.Y, W: reach, H: r.H}
	case DirUp:
		return vmath.Rect{X: r.X, Y: r.Y - reach, W: r.W, H: reach}
	case DirDown:
		return vmath.Rect{X: r.X, Y: r.Y + r.H, W: r.W, H: reach}
	default:
		return vmath.Rect{X: r.X + r.W, Y: r.Y, W: reach, H: r.H}
	}
}
