// Package ledger accumulates XP earned during one game session and flushes
// it to the account profile exactly once on exit
package ledger

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/eco-fighter/service"
)

// Entry is one credit recorded in the session history
type Entry struct {
	Amount int
	Reason string
}

// Ledger is the session-local XP balance
type Ledger struct {
	mu sync.Mutex

	sessionID uuid.UUID
	accountID string
	sink      service.XPSink
	log       zerolog.Logger

	balance int
	history []Entry
	flushed bool
}

// New creates an empty ledger for accountID
func New(accountID string, sink service.XPSink, log zerolog.Logger) *Ledger {
	id := uuid.New()
	return &Ledger{
		sessionID: id,
		accountID: accountID,
		sink:      sink,
		log:       log.With().Str("component", "ledger").Str("session", id.String()).Logger(),
	}
}

// SessionID identifies this ledger's session in logs
func (l *Ledger) SessionID() uuid.UUID {
	return l.sessionID
}

// Credit adds amount to the balance; non-positive amounts and credits after flush are ignored
func (l *Ledger) Credit(amount int, reason string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if amount <= 0 || l.flushed {
		return false
	}
	l.balance += amount
	l.history = append(l.history, Entry{Amount: amount, Reason: reason})
	l.log.Debug().Int("amount", amount).Int("balance", l.balance).Str("reason", reason).Msg("credit")
	return true
}

// Balance returns the unflushed XP
func (l *Ledger) Balance() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}

// History returns a copy of all credits
func (l *Ledger) History() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.history))
	copy(out, l.history)
	return out
}

// Flushed reports whether Flush has run
func (l *Ledger) Flushed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.flushed
}

// Flush sends the balance to the sink once
// A zero balance skips the sink call; a sink failure is returned but the
// ledger is still marked flushed and the balance discarded
func (l *Ledger) Flush(ctx context.Context) (int, error) {
	l.mu.Lock()
	if l.flushed {
		l.mu.Unlock()
		return 0, nil
	}
	amount := l.balance
	l.balance = 0
	l.flushed = true
	l.mu.Unlock()

	if amount == 0 || l.sink == nil {
		return 0, nil
	}

	if err := l.sink.CreditXP(ctx, l.accountID, amount); err != nil {
		l.log.Error().Err(err).Int("amount", amount).Str("account", l.accountID).Msg("xp flush failed")
		return amount, err
	}
	l.log.Info().Int("amount", amount).Str("account", l.accountID).Msg("xp flushed")
	return amount, nil
}
