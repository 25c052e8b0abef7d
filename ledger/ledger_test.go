package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	calls   []int
	account string
	err     error
}

func (s *recordingSink) CreditXP(_ context.Context, accountID string, amount int) error {
	s.calls = append(s.calls, amount)
	s.account = accountID
	return s.err
}

func TestCreditAccumulates(t *testing.T) {
	l := New("acct", nil, zerolog.Nop())

	assert.True(t, l.Credit(30, "win"))
	assert.True(t, l.Credit(50, "ad"))
	assert.False(t, l.Credit(0, "zero"))
	assert.False(t, l.Credit(-5, "negative"))

	assert.Equal(t, 80, l.Balance())
	assert.Equal(t, []Entry{{30, "win"}, {50, "ad"}}, l.History())
}

func TestFlushOnce(t *testing.T) {
	sink := &recordingSink{}
	l := New("acct", sink, zerolog.Nop())
	l.Credit(45, "win")

	n, err := l.Flush(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 45, n)

	n, err = l.Flush(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.Equal(t, []int{45}, sink.calls)
	assert.Equal(t, "acct", sink.account)
	assert.Zero(t, l.Balance())
	assert.True(t, l.Flushed())
}

func TestFlushSkipsZeroBalance(t *testing.T) {
	sink := &recordingSink{}
	l := New("acct", sink, zerolog.Nop())

	n, err := l.Flush(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, sink.calls)
	assert.True(t, l.Flushed())
}

func TestFlushFailureStillMarksFlushed(t *testing.T) {
	sink := &recordingSink{err: errors.New("offline")}
	l := New("acct", sink, zerolog.Nop())
	l.Credit(10, "win")

	n, err := l.Flush(context.Background())
	require.Error(t, err)
	assert.Equal(t, 10, n)
	assert.True(t, l.Flushed())
	assert.Zero(t, l.Balance())

	assert.False(t, l.Credit(5, "late"), "credits after flush are dropped")
}

func TestSessionIDsDiffer(t *testing.T) {
	a := New("acct", nil, zerolog.Nop())
	b := New("acct", nil, zerolog.Nop())
	assert.NotEqual(t, a.SessionID(), b.SessionID())
}
