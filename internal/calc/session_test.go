package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedValue(t *testing.T) {
	s := New(Config{Value: 12.5})
	assert.Equal(t, "12.5", s.Display())
	// No cursor: a digit press extends the seed text.
	press(s, "3")
	assert.Equal(t, "12.53", s.Display())

	s = New(Config{})
	assert.Equal(t, "0", s.Display())
}

func TestCommit(t *testing.T) {
	var got []float64
	s := New(Config{Places: 2, Commit: func(v float64) { got = append(got, v) }})
	press(s, "10/3=")
	v := s.Commit()
	assert.Equal(t, 3.33, v)
	require.Equal(t, []float64{3.33}, got)

	// Writes back exactly once.
	assert.Equal(t, 3.33, s.Commit())
	assert.Len(t, got, 1)
}

func TestCommitEvaluatesPendingExpression(t *testing.T) {
	s := New(Config{})
	press(s, "2+3")
	assert.Equal(t, 5.0, s.Commit())
}

func TestCommitClampsNegative(t *testing.T) {
	var got float64
	s := New(Config{Commit: func(v float64) { got = v }})
	press(s, "7")
	s.ToggleSign()
	require.Equal(t, "-7", s.Display())
	assert.Zero(t, s.Commit())
	assert.Zero(t, got)
}

func TestCommitAfterError(t *testing.T) {
	s := New(Config{})
	press(s, "5/0=")
	require.Equal(t, "Error", s.Display())
	// Neither evaluation nor plain parsing yields a number here.
	assert.Zero(t, s.Commit())
}

func TestCancel(t *testing.T) {
	committed := false
	s := New(Config{Value: 12.5, Commit: func(float64) { committed = true }})
	press(s, "99+1=")
	s.MemoryAdd()
	s.Cancel()
	assert.Equal(t, "12.5", s.Display())
	assert.Zero(t, s.MemoryValue())
	assert.False(t, committed)
	// The tape survives cancel; the closed session ignores input.
	assert.Equal(t, 1, s.Tape().Len())
	press(s, "7")
	assert.Equal(t, "12.5", s.Display())
}

func TestDefaultPlaces(t *testing.T) {
	var got float64
	s := New(Config{Commit: func(v float64) { got = v }})
	press(s, "1/3=")
	s.Commit()
	assert.Equal(t, 0.33, got)
}

func TestMemoryAccumulator(t *testing.T) {
	s := New(Config{})
	press(s, "2+3")
	s.MemoryAdd() // evaluates the expression
	assert.Equal(t, 5.0, s.MemoryValue())
	s.MemorySubtract()
	assert.Zero(t, s.MemoryValue())
	s.MemoryAdd()
	s.MemoryAdd()
	s.MemoryClear()
	assert.Zero(t, s.MemoryValue())
}

func TestMemoryFallsBackToZero(t *testing.T) {
	s := New(Config{})
	press(s, "5/0")
	s.MemoryAdd()
	assert.Zero(t, s.MemoryValue())
}

func TestMemoryRecall(t *testing.T) {
	s := New(Config{})
	press(s, "50")
	s.MemoryAdd()
	s.Clear()
	s.MemoryRecall()
	assert.Equal(t, "50", s.Display())
	press(s, "+")
	s.MemoryRecall()
	assert.Equal(t, "50+50", s.Display())
}

func TestMemoryRecallNegative(t *testing.T) {
	s := New(Config{})
	press(s, "3")
	s.ToggleSign()
	s.MemoryAdd()
	require.Equal(t, -3.0, s.MemoryValue())

	// Appended onto an operand, a negative recall reads as a subtraction.
	s.Clear()
	press(s, "5")
	s.MemoryRecall()
	assert.Equal(t, "5-3", s.Display())
	press(s, "=")
	assert.Equal(t, "2", s.Display())
	assert.Equal(t, 1, s.Tape().Len())
	assert.Equal(t, 2.0, s.Commit())
}

func TestMemoryRecallNegativeAfterGroup(t *testing.T) {
	s := New(Config{})
	press(s, "3")
	s.ToggleSign()
	s.MemoryAdd()
	s.Clear()
	press(s, "(5)")
	s.MemoryRecall()
	assert.Equal(t, "(5)-3", s.Display())
	press(s, "=")
	assert.Equal(t, "2", s.Display())
}

func TestMemoryRecallDecimal(t *testing.T) {
	s := New(Config{})
	press(s, ".25")
	s.MemoryAdd()
	s.Clear()
	press(s, "5.")
	s.MemoryRecall()
	// The second point starts a fresh operand; with no operator between the
	// two, "=" stays suppressed just as it would for a typed bare number.
	assert.Equal(t, "5.0.25", s.Display())
	press(s, "=")
	assert.Equal(t, "5.0.25", s.Display())
	assert.False(t, s.Errored())
	assert.Zero(t, s.Tape().Len())
}

func TestMemorySurvivesClear(t *testing.T) {
	s := New(Config{})
	press(s, "8")
	s.MemoryAdd()
	s.Clear()
	assert.Equal(t, 8.0, s.MemoryValue())
}

func TestActionNotifications(t *testing.T) {
	presses := 0
	s := New(Config{Action: func() { presses++ }})
	press(s, "+")
	assert.Zero(t, presses, "discarded operator gives no feedback")
	press(s, "12")
	assert.Zero(t, presses, "digits give no feedback")
	press(s, "+")
	assert.Equal(t, 1, presses)
	press(s, "3=")
	assert.Equal(t, 2, presses)
	s.MemoryAdd()
	s.MemoryRecall()
	assert.Equal(t, 4, presses)
}
