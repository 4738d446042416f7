package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	for _, tc := range []struct {
		keys string
		want string
	}{
		{"2+3*4=", "14"},
		{"(2+3)*4=", "20"},
		{"2*(3+4)=", "14"},
		{"2-3-4=", "-5"},
		{"8/2/2=", "2"},
		{"10/4=", "2.5"},
		{"5(2)=", "10"},
		{"2+3=+1=", "6"},
		{"1.5*4=", "6"},
	} {
		t.Run(tc.keys, func(t *testing.T) {
			s := New(Config{})
			press(s, tc.keys)
			assert.Equal(t, tc.want, s.Display())
		})
	}
}

func TestUnaryMinus(t *testing.T) {
	s := New(Config{})
	press(s, "3+5")
	s.ToggleSign()
	press(s, "=")
	assert.Equal(t, "-2", s.Display())

	s = New(Config{})
	press(s, "(-5)*2=")
	assert.Equal(t, "-10", s.Display())
}

func TestBareNumberIsNotCalculated(t *testing.T) {
	s := New(Config{})
	press(s, "42=")
	assert.Equal(t, "42", s.Display())
	assert.Zero(t, s.Tape().Len())
	assert.False(t, s.Waiting())

	// A parenthesized bare number holds no operator either.
	s = New(Config{})
	press(s, "(5)=")
	assert.Equal(t, "(5)", s.Display())
	assert.Zero(t, s.Tape().Len())
}

func TestDivisionByZero(t *testing.T) {
	s := New(Config{})
	press(s, "5/0=")
	assert.Equal(t, "Error", s.Display())
	assert.True(t, s.Errored())
	assert.Zero(t, s.Tape().Len())

	// Backspace recovers the expression for editing.
	s.Backspace()
	assert.Equal(t, "5/0", s.Display())
	s.Backspace()
	press(s, "2=")
	assert.Equal(t, "2.5", s.Display())
}

func TestMalformedExpression(t *testing.T) {
	for _, keys := range []string{"5+(=", "(+5)="} {
		s := New(Config{})
		press(s, keys)
		assert.Equal(t, "Error", s.Display(), "keys %q", keys)
		assert.Zero(t, s.Tape().Len())
	}
}

func TestEvaluationReplacesInput(t *testing.T) {
	s := New(Config{})
	press(s, "2+3=")
	require.Equal(t, "5", s.Display())
	assert.True(t, s.Waiting())
	_, pending := s.PendingOp()
	assert.False(t, pending)

	// The result is not cleared: the next digit extends it.
	press(s, "1")
	assert.Equal(t, "51", s.Display())
}

func TestTapeRecordsSteps(t *testing.T) {
	s := New(Config{})
	press(s, "2+3=")
	press(s, "*2=")
	steps := s.Tape().Steps()
	require.Len(t, steps, 2)
	assert.Equal(t, Step{ID: 1, Expr: "2+3", Result: 5}, steps[0])
	assert.Equal(t, Step{ID: 2, Expr: "5*2", Result: 10}, steps[1])
}
