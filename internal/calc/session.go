// Package calc implements the expression calculator behind the numeric
// fields of the shift editor. A session builds an arithmetic expression from
// discrete key presses, evaluates it on demand, keeps a tape of past
// calculations and a memory accumulator, and finally writes one clamped
// value back to the owning field.
package calc

import (
	"math"
	"strconv"
)

// Config describes the field an editing session is opened for.
type Config struct {
	Value  float64 // current field value, seeds the display
	Places int     // fractional digits written back, default 2
	Commit func(value float64)
	Action func() // optional press feedback, may be nil
}

// Session is a single calculator editing session. It owns exactly one
// numeric field for its lifetime: Commit writes the final value back once,
// Cancel discards everything. All methods must be called from one goroutine.
type Session struct {
	cfg  Config
	fmtr formatter
	seed string // formatted seed value, "" when the field was zero

	expr    expression
	pending Op
	hasOp   bool // an operator is pending (highlights the key)
	waiting bool // next digit starts a fresh operand
	errored bool // display shows the error sentinel
	closed  bool

	mem  memory
	tape Tape
}

// New opens a session for the field described by cfg.
func New(cfg Config) *Session {
	if cfg.Places <= 0 {
		cfg.Places = 2
	}
	s := &Session{cfg: cfg, fmtr: formatter{places: cfg.Places}}
	if cfg.Value != 0 {
		s.seed = s.fmtr.display(cfg.Value)
	}
	s.expr = s.seedExpr()
	s.mem.fetch = s.value
	return s
}

// Display returns the text shown in the result area.
func (s *Session) Display() string {
	if s.errored {
		return "Error"
	}
	return s.expr.String()
}

// Errored reports whether the display shows the error sentinel.
func (s *Session) Errored() bool {
	return s.errored
}

// Waiting reports whether the next digit starts a fresh operand.
func (s *Session) Waiting() bool {
	return s.waiting
}

// PendingOp returns the operator awaiting its right operand, if any.
func (s *Session) PendingOp() (Op, bool) {
	return s.pending, s.hasOp
}

// Tape returns the session's calculation history.
func (s *Session) Tape() *Tape {
	return &s.tape
}

// MemoryValue returns the current memory accumulator.
func (s *Session) MemoryValue() float64 {
	return s.mem.value
}

// Equals evaluates the expression. Evaluating a bare number is a no-op: the
// tape records calculations, not values. On success the result replaces the
// input and is appended to the tape; on failure the display shows "Error"
// and the tape is untouched. Errors never propagate to the host.
func (s *Session) Equals() {
	if s.closed || s.errored {
		return
	}
	s.note()
	if !s.expr.hasOperator() {
		return
	}
	v, err := evaluate(s.expr)
	if err != nil {
		s.errored = true
		return
	}
	s.tape.append(s.expr.String(), v)
	s.expr = expression{number(s.fmtr.display(v))}
	s.hasOp = false
	s.waiting = true
}

// MemoryAdd adds the current value to memory.
func (s *Session) MemoryAdd() {
	if s.closed {
		return
	}
	s.note()
	s.mem.add()
}

// MemorySubtract subtracts the current value from memory.
func (s *Session) MemorySubtract() {
	if s.closed {
		return
	}
	s.note()
	s.mem.subtract()
}

// MemoryClear resets the memory accumulator.
func (s *Session) MemoryClear() {
	if s.closed {
		return
	}
	s.note()
	s.mem.clear()
}

// MemoryRecall inserts the memory value into the input. A fresh "0" display
// is replaced; anything else gets the value appended at the end, since there
// is no cursor. Text landing on an operand is re-lexed so a negative value
// reads as a subtraction.
func (s *Session) MemoryRecall() {
	if s.closed || s.errored {
		return
	}
	s.note()
	text := s.fmtr.display(s.mem.value)
	switch {
	case s.expr.isZero():
		s.expr = expression{number(text)}
	default:
		if last, _ := s.expr.last(); last.kind == numberTok || last.kind == closeTok {
			s.expr = s.expr.appendNumberText(text)
		} else {
			s.expr = append(s.expr, number(text))
		}
	}
}

// value extracts a number from the current input: full evaluation first,
// then plain-number parsing, then 0. Used by memory and by Commit.
func (s *Session) value() float64 {
	if v, err := evaluate(s.expr); err == nil {
		return v
	}
	if v, err := strconv.ParseFloat(s.expr.String(), 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
		return v
	}
	return 0
}

// Commit writes the final value back to the field and closes the session.
// The value is rounded to the configured precision and clamped to zero.
// Commit writes back exactly once; repeated calls return the same value
// without calling the sink again.
func (s *Session) Commit() float64 {
	v := s.fmtr.commit(s.value())
	if s.closed {
		return v
	}
	s.closed = true
	if s.cfg.Commit != nil {
		s.cfg.Commit(v)
	}
	return v
}

// Cancel closes the session without writing back. The input and memory
// return to their session-start state; the tape is left alone.
func (s *Session) Cancel() {
	if s.closed {
		return
	}
	s.closed = true
	s.expr = s.seedExpr()
	s.mem.clear()
	s.hasOp = false
	s.waiting = false
	s.errored = false
}

// seedExpr builds a fresh expression showing the seed value.
func (s *Session) seedExpr() expression {
	if s.seed == "" {
		return nil
	}
	return expression{number(s.seed)}
}

// note fires the press feedback notification, if configured.
func (s *Session) note() {
	if s.cfg.Action != nil {
		s.cfg.Action()
	}
}
