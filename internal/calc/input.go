package calc

import (
	"strconv"
	"strings"
)

const (
	ActionDigit ActionKind = iota
	ActionPoint
	ActionOperator
	ActionOpenParen
	ActionCloseParen
	ActionBackspace
	ActionClear
	ActionToggleSign
	ActionPercent
	ActionEquals
	ActionMemoryAdd
	ActionMemorySubtract
	ActionMemoryRecall
	ActionMemoryClear
)

type ActionKind int

// Action is one discrete calculator key press.
type Action struct {
	Kind  ActionKind
	Digit byte // '0'..'9', for ActionDigit
	Op    Op   // for ActionOperator
}

// Do applies a single key press to the session. Presses that would create
// an invalid expression are silently ignored; bad states are unreachable
// rather than reported.
func (s *Session) Do(a Action) {
	if s.closed {
		return
	}
	switch a.Kind {
	case ActionDigit:
		s.Digit(a.Digit)
	case ActionPoint:
		s.Point()
	case ActionOperator:
		s.Operator(a.Op)
	case ActionOpenParen:
		s.OpenParen()
	case ActionCloseParen:
		s.CloseParen()
	case ActionBackspace:
		s.Backspace()
	case ActionClear:
		s.Clear()
	case ActionToggleSign:
		s.ToggleSign()
	case ActionPercent:
		s.Percent()
	case ActionEquals:
		s.Equals()
	case ActionMemoryAdd:
		s.MemoryAdd()
	case ActionMemorySubtract:
		s.MemorySubtract()
	case ActionMemoryRecall:
		s.MemoryRecall()
	case ActionMemoryClear:
		s.MemoryClear()
	}
}

// Digit appends a digit. On the untouched "0" display the digit replaces
// the zero; after an evaluation it extends the shown result.
func (s *Session) Digit(d byte) {
	if s.closed || s.errored || d < '0' || d > '9' {
		return
	}
	s.waiting = false
	if s.expr.isZero() {
		s.expr = expression{number(string(d))}
		return
	}
	if last, _ := s.expr.last(); last.kind == numberTok {
		s.expr[len(s.expr)-1].text += string(d)
	} else {
		s.expr = append(s.expr, number(string(d)))
	}
}

// Point appends a decimal point to the current operand, or starts a new
// "0." operand after an operator or open parenthesis. An operand holds at
// most one point.
func (s *Session) Point() {
	if s.closed || s.errored {
		return
	}
	if s.expr.isZero() {
		s.waiting = false
		s.expr = expression{number("0.")}
		return
	}
	last, _ := s.expr.last()
	switch last.kind {
	case numberTok:
		if !strings.Contains(last.text, ".") {
			s.waiting = false
			s.expr[len(s.expr)-1].text += "."
		}
	case operatorTok, openTok:
		s.waiting = false
		s.expr = append(s.expr, number("0."))
	}
}

// Operator appends a binary operator. Pressing an operator while the
// previous press was also an operator replaces it instead of inserting a
// second one. An operator cannot start an expression.
func (s *Session) Operator(op Op) {
	if s.closed || s.errored {
		return
	}
	s.waiting = false
	if s.expr.isZero() {
		return
	}
	s.note()
	if last, _ := s.expr.last(); last.kind == operatorTok {
		s.expr[len(s.expr)-1].op = op
	} else {
		s.expr = append(s.expr, operator(op))
	}
	s.pending, s.hasOp = op, true
}

// OpenParen opens a group. Directly after a number it inserts the implied
// multiplication first; after a close parenthesis it is ignored.
func (s *Session) OpenParen() {
	if s.closed || s.errored {
		return
	}
	if s.expr.isZero() {
		s.waiting = false
		s.expr = expression{{kind: openTok}}
		return
	}
	last, _ := s.expr.last()
	switch last.kind {
	case operatorTok, openTok:
		s.waiting = false
		s.expr = append(s.expr, token{kind: openTok})
	case numberTok:
		s.waiting = false
		s.expr = append(s.expr, operator(OpMul), token{kind: openTok})
	}
}

// CloseParen closes a group. Allowed only when a group is open and the
// last token can end one.
func (s *Session) CloseParen() {
	if s.closed || s.errored {
		return
	}
	if s.expr.openParens() <= 0 {
		return
	}
	if last, _ := s.expr.last(); last.kind == numberTok || last.kind == closeTok {
		s.waiting = false
		s.expr = append(s.expr, token{kind: closeTok})
	}
}

// Backspace undoes the last input character. On an errored display it
// clears the error and restores the expression for editing; an empty
// expression goes back to "0".
func (s *Session) Backspace() {
	if s.closed {
		return
	}
	if s.errored {
		s.errored = false
		return
	}
	n := len(s.expr)
	if n == 0 {
		return
	}
	if last := &s.expr[n-1]; last.kind == numberTok && len(last.text) > 1 {
		// A sign-toggled operand can shrink to a bare "-"; it stays as
		// the operand in progress.
		last.text = last.text[:len(last.text)-1]
		return
	}
	s.expr = s.expr[:n-1]
}

// Clear resets the input, the pending operator and the operand flag. The
// tape and the memory deliberately survive: history and memory are cleared
// only by their own actions.
func (s *Session) Clear() {
	if s.closed {
		return
	}
	s.expr = nil
	s.hasOp = false
	s.waiting = false
	s.errored = false
}

// ToggleSign negates the last operand in place. Toggling twice restores
// the original expression.
func (s *Session) ToggleSign() {
	if s.closed || s.errored {
		return
	}
	i := s.expr.lastNumber()
	if i < 0 {
		return
	}
	if strings.HasPrefix(s.expr[i].text, "-") {
		s.expr[i].text = s.expr[i].text[1:]
	} else {
		s.expr[i].text = "-" + s.expr[i].text
	}
}

// Percent replaces the last operand with its hundredth.
func (s *Session) Percent() {
	if s.closed || s.errored {
		return
	}
	i := s.expr.lastNumber()
	if i < 0 {
		return
	}
	v, err := strconv.ParseFloat(s.expr[i].text, 64)
	if err != nil {
		return
	}
	s.expr[i].text = s.fmtr.display(v / 100)
}
