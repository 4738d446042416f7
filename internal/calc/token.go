package calc

import "strings"

const (
	numberTok tokenKind = iota
	operatorTok
	openTok
	closeTok
)

type tokenKind int

// token is one element of the expression under construction. Number tokens
// carry the text as typed, including a possible leading '-' from a sign
// toggle and a possible trailing '.'.
type token struct {
	kind tokenKind
	text string
	op   Op
}

func number(text string) token {
	return token{kind: numberTok, text: text}
}

func operator(op Op) token {
	return token{kind: operatorTok, op: op}
}

func (t token) String() string {
	switch t.kind {
	case numberTok:
		return t.text
	case operatorTok:
		return t.op.String()
	case openTok:
		return "("
	case closeTok:
		return ")"
	default:
		panic("unknown token")
	}
}

// expression is the live arithmetic input as a sequence of typed tokens.
// The empty expression renders as "0".
type expression []token

func (e expression) String() string {
	if len(e) == 0 {
		return "0"
	}
	var sb strings.Builder
	for _, t := range e {
		sb.WriteString(t.String())
	}
	return sb.String()
}

// isZero reports whether the expression is still the untouched "0" display.
func (e expression) isZero() bool {
	return len(e) == 0 || (len(e) == 1 && e[0].kind == numberTok && e[0].text == "0")
}

func (e expression) last() (token, bool) {
	if len(e) == 0 {
		return token{}, false
	}
	return e[len(e)-1], true
}

// openParens counts parentheses opened but not yet closed.
func (e expression) openParens() int {
	n := 0
	for _, t := range e {
		switch t.kind {
		case openTok:
			n++
		case closeTok:
			n--
		}
	}
	return n
}

// hasOperator reports whether the expression contains a binary operator.
func (e expression) hasOperator() bool {
	for _, t := range e {
		if t.kind == operatorTok {
			return true
		}
	}
	return false
}

// appendNumberText concatenates formatted number text onto the end of a
// non-empty expression, re-lexing character by character so the tokens stay
// in agreement with the displayed string: a leading '-' becomes a
// subtraction and a decimal point that would be an operand's second one
// starts a new operand.
func (e expression) appendNumberText(text string) expression {
	for i := 0; i < len(text); i++ {
		c := text[i]
		last := &e[len(e)-1]
		switch {
		case c == '-' && i == 0:
			e = append(e, operator(OpSub))
		case c == '.':
			if last.kind == numberTok && !strings.Contains(last.text, ".") {
				last.text += "."
			} else {
				e = append(e, number("."))
			}
		default:
			if last.kind == numberTok {
				last.text += string(c)
			} else {
				e = append(e, number(string(c)))
			}
		}
	}
	return e
}

// lastNumber returns the index of the last number token, or -1.
func (e expression) lastNumber() int {
	for i := len(e) - 1; i >= 0; i-- {
		if e[i].kind == numberTok {
			return i
		}
	}
	return -1
}
