package calc

import (
	"errors"
	"math"
	"strconv"
)

var (
	errMalformed = errors.New("malformed expression")
	errNonFinite = errors.New("result is not finite")
)

// evaluate computes the value of a complete token sequence using the usual
// precedence rules: * and / bind tighter than + and -, equal operators
// associate left to right, parentheses group, and a minus at the start of a
// group negates it.
func evaluate(tokens []token) (float64, error) {
	p := parser{tokens: tokens}
	v, err := p.sum()
	if err != nil {
		return 0, err
	}
	if p.pos != len(p.tokens) {
		return 0, errMalformed
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNonFinite
	}
	return v, nil
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.tokens) {
		return token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) next() (token, bool) {
	t, ok := p.peek()
	if ok {
		p.pos++
	}
	return t, ok
}

// sum handles + and -, the loosest binding level.
func (p *parser) sum() (float64, error) {
	v, err := p.product()
	if err != nil {
		return 0, err
	}
	for {
		t, ok := p.peek()
		if !ok || t.kind != operatorTok || (t.op != OpAdd && t.op != OpSub) {
			return v, nil
		}
		p.pos++
		rhs, err := p.product()
		if err != nil {
			return 0, err
		}
		v = t.op.apply(v, rhs)
	}
}

// product handles * and /.
func (p *parser) product() (float64, error) {
	v, err := p.unary()
	if err != nil {
		return 0, err
	}
	for {
		t, ok := p.peek()
		if !ok || t.kind != operatorTok || (t.op != OpMul && t.op != OpDiv) {
			return v, nil
		}
		p.pos++
		rhs, err := p.unary()
		if err != nil {
			return 0, err
		}
		v = t.op.apply(v, rhs)
	}
}

// unary handles minus signs in front of a factor.
func (p *parser) unary() (float64, error) {
	if t, ok := p.peek(); ok && t.kind == operatorTok && t.op == OpSub {
		p.pos++
		v, err := p.unary()
		return -v, err
	}
	return p.factor()
}

// factor handles numbers and parenthesized groups.
func (p *parser) factor() (float64, error) {
	t, ok := p.next()
	if !ok {
		return 0, errMalformed
	}
	switch t.kind {
	case numberTok:
		v, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return 0, errMalformed
		}
		return v, nil
	case openTok:
		v, err := p.sum()
		if err != nil {
			return 0, err
		}
		if t, ok := p.next(); !ok || t.kind != closeTok {
			return 0, errMalformed
		}
		return v, nil
	default:
		return 0, errMalformed
	}
}
