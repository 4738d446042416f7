package calc

// Step is one completed calculation on the tape.
type Step struct {
	ID     int
	Expr   string
	Result float64
}

// Tape is the append-only history of completed calculations within a
// session. Steps are kept in chronological order and are never changed or
// removed; clearing the input does not touch the tape.
type Tape struct {
	steps []Step
}

func (t *Tape) append(expr string, result float64) {
	t.steps = append(t.steps, Step{ID: len(t.steps) + 1, Expr: expr, Result: result})
}

// Len returns the number of steps on the tape.
func (t *Tape) Len() int {
	return len(t.steps)
}

// Steps returns all steps, oldest first. The returned slice is shared with
// the tape and must not be modified.
func (t *Tape) Steps() []Step {
	return t.steps
}
