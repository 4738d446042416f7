package calc

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

// Op is a binary arithmetic operator.
type Op int

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		panic("unknown op")
	}
}

// apply computes the operation.
func (op Op) apply(x, y float64) float64 {
	switch op {
	case OpAdd:
		return x + y
	case OpSub:
		return x - y
	case OpMul:
		return x * y
	case OpDiv:
		return x / y
	default:
		panic("unknown op")
	}
}
