package calc

// memory is the calculator's accumulator. It is independent of the
// expression buffer: it survives Clear and evaluation errors, and changes
// only through its own add, subtract and clear actions.
type memory struct {
	value float64
	fetch func() float64
}

func (m *memory) add() {
	m.value += m.fetch()
}

func (m *memory) subtract() {
	m.value -= m.fetch()
}

func (m *memory) clear() {
	m.value = 0
}
