package main

import (
	"fmt"
	"time"

	"gioui.org/widget"

	"github.com/driverpad/driverpad/internal/shiftstore"
)

const (
	fieldEarnings shiftField = iota
	fieldFuel
	fieldMiles
	numFields
)

// shiftField identifies one editable numeric column of a shift row.
type shiftField int

func (f shiftField) label() string {
	switch f {
	case fieldEarnings:
		return "earnings"
	case fieldFuel:
		return "fuel"
	case fieldMiles:
		return "miles"
	default:
		panic("unknown field")
	}
}

// places is the write-back precision: cents for money, tenths for mileage.
func (f shiftField) places() int {
	if f == fieldMiles {
		return 1
	}
	return 2
}

func (f shiftField) get(s shiftstore.Shift) float64 {
	switch f {
	case fieldEarnings:
		return s.Earnings
	case fieldFuel:
		return s.Fuel
	case fieldMiles:
		return s.Miles
	default:
		panic("unknown field")
	}
}

func (f shiftField) set(s *shiftstore.Shift, v float64) {
	switch f {
	case fieldEarnings:
		s.Earnings = v
	case fieldFuel:
		s.Fuel = v
	case fieldMiles:
		s.Miles = v
	default:
		panic("unknown field")
	}
}

// format renders the field value for its row chip.
func (f shiftField) format(s shiftstore.Shift) string {
	if f == fieldMiles {
		return fmt.Sprintf("%.1f mi", s.Miles)
	}
	return fmt.Sprintf("$%.2f", f.get(s))
}

type shiftRow struct {
	id    shiftstore.ID
	shift shiftstore.Shift

	// UI state.
	fields [numFields]widget.Clickable
	remove widget.Clickable
}

type shiftModel struct {
	store     *shiftstore.Store
	rows      []*shiftRow
	index     map[shiftstore.ID]*shiftRow
	lastError error
}

func newShiftModel(store *shiftstore.Store) *shiftModel {
	return &shiftModel{
		store: store,
		index: make(map[shiftstore.ID]*shiftRow),
	}
}

// handleStoreEvent applies one store event to the UI model.
func (m *shiftModel) handleStoreEvent(e shiftstore.Event) {
	switch e := e.(type) {
	case *shiftstore.ShiftAdded:
		row := &shiftRow{id: e.ID, shift: e.Shift}
		m.rows = append(m.rows, row)
		m.index[e.ID] = row

	case *shiftstore.ShiftRemoved:
		row := m.index[e.ID]
		if row == nil {
			return
		}
		delete(m.index, e.ID)
		for i, r := range m.rows {
			if r == row {
				m.rows = append(m.rows[:i], m.rows[i+1:]...)
				break
			}
		}

	case *shiftstore.ShiftChanged:
		if row := m.index[e.ID]; row != nil {
			row.shift = e.Shift
		}

	case *shiftstore.IOError:
		m.lastError = e.Err
	}
}

// totals sums all rows for the status bar.
func (m *shiftModel) totals() (profit, miles float64) {
	for _, r := range m.rows {
		profit += r.shift.Profit()
		miles += r.shift.Miles
	}
	return profit, miles
}

func (m *shiftModel) addToday() {
	m.store.AddShift(shiftstore.Shift{Date: time.Now().Format("2006-01-02")})
}

func (m *shiftModel) remove(row *shiftRow) {
	m.store.RemoveShift(row.id)
}

// setField writes one edited field back to the store.
func (m *shiftModel) setField(row *shiftRow, f shiftField, v float64) {
	shift := row.shift
	f.set(&shift, v)
	m.store.UpdateShift(row.id, shift)
}
