package shiftstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect reads events until the store goes quiet.
func collect(t *testing.T, s *Store, n int) []Event {
	t.Helper()
	var evs []Event
	for len(evs) < n {
		select {
		case ev := <-s.Events():
			evs = append(evs, ev)
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out after %d of %d events", len(evs), n)
		}
	}
	return evs
}

func TestStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()

	s := NewStore(dir, nil)
	s.AddShift(Shift{Date: "2026-08-29", Earnings: 184.50, Fuel: 31.20, Miles: 142.7})
	s.AddShift(Shift{Date: "2026-08-30", Earnings: 92.00, Fuel: 12.80, Miles: 61.3})
	evs := collect(t, s, 2)
	added := evs[0].(*ShiftAdded)
	require.NotEmpty(t, added.ID)
	s.RemoveShift(added.ID)
	collect(t, s, 1)
	s.Close()

	// Reopen and replay.
	s = NewStore(dir, nil)
	defer s.Close()
	evs = collect(t, s, 3)

	add1 := evs[0].(*ShiftAdded)
	assert.Equal(t, added.ID, add1.ID)
	assert.Equal(t, 184.50, add1.Shift.Earnings)
	add2 := evs[1].(*ShiftAdded)
	assert.Equal(t, "2026-08-30", add2.Shift.Date)
	removed := evs[2].(*ShiftRemoved)
	assert.Equal(t, added.ID, removed.ID)
}

func TestStoreUpdate(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir, nil)
	defer s.Close()

	s.AddShift(Shift{Date: "2026-08-30"})
	added := collect(t, s, 1)[0].(*ShiftAdded)

	updated := added.Shift
	updated.Earnings = 120
	updated.Fuel = 20
	s.UpdateShift(added.ID, updated)

	changed := collect(t, s, 1)[0].(*ShiftChanged)
	assert.Equal(t, added.ID, changed.ID)
	assert.Equal(t, 100.0, changed.Shift.Profit())
}
