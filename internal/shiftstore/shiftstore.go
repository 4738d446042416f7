// Package shiftstore persists driving shift records through an append-only
// JSON event log. The log is replayed on open; the app observes the store
// through its event channel and never reads the file directly.
package shiftstore

import (
	"container/list"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ID identifies a shift record.
type ID string

func newID() ID {
	return ID(uuid.NewString())
}

// Shift is one recorded driving shift.
type Shift struct {
	Date     string  `json:"date"` // YYYY-MM-DD
	Earnings float64 `json:"earnings"`
	Fuel     float64 `json:"fuel"`
	Miles    float64 `json:"miles"`
	Note     string  `json:"note,omitempty"`
}

// Profit is earnings minus fuel cost.
func (s Shift) Profit() float64 {
	return s.Earnings - s.Fuel
}

type Store struct {
	dataDir  string
	dataFile *os.File
	reader   *json.Decoder
	writer   *json.Encoder
	log      *zap.Logger

	eventsOut  chan Event
	eventQueue list.List

	eventsIn chan Event
	flushCh  chan struct{}
	quitCh   chan struct{}
	wg       sync.WaitGroup
}

// NewStore opens the store rooted at datadir and starts its event loop.
func NewStore(datadir string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{
		dataDir:   datadir,
		log:       log,
		eventsOut: make(chan Event),
		eventsIn:  make(chan Event, 256),
		flushCh:   make(chan struct{}, 1),
		quitCh:    make(chan struct{}),
	}
	s.wg.Add(1)
	go s.run()
	return s
}

// Close shuts the store down and waits for pending writes.
func (s *Store) Close() {
	close(s.quitCh)
	s.wg.Wait()
}

// Events returns the event channel. The app reads this channel and applies
// the events to its model.
func (s *Store) Events() <-chan Event {
	return s.eventsOut
}

// AddShift tells the store to record a new shift.
func (s *Store) AddShift(shift Shift) {
	s.send(&ShiftAdded{ID: newID(), Shift: shift})
}

// RemoveShift tells the store to delete a shift.
func (s *Store) RemoveShift(id ID) {
	s.send(&ShiftRemoved{ID: id})
}

// UpdateShift tells the store to change a shift.
func (s *Store) UpdateShift(id ID, shift Shift) {
	s.send(&ShiftChanged{ID: id, Shift: shift})
}

// Persist tells the store to flush the log to disk.
func (s *Store) Persist() {
	select {
	case s.flushCh <- struct{}{}:
	default:
	}
}

// send delivers an event from the app to the store loop.
func (s *Store) send(ev Event) {
	select {
	case s.eventsIn <- ev:
	case <-s.quitCh:
	}
}

func (s *Store) run() {
	defer s.wg.Done()

	if err := s.openLog(); err != nil {
		s.queue(&IOError{Err: err})
	}

	for {
		outCh, out := s.front()
		select {
		case outCh <- out:
			s.eventQueue.Remove(s.eventQueue.Front())

		case ev := <-s.eventsIn:
			if err := s.append(ev); err != nil {
				s.log.Warn("event write failed", zap.Error(err))
				s.queue(&IOError{Err: err})
			} else {
				s.queue(ev)
			}

		case <-s.flushCh:
			if s.dataFile != nil {
				if err := s.dataFile.Sync(); err != nil {
					s.log.Warn("log flush failed", zap.Error(err))
					s.queue(&IOError{Err: err})
				}
			}

		case <-s.quitCh:
			if s.dataFile != nil {
				if err := s.dataFile.Close(); err != nil {
					s.log.Warn("log close failed", zap.Error(err))
				}
			}
			return
		}
	}
}

// queue puts ev on the outgoing queue. Delivery happens from the loop so a
// slow reader never blocks writes.
func (s *Store) queue(ev Event) {
	s.eventQueue.PushBack(ev)
}

// front returns the delivery channel and next outgoing event, or a nil
// channel when the queue is empty.
func (s *Store) front() (chan Event, Event) {
	first := s.eventQueue.Front()
	if first == nil {
		return nil, nil
	}
	return s.eventsOut, first.Value.(Event)
}

func (s *Store) append(ev Event) error {
	if err := s.openLog(); err != nil {
		return err
	}
	return writeEvent(s.writer, ev)
}

// openLog opens the log file on first use and replays its contents.
func (s *Store) openLog() error {
	if s.dataFile != nil {
		return nil
	}
	if err := os.MkdirAll(s.dataDir, 0700); err != nil {
		return err
	}
	name := filepath.Join(s.dataDir, "shifts.json")
	f, err := os.OpenFile(name, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return err
	}
	s.dataFile = f
	s.reader = json.NewDecoder(f)
	s.writer = json.NewEncoder(f)
	n := s.replay()
	s.log.Info("shift log opened", zap.String("file", name), zap.Int("events", n))
	return nil
}

// replay queues all events recorded in the log.
func (s *Store) replay() int {
	n := 0
	for {
		ev, err := readEvent(s.reader)
		if err == io.EOF {
			break
		}
		if err != nil {
			s.log.Warn("log decode failed, ignoring rest", zap.Error(err))
			break
		}
		s.queue(ev)
		n++
	}
	return n
}
