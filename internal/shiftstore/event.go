package shiftstore

import (
	"encoding/json"
	"fmt"
)

// Event is a change to the shift log. The store emits events both when
// replaying the log and after accepting new writes.
type Event interface {
	evType() string
}

type ShiftAdded struct {
	ID    ID
	Shift Shift
}

type ShiftRemoved struct {
	ID ID
}

type ShiftChanged struct {
	ID    ID
	Shift Shift
}

// IOError reports a store failure. It is delivered like any other event and
// is never written to the log.
type IOError struct {
	Err error
}

func (*ShiftAdded) evType() string   { return "add" }
func (*ShiftRemoved) evType() string { return "remove" }
func (*ShiftChanged) evType() string { return "change" }
func (*IOError) evType() string      { return "ioerror" }

// envelope wraps an event with its type tag on disk.
type envelope struct {
	Type  string          `json:"type"`
	Event json.RawMessage `json:"event"`
}

func writeEvent(enc *json.Encoder, ev Event) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return enc.Encode(envelope{Type: ev.evType(), Event: body})
}

func readEvent(dec *json.Decoder) (Event, error) {
	var env envelope
	if err := dec.Decode(&env); err != nil {
		return nil, err
	}
	ev, err := makeEvent(env.Type)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(env.Event, ev); err != nil {
		return nil, err
	}
	return ev, nil
}

func makeEvent(evtype string) (Event, error) {
	switch evtype {
	case "add":
		return new(ShiftAdded), nil
	case "remove":
		return new(ShiftRemoved), nil
	case "change":
		return new(ShiftChanged), nil
	default:
		return nil, fmt.Errorf("unknown event type %q", evtype)
	}
}
