package main

import (
	"errors"
	"fmt"
	"strings"
)

// State is a step of one front-end run.  Every run starts Idle and ends Done.
type State int

const (
	Idle State = iota
	Compressing
	Decompressing
	Done
)

var stateNames = [...]string{"Idle", "Compressing", "Decompressing", "Done"}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Event is something that moves a run from one State to the next.
type Event int

const (
	CompressRequested Event = iota
	DecompressRequested
	Finished
)

var eventNames = [...]string{"CompressRequested", "DecompressRequested", "Finished"}

func (ev Event) String() string {
	if ev >= 0 && int(ev) < len(eventNames) {
		return eventNames[ev]
	}
	return fmt.Sprintf("Event(%d)", int(ev))
}

var (
	ErrInvalidOption     = errors.New("invalid option")
	ErrInvalidTransition = errors.New("invalid transition")
)

// ParseCommand maps a command character to its Event: "c" compresses, "d"
// decompresses.  Surrounding whitespace is ignored.
func ParseCommand(line string) (Event, error) {
	switch strings.TrimSpace(line) {
	case "c":
		return CompressRequested, nil
	case "d":
		return DecompressRequested, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidOption, strings.TrimSpace(line))
}

// Transition returns the State that follows s when ev happens.  It has no
// side effects.
func Transition(s State, ev Event) (State, error) {
	switch {
	case s == Idle && ev == CompressRequested:
		return Compressing, nil
	case s == Idle && ev == DecompressRequested:
		return Decompressing, nil
	case (s == Compressing || s == Decompressing) && ev == Finished:
		return Done, nil
	}
	return s, fmt.Errorf("%w: %v on %v", ErrInvalidTransition, s, ev)
}
