package core

import "fmt"

// EventKind identifies something that happened during a simulation step.
type EventKind int

const (
	EventStarCollected EventKind = iota + 1
	EventLifeLost
	EventLevelUp
	EventGameOver
)

// String returns a human-readable event name.
func (k EventKind) String() string {
	switch k {
	case EventStarCollected:
		return "star_collected"
	case EventLifeLost:
		return "life_lost"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is a notification emitted by a step. Events are informational only.
type Event struct {
	Kind  EventKind
	Score int // Score after the event
	Lives int // Lives after the event
	Level int // Level after the event
}
