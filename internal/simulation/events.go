package simulation

import "fmt"

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventEnteredWater EventKind = iota
	EventLeftWater
	EventBoarded
	EventExited
	EventLightOn
	EventLightOff
	EventBatteryDepleted
	EventCollected
	EventWorldToggled
	EventMinigameStarted
	EventNodeMatched
	EventNodeMissed
	EventMinigameSolved
	EventMinigameCancelled
	EventPressureBlackout
)

var eventNames = map[EventKind]string{
	EventEnteredWater:      "entered_water",
	EventLeftWater:         "left_water",
	EventBoarded:           "boarded",
	EventExited:            "exited",
	EventLightOn:           "light_on",
	EventLightOff:          "light_off",
	EventBatteryDepleted:   "battery_depleted",
	EventCollected:         "collected",
	EventWorldToggled:      "world_toggled",
	EventMinigameStarted:   "minigame_started",
	EventNodeMatched:       "node_matched",
	EventNodeMissed:        "node_missed",
	EventMinigameSolved:    "minigame_solved",
	EventMinigameCancelled: "minigame_cancelled",
	EventPressureBlackout:  "pressure_blackout",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// Event is emitted by Step for the presentation layer (log, audio, HUD).
// From and To are only meaningful for mode transitions.
type Event struct {
	Tick  uint64
	Kind  EventKind
	From  Mode
	To    Mode
	ID    string
	Value int
}
