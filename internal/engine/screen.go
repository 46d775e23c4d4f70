package engine

import "errors"

// Screen is the top-level state of a run.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenTransition
	ScreenPlay
	ScreenGameOver
)

var screenNames = [...]string{
	ScreenMenu:       "MENU",
	ScreenTransition: "TRANSITION",
	ScreenPlay:       "PLAY",
	ScreenGameOver:   "GAMEOVER",
}

// String returns the screen's display name.
func (s Screen) String() string {
	if s < 0 || int(s) >= len(screenNames) {
		return "UNKNOWN"
	}
	return screenNames[s]
}

// ErrIllegalTransition is returned when a caller asks for a screen change
// the state machine does not allow from the current screen.
var ErrIllegalTransition = errors.New("engine: illegal screen transition")

// Scenery is the backdrop chosen for a casual round.
type Scenery int

const (
	SceneryMosque Scenery = iota
	SceneryNightMarket
	SceneryStreet
	SceneryVillage
	sceneryCount
)

var sceneryNames = [...]string{
	SceneryMosque:      "mosque",
	SceneryNightMarket: "night market",
	SceneryStreet:      "street",
	SceneryVillage:     "village",
}

// String returns the scenery's name.
func (s Scenery) String() string {
	if s < 0 || s >= sceneryCount {
		return "unknown"
	}
	return sceneryNames[s]
}
