package game

import (
	"github.com/nyoung/checkers/board"
)

// GameRules is a simple struct that encapsulates the settings needed to
// actually play a game: the board dimensions plus the two optional rule
// toggles this engine supports.
type GameRules struct {
	boardWidth  int
	boardHeight int

	// strictTurns enforces alternation: only the color on turn may move.
	strictTurns bool
	// forcedCapture rejects a simple move while any piece of the mover's
	// color has a jump available.
	forcedCapture bool
}

// NewGameRules validates the dimensions and returns a rule set with both
// toggles off, which matches the behavior of free play.
func NewGameRules(width, height int) (*GameRules, error) {
	// Validate eagerly so a bad size fails before a game ever starts.
	if _, err := board.New(width, height); err != nil {
		return nil, err
	}
	return &GameRules{boardWidth: width, boardHeight: height}, nil
}

func (r *GameRules) BoardWidth() int {
	return r.boardWidth
}

func (r *GameRules) BoardHeight() int {
	return r.boardHeight
}

func (r *GameRules) SetStrictTurns(on bool) {
	r.strictTurns = on
}

func (r *GameRules) StrictTurns() bool {
	return r.strictTurns
}

func (r *GameRules) SetForcedCapture(on bool) {
	r.forcedCapture = on
}

func (r *GameRules) ForcedCapture() bool {
	return r.forcedCapture
}
