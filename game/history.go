package game

import (
	"strings"

	"github.com/lithammer/shortuuid"

	"github.com/nyoung/checkers/move"
)

// GameHistory records the moves applied to one game, in order. It is
// advisory: the engine never replays from it.
type GameHistory struct {
	uid   string
	moves []*move.Move
}

func newHistory() *GameHistory {
	return &GameHistory{uid: shortuuid.New()}
}

// UID is a unique identifier for the game.
func (h *GameHistory) UID() string {
	return h.uid
}

func (h *GameHistory) add(m *move.Move) {
	h.moves = append(h.moves, m)
}

// Moves returns the applied moves, oldest first.
func (h *GameHistory) Moves() []*move.Move {
	return h.moves
}

// NumMoves returns the number of applied moves.
func (h *GameHistory) NumMoves() int {
	return len(h.moves)
}

// DisplayText renders the history one move per line.
func (h *GameHistory) DisplayText() string {
	var sb strings.Builder
	for i, m := range h.moves {
		sb.WriteString(strings.TrimSpace(m.ShortDescription()))
		if i != len(h.moves)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
