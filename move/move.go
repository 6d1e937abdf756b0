// Package move holds the move value types: a Square (destination coordinate
// pair with the packed byte form and algebraic notation) and a Move, the
// fully resolved result of validation.
package move

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/nyoung/checkers/checker"
)

// MoveKind distinguishes a simple diagonal step from a capturing jump.
type MoveKind uint8

const (
	SimpleMove MoveKind = iota
	JumpMove
)

func (k MoveKind) String() string {
	if k == JumpMove {
		return "Jump"
	}
	return "Simple"
}

// Square is a coordinate pair on the board.
type Square struct {
	Col int
	Row int
}

// Packed returns the XXXXYYYY byte form of the square.
func (s Square) Packed() uint8 {
	return uint8(s.Col<<4 | s.Row)
}

// SquareFromPacked decodes the XXXXYYYY byte form.
func SquareFromPacked(v uint8) Square {
	return Square{Col: int(v >> 4), Row: int(v & 0xF)}
}

// String renders the square in algebraic notation: column letter, then
// 1-based row (col 2, row 2 is "C3").
func (s Square) String() string {
	return fmt.Sprintf("%c%d", 'A'+s.Col, s.Row+1)
}

var reCoords = regexp.MustCompile(`^(?P<col>[A-Pa-p])(?P<row>[0-9]+)$`)

// ErrBadCoords is returned for a string that is not algebraic notation.
var ErrBadCoords = errors.New("move: badly formatted coordinates")

// FromCoords parses algebraic notation into a Square. It does not know
// board dimensions; the caller bounds-checks against its board.
func FromCoords(coords string) (Square, error) {
	m := reCoords.FindStringSubmatch(coords)
	if m == nil {
		return Square{}, fmt.Errorf("%w: %q", ErrBadCoords, coords)
	}
	col := int(m[1][0])
	if col >= 'a' {
		col -= 'a'
	} else {
		col -= 'A'
	}
	row, err := strconv.Atoi(m[2])
	if err != nil || row < 1 {
		return Square{}, fmt.Errorf("%w: %q", ErrBadCoords, coords)
	}
	return Square{Col: col, Row: row - 1}, nil
}

// Move is a validated move: the piece being moved, where it goes, and what
// happens along the way. Moves are produced by the engine's validator and
// are not constructed by hand.
type Move struct {
	piece    checker.Checker
	dest     Square
	kind     MoveKind
	captured checker.Checker
	promotes bool
}

// New builds a simple move.
func New(piece checker.Checker, dest Square, promotes bool) *Move {
	return &Move{piece: piece, dest: dest, kind: SimpleMove, promotes: promotes}
}

// NewJump builds a capturing move.
func NewJump(piece checker.Checker, dest Square, captured checker.Checker, promotes bool) *Move {
	return &Move{piece: piece, dest: dest, kind: JumpMove, captured: captured, promotes: promotes}
}

func (m *Move) Piece() checker.Checker { return m.piece }

func (m *Move) Dest() Square { return m.dest }

func (m *Move) Kind() MoveKind { return m.kind }

// Captured returns the jumped piece; the second value is false for a
// simple move.
func (m *Move) Captured() (checker.Checker, bool) {
	return m.captured, m.kind == JumpMove
}

// Promotes reports whether applying the move kings the piece.
func (m *Move) Promotes() bool { return m.promotes }

// From returns the square the piece moves from.
func (m *Move) From() Square {
	return Square{Col: m.piece.Col(), Row: m.piece.Row()}
}

// ShortDescription provides a short description, useful for logging or
// history display.
func (m *Move) ShortDescription() string {
	desc := fmt.Sprintf("%v %v-%v", m.piece.Color(), m.From(), m.dest)
	if m.kind == JumpMove {
		desc += fmt.Sprintf(" x%v", Square{Col: m.captured.Col(), Row: m.captured.Row()})
	}
	if m.promotes {
		desc += " (kinged)"
	}
	return desc
}

func (m *Move) String() string {
	return fmt.Sprintf("<move %s kind: %v>", m.ShortDescription(), m.kind)
}
