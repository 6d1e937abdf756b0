// Package board implements the checker board: a size-configurable grid that
// owns the piece collection and maintains its spatial invariants. All queries
// are side-effect free; the only mutations are AddPiece, RemovePiece and
// Generate.
package board

import (
	"errors"
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/nyoung/checkers/checker"
)

// Standard size is 8x8. The encoding supports up to 16x16 if you really want
// a strange game of checkers; the minimum playable size is 3x3.
const (
	MinDim = 3
	MaxDim = 16

	DefaultWidth  = 8
	DefaultHeight = 8
)

var (
	// ErrInvalidSize is returned for a width or height outside [MinDim, MaxDim].
	ErrInvalidSize = errors.New("board: width and height must be within [3, 16]")
	// ErrOutOfBounds is returned when a piece's square falls outside the board.
	ErrOutOfBounds = errors.New("board: square is off the board")
	// ErrSquareOccupied is returned when a piece is added to a taken square.
	ErrSquareOccupied = errors.New("board: square is already occupied")
	// ErrPieceNotFound is returned when removing from an empty square.
	ErrPieceNotFound = errors.New("board: no piece on that square")
)

// CheckerBoard is the main board structure. Pieces are keyed by square, so
// the no-two-pieces-per-square invariant holds by construction.
type CheckerBoard struct {
	width  int
	height int
	pieces map[int]checker.Checker
}

func squareKey(col, row int) int {
	return col<<4 | row
}

// New creates an empty board of the given dimensions.
func New(width, height int) (*CheckerBoard, error) {
	if width < MinDim || width > MaxDim || height < MinDim || height > MaxDim {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	return &CheckerBoard{
		width:  width,
		height: height,
		pieces: make(map[int]checker.Checker),
	}, nil
}

// Width is the number of columns.
func (b *CheckerBoard) Width() int {
	return b.width
}

// Height is the number of rows.
func (b *CheckerBoard) Height() int {
	return b.height
}

// RedCheck returns whether (row, col) is a red square. Red squares are the
// unplayable ones; pieces live on the even-parity squares, the original
// layout convention of this engine.
func RedCheck(row, col int) bool {
	return (row+col)%2 != 0
}

// OnBoard returns whether (col, row) lies within the board.
func (b *CheckerBoard) OnBoard(col, row int) bool {
	return col >= 0 && col < b.width && row >= 0 && row < b.height
}

// Generate resets the board to the starting arrangement: each color fills
// the playable squares of the rows nearest its own edge. The number of rows
// per side scales with the board height; on 8x8 it is the traditional three.
func (b *CheckerBoard) Generate() {
	b.pieces = make(map[int]checker.Checker)

	rowsToGenerate := b.height / 2
	if b.height%2 == 0 {
		rowsToGenerate = (b.height - 1) / 2
	}

	for row := 0; row < rowsToGenerate; row++ {
		for col := 0; col < b.width; col++ {
			// Black fills the top of the board, Red the bottom. Neither
			// color ever sits on a red square.
			if !RedCheck(row, col) {
				b.pieces[squareKey(col, row)] = checker.MustNew(false, checker.Black, col, row)
			}
			if !RedCheck(b.height-row-1, col) {
				b.pieces[squareKey(col, b.height-row-1)] = checker.MustNew(false, checker.Red, col, b.height-row-1)
			}
		}
	}
}

// AddPiece inserts a piece on its encoded square.
func (b *CheckerBoard) AddPiece(p checker.Checker) error {
	col, row := p.Col(), p.Row()
	if !b.OnBoard(col, row) {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, col, row)
	}
	if _, ok := b.pieces[squareKey(col, row)]; ok {
		return fmt.Errorf("%w: (%d, %d)", ErrSquareOccupied, col, row)
	}
	b.pieces[squareKey(col, row)] = p
	return nil
}

// RemovePiece deletes the piece on p's square.
func (b *CheckerBoard) RemovePiece(p checker.Checker) error {
	key := squareKey(p.Col(), p.Row())
	if _, ok := b.pieces[key]; !ok {
		return fmt.Errorf("%w: (%d, %d)", ErrPieceNotFound, p.Col(), p.Row())
	}
	delete(b.pieces, key)
	return nil
}

// PieceAt returns the piece on (col, row), if any.
func (b *CheckerBoard) PieceAt(col, row int) (checker.Checker, bool) {
	p, ok := b.pieces[squareKey(col, row)]
	return p, ok
}

// NumPieces returns the number of pieces on the board.
func (b *CheckerBoard) NumPieces() int {
	return len(b.pieces)
}

// Pieces returns all pieces in a deterministic (square) order.
func (b *CheckerBoard) Pieces() []checker.Checker {
	ps := lo.Values(b.pieces)
	sort.Slice(ps, func(i, j int) bool {
		return squareKey(ps[i].Col(), ps[i].Row()) < squareKey(ps[j].Col(), ps[j].Row())
	})
	return ps
}

// PiecesOf returns the pieces of one color, in square order.
func (b *CheckerBoard) PiecesOf(color checker.Color) []checker.Checker {
	return lo.Filter(b.Pieces(), func(p checker.Checker, _ int) bool {
		return p.Color() == color
	})
}

// Copy returns a deep copy of the board.
func (b *CheckerBoard) Copy() *CheckerBoard {
	pieces := make(map[int]checker.Checker, len(b.pieces))
	for k, v := range b.pieces {
		pieces[k] = v
	}
	return &CheckerBoard{width: b.width, height: b.height, pieces: pieces}
}
