// Package checker contains the packed piece representation. A Checker is a
// 10-bit value; everything the rest of the engine needs to know about a piece
// (king status, color, square) is decoded from it with the accessors below.
package checker

import (
	"errors"
	"fmt"
)

// Checker is a 10-bit representation of a single piece.
type Checker uint16

// Schema:
// 1 bit for king status (1 = king)
// 1 bit for color (0 = black, 1 = red)
// 4 bits for column
// 4 bits for row
//
//  9    8    7    6    5    4    3    2    1    0
//  K    C    X    X    X    X    Y    Y    Y    Y

const (
	kingBitMask  Checker = 1 << 9
	colorBitMask Checker = 1 << 8
	colShift             = 4
	coordBitMask Checker = 0xF

	// MaxCoord is the largest column or row the encoding can hold.
	MaxCoord = 15
)

// ErrInvalidEncoding is returned when a piece is constructed with a column
// or row that does not fit in four bits.
var ErrInvalidEncoding = errors.New("checker: coordinate outside the encodable range")

// Color is the color of a piece. Black moves first and advances toward
// higher rows; Red advances toward row zero.
type Color uint8

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "Red"
	}
	return "Black"
}

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == Red {
		return Black
	}
	return Red
}

// New creates a piece. col and row must be within [0, MaxCoord].
func New(king bool, color Color, col, row int) (Checker, error) {
	if col < 0 || col > MaxCoord || row < 0 || row > MaxCoord {
		return 0, fmt.Errorf("%w: (%d, %d)", ErrInvalidEncoding, col, row)
	}
	var p Checker
	if king {
		p |= kingBitMask
	}
	if color == Red {
		p |= colorBitMask
	}
	p |= Checker(col) << colShift
	p |= Checker(row)
	return p, nil
}

// MustNew is like New but panics on a bad coordinate. It is meant for
// board generation and tests, where the coordinates are known to fit.
func MustNew(king bool, color Color, col, row int) Checker {
	p, err := New(king, color, col, row)
	if err != nil {
		panic(err)
	}
	return p
}

// IsKing returns whether the king bit is set.
func (p Checker) IsKing() bool {
	return p&kingBitMask != 0
}

// Color decodes the color bit.
func (p Checker) Color() Color {
	if p&colorBitMask != 0 {
		return Red
	}
	return Black
}

// Col decodes the column field.
func (p Checker) Col() int {
	return int((p >> colShift) & coordBitMask)
}

// Row decodes the row field.
func (p Checker) Row() int {
	return int(p & coordBitMask)
}

// WithPos returns a copy of the piece relocated to (col, row), preserving
// the king and color bits.
func (p Checker) WithPos(col, row int) (Checker, error) {
	if col < 0 || col > MaxCoord || row < 0 || row > MaxCoord {
		return 0, fmt.Errorf("%w: (%d, %d)", ErrInvalidEncoding, col, row)
	}
	return (p &^ (coordBitMask<<colShift | coordBitMask)) |
		Checker(col)<<colShift | Checker(row), nil
}

// Promoted returns the piece with its king bit set.
func (p Checker) Promoted() Checker {
	return p | kingBitMask
}

// String is for debugging.
func (p Checker) String() string {
	return fmt.Sprintf("<king: %v color: %v col: %d row: %d>",
		p.IsKing(), p.Color(), p.Col(), p.Row())
}
