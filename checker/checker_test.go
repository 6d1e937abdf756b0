package checker

import (
	"testing"

	"github.com/matryer/is"
)

func TestRoundTrip(t *testing.T) {
	is := is.New(t)
	for _, king := range []bool{false, true} {
		for _, color := range []Color{Black, Red} {
			for col := 0; col <= MaxCoord; col++ {
				for row := 0; row <= MaxCoord; row++ {
					p, err := New(king, color, col, row)
					is.NoErr(err)
					is.Equal(p.IsKing(), king)
					is.Equal(p.Color(), color)
					is.Equal(p.Col(), col)
					is.Equal(p.Row(), row)
				}
			}
		}
	}
}

func TestNewOutOfRange(t *testing.T) {
	is := is.New(t)
	for _, tc := range [][2]int{{-1, 0}, {0, -1}, {16, 0}, {0, 16}, {100, 100}} {
		_, err := New(false, Black, tc[0], tc[1])
		is.True(err != nil)
	}
}

func TestWithPos(t *testing.T) {
	is := is.New(t)
	p := MustNew(true, Red, 3, 5)
	q, err := p.WithPos(7, 2)
	is.NoErr(err)
	is.Equal(q.Col(), 7)
	is.Equal(q.Row(), 2)
	is.True(q.IsKing())
	is.Equal(q.Color(), Red)
	// original is untouched
	is.Equal(p.Col(), 3)
	is.Equal(p.Row(), 5)

	_, err = p.WithPos(16, 0)
	is.True(err != nil)
}

func TestPromoted(t *testing.T) {
	is := is.New(t)
	p := MustNew(false, Black, 1, 1)
	is.True(!p.IsKing())
	k := p.Promoted()
	is.True(k.IsKing())
	is.Equal(k.Color(), Black)
	is.Equal(k.Col(), 1)
	is.Equal(k.Row(), 1)
	// promoting a king is a no-op
	is.Equal(k.Promoted(), k)
}

func TestColor(t *testing.T) {
	is := is.New(t)
	is.Equal(Black.String(), "Black")
	is.Equal(Red.String(), "Red")
	is.Equal(Black.Other(), Red)
	is.Equal(Red.Other(), Black)
}
