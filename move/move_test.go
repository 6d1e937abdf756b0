package move

import (
	"testing"

	"github.com/matryer/is"

	"github.com/nyoung/checkers/checker"
)

func TestFromCoords(t *testing.T) {
	is := is.New(t)
	for _, tc := range []struct {
		in  string
		out Square
	}{
		{"A1", Square{0, 0}},
		{"a1", Square{0, 0}},
		{"C3", Square{2, 2}},
		{"H8", Square{7, 7}},
		{"P16", Square{15, 15}},
	} {
		sq, err := FromCoords(tc.in)
		is.NoErr(err)
		is.Equal(sq, tc.out)
	}

	for _, bad := range []string{"", "11", "AA", "A0", "Z3", "3A", "A1x"} {
		_, err := FromCoords(bad)
		is.True(err != nil)
	}
}

func TestSquareString(t *testing.T) {
	is := is.New(t)
	is.Equal(Square{0, 0}.String(), "A1")
	is.Equal(Square{2, 2}.String(), "C3")
	is.Equal(Square{7, 0}.String(), "H1")

	// notation round-trips
	for col := 0; col < 16; col++ {
		for row := 0; row < 16; row++ {
			sq := Square{col, row}
			got, err := FromCoords(sq.String())
			is.NoErr(err)
			is.Equal(got, sq)
		}
	}
}

func TestSquarePacked(t *testing.T) {
	is := is.New(t)
	for col := 0; col < 16; col++ {
		for row := 0; row < 16; row++ {
			sq := Square{col, row}
			is.Equal(SquareFromPacked(sq.Packed()), sq)
		}
	}
	is.Equal(Square{2, 3}.Packed(), uint8(0b0010_0011))
}

func TestShortDescription(t *testing.T) {
	is := is.New(t)
	p := checker.MustNew(false, checker.Black, 2, 2)
	m := New(p, Square{3, 3}, false)
	is.Equal(m.ShortDescription(), "Black C3-D4")

	victim := checker.MustNew(false, checker.Red, 3, 3)
	j := NewJump(p, Square{4, 4}, victim, false)
	is.Equal(j.ShortDescription(), "Black C3-E5 xD4")

	k := New(checker.MustNew(false, checker.Red, 1, 1), Square{0, 0}, true)
	is.Equal(k.ShortDescription(), "Red B2-A1 (kinged)")
}
