package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/nyoung/checkers/config"
)

func testController(t *testing.T) (*ShellController, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	sc := &ShellController{
		out: buf,
		cfg: &config.Settings{BoardWidth: 8, BoardHeight: 8},
	}
	return sc, buf
}

func TestNewAndShow(t *testing.T) {
	is := is.New(t)
	sc, buf := testController(t)

	is.NoErr(sc.executeLine("new"))
	is.True(strings.Contains(buf.String(), "B"))
	is.True(strings.Contains(buf.String(), "R"))

	buf.Reset()
	is.NoErr(sc.executeLine("show"))
	is.True(strings.Contains(buf.String(), "+"))
}

func TestNewCustomSize(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	is.NoErr(sc.executeLine("new 3 3"))
	is.Equal(sc.game.Board().Width(), 3)

	// the engine's size validation surfaces to the user
	err := sc.executeLine("new 2 2")
	is.True(err != nil)
}

func TestMoveCommand(t *testing.T) {
	is := is.New(t)
	sc, buf := testController(t)
	is.NoErr(sc.executeLine("new"))

	buf.Reset()
	is.NoErr(sc.executeLine("move C3 D4"))
	is.True(strings.Contains(buf.String(), "Black C3-D4"))

	// an illegal move is an error, and the session keeps going
	err := sc.executeLine("move D4 D5")
	is.True(err != nil)
	err = sc.executeLine("move A9 B8")
	is.True(err != nil)
	is.NoErr(sc.executeLine("turn"))
}

func TestCheckCommandDoesNotApply(t *testing.T) {
	is := is.New(t)
	sc, buf := testController(t)
	is.NoErr(sc.executeLine("new"))

	buf.Reset()
	is.NoErr(sc.executeLine("check C3 D4"))
	is.True(strings.Contains(buf.String(), "legal"))
	// the piece did not move
	_, ok := sc.game.Board().PieceAt(2, 2)
	is.True(ok)
}

func TestRequireGame(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	for _, cmd := range []string{"show", "move C3 D4", "pieces", "history", "turn"} {
		is.True(sc.executeLine(cmd) != nil)
	}
}

func TestSetCommand(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	is.NoErr(sc.executeLine("new"))

	is.NoErr(sc.executeLine("set strict on"))
	is.True(sc.game.Rules().StrictTurns())
	is.NoErr(sc.executeLine("set forced on"))
	is.True(sc.game.Rules().ForcedCapture())
	is.True(sc.executeLine("set nonsense on") != nil)
	is.True(sc.executeLine("set strict maybe") != nil)
}

func TestUnknownCommand(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	is.True(sc.executeLine("frobnicate") != nil)
	is.NoErr(sc.executeLine("")) // blank lines are ignored
}

func TestExit(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	is.Equal(sc.executeLine("exit"), errExit)
	is.Equal(sc.executeLine("quit"), errExit)
}
