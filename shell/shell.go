// Package shell is the interactive front end: it translates user-entered
// coordinates into engine calls and reports the results. All rules logic
// stays in the game package.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/nyoung/checkers/automatic"
	"github.com/nyoung/checkers/config"
	"github.com/nyoung/checkers/game"
	"github.com/nyoung/checkers/move"
	"github.com/nyoung/checkers/render"
)

var errExit = errors.New("exit")

type ShellController struct {
	l   *readline.Instance
	out io.Writer

	cfg  *config.Settings
	game *game.Game
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "new [width height] - start a new game\n")
	io.WriteString(w, "show - show the board\n")
	io.WriteString(w, "move <from> <to> - play a move, e.g. move C3 D4\n")
	io.WriteString(w, "check <from> <to> - test a move without playing it\n")
	io.WriteString(w, "pieces - list the pieces on the board\n")
	io.WriteString(w, "history - show the moves played so far\n")
	io.WriteString(w, "turn - show whose turn it is\n")
	io.WriteString(w, "set <strict|forced> <on|off> - toggle turn order / mandatory capture\n")
	io.WriteString(w, "autoplay [n] - play n random self-play games (default 1)\n")
	io.WriteString(w, "exit - quit\n")
}

func NewShellController(cfg *config.Settings) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mcheckers>\033[0m ",
		HistoryFile:     "/tmp/readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, out: l.Stderr(), cfg: cfg}
}

func (sc *ShellController) newGame(width, height int) error {
	rules, err := game.NewGameRules(width, height)
	if err != nil {
		return err
	}
	rules.SetStrictTurns(sc.cfg.StrictTurns)
	rules.SetForcedCapture(sc.cfg.ForcedCapture)
	g, err := game.NewGame(rules)
	if err != nil {
		return err
	}
	g.StartGame()
	sc.game = g
	showMessage(render.BoardText(g.Board()), sc.out)
	return nil
}

func (sc *ShellController) requireGame() error {
	if sc.game == nil {
		return errors.New("no game in progress; type `new` to start one")
	}
	return nil
}

// parseMoveArgs turns two coordinate arguments into a validated move: the
// piece on the first square, headed for the second.
func (sc *ShellController) parseMoveArgs(from, to string) (*move.Move, error) {
	fromSq, err := move.FromCoords(from)
	if err != nil {
		return nil, err
	}
	toSq, err := move.FromCoords(to)
	if err != nil {
		return nil, err
	}
	p, ok := sc.game.Board().PieceAt(fromSq.Col, fromSq.Row)
	if !ok {
		return nil, fmt.Errorf("there is no piece on %v", fromSq)
	}
	return sc.game.ValidateMove(p, toSq)
}

func (sc *ShellController) handleMove(args []string, apply bool) error {
	if err := sc.requireGame(); err != nil {
		return err
	}
	if len(args) != 2 {
		return errors.New("need two squares, e.g. move C3 D4")
	}
	m, err := sc.parseMoveArgs(args[0], args[1])
	if err != nil {
		return err
	}
	if !apply {
		showMessage("legal: "+m.ShortDescription(), sc.out)
		return nil
	}
	if _, err := sc.game.PlayMove(m.Piece(), m.Dest()); err != nil {
		return err
	}
	showMessage(m.ShortDescription(), sc.out)
	showMessage(render.BoardText(sc.game.Board()), sc.out)
	if !sc.game.Playing() {
		if winner, won := sc.game.Winner(); won {
			showMessage(fmt.Sprintf("game over: %v wins", winner), sc.out)
		} else {
			showMessage("game over: draw", sc.out)
		}
	}
	return nil
}

func (sc *ShellController) handleSet(args []string) error {
	if err := sc.requireGame(); err != nil {
		return err
	}
	if len(args) != 2 || (args[1] != "on" && args[1] != "off") {
		return errors.New("usage: set <strict|forced> <on|off>")
	}
	on := args[1] == "on"
	switch args[0] {
	case "strict":
		sc.game.Rules().SetStrictTurns(on)
	case "forced":
		sc.game.Rules().SetForcedCapture(on)
	default:
		return errors.New("usage: set <strict|forced> <on|off>")
	}
	showMessage(args[0]+" "+args[1], sc.out)
	return nil
}

func (sc *ShellController) handleAutoplay(args []string) error {
	n := 1
	if len(args) == 1 {
		var err error
		if n, err = strconv.Atoi(args[0]); err != nil || n < 1 {
			return errors.New("usage: autoplay [n]")
		}
	}
	rules, err := game.NewGameRules(sc.cfg.BoardWidth, sc.cfg.BoardHeight)
	if err != nil {
		return err
	}
	rules.SetStrictTurns(true)
	runner, err := automatic.NewGameRunner(nil, rules)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		res := runner.PlayFullGame()
		showMessage(res.String(), sc.out)
	}
	return nil
}

func (sc *ShellController) executeLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "new":
		width, height := sc.cfg.BoardWidth, sc.cfg.BoardHeight
		if len(args) == 2 {
			var err error
			if width, err = strconv.Atoi(args[0]); err != nil {
				return errors.New("usage: new [width height]")
			}
			if height, err = strconv.Atoi(args[1]); err != nil {
				return errors.New("usage: new [width height]")
			}
		}
		return sc.newGame(width, height)
	case "show":
		if err := sc.requireGame(); err != nil {
			return err
		}
		showMessage(render.BoardText(sc.game.Board()), sc.out)
	case "move":
		return sc.handleMove(args, true)
	case "check":
		return sc.handleMove(args, false)
	case "pieces":
		if err := sc.requireGame(); err != nil {
			return err
		}
		for _, p := range sc.game.Board().Pieces() {
			showMessage(p.String(), sc.out)
		}
		showMessage(fmt.Sprintf("%d pieces", sc.game.Board().NumPieces()), sc.out)
	case "history":
		if err := sc.requireGame(); err != nil {
			return err
		}
		showMessage(sc.game.History().DisplayText(), sc.out)
	case "turn":
		if err := sc.requireGame(); err != nil {
			return err
		}
		showMessage(sc.game.PlayerOnTurn().String()+" to move", sc.out)
	case "set":
		return sc.handleSet(args)
	case "autoplay":
		return sc.handleAutoplay(args)
	case "help":
		usage(sc.out)
	case "exit", "quit":
		return errExit
	default:
		return fmt.Errorf("command %q not found", cmd)
	}
	return nil
}

// Loop runs the read-eval loop until exit or EOF. Rule violations are
// reported and the prompt returns; they never end the session.
func (sc *ShellController) Loop() {
	defer sc.l.Close()
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		if err := sc.executeLine(strings.TrimSpace(line)); err != nil {
			if errors.Is(err, errExit) {
				break
			}
			showMessage("error: "+err.Error(), sc.out)
			log.Debug().Err(err).Str("line", line).Msg("command failed")
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

// Out overrides the output writer; used by tests.
func (sc *ShellController) Out(w io.Writer) {
	sc.out = w
}
