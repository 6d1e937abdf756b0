// Package game encapsulates the main mechanics of a checkers game: move
// legality, move application, turn state and the end-of-game conditions.
// Note: a Game doesn't care how it is played. Rendering and input live
// outside this package; they only read board state and call the move API.
package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/nyoung/checkers/board"
	"github.com/nyoung/checkers/checker"
	"github.com/nyoung/checkers/move"
)

// PlayState is whether the game is ongoing.
type PlayState uint8

const (
	StatePlaying PlayState = iota
	StateGameOver
)

// ErrIllegalMove is the sentinel wrapped by every move rejection. The board
// and turn are left unchanged whenever it is returned.
var ErrIllegalMove = errors.New("game: illegal move")

// Game is the engine proper. It exclusively owns its board; external
// collaborators read board state through Board() but never mutate it. A
// Game is single-owner: concurrent hosts must guard each instance with one
// lock, since PlayMove performs multiple dependent mutations.
type Game struct {
	rules *GameRules
	board *board.CheckerBoard

	onturn  checker.Color
	turnnum int
	playing PlayState
	winner  checker.Color
	won     bool

	history *GameHistory
}

// NewGame instantiates an engine with an empty board of the configured
// size. Call StartGame to place the starting pieces.
func NewGame(rules *GameRules) (*Game, error) {
	b, err := board.New(rules.BoardWidth(), rules.BoardHeight())
	if err != nil {
		return nil, err
	}
	return &Game{
		rules:   rules,
		board:   b,
		onturn:  checker.Black,
		playing: StatePlaying,
		history: newHistory(),
	}, nil
}

// StartGame generates the starting layout and resets the turn state.
// Black moves first.
func (g *Game) StartGame() {
	g.board.Generate()
	g.onturn = checker.Black
	g.turnnum = 0
	g.playing = StatePlaying
	g.won = false
	g.history = newHistory()
	log.Debug().Str("gameID", g.history.UID()).
		Int("width", g.board.Width()).Int("height", g.board.Height()).
		Msg("started game")
}

// Board returns the game's board. Callers treat it as read-only.
func (g *Game) Board() *board.CheckerBoard {
	return g.board
}

func (g *Game) Rules() *GameRules {
	return g.rules
}

// PlayerOnTurn returns the color expected to move next.
func (g *Game) PlayerOnTurn() checker.Color {
	return g.onturn
}

// Turn returns the number of moves applied so far.
func (g *Game) Turn() int {
	return g.turnnum
}

// Playing returns whether the game is still going.
func (g *Game) Playing() bool {
	return g.playing == StatePlaying
}

// Winner returns the winning color. The second value is false while the
// game is ongoing or when it ended in a draw.
func (g *Game) Winner() (checker.Color, bool) {
	return g.winner, g.won
}

// History returns the record of applied moves.
func (g *Game) History() *GameHistory {
	return g.history
}

// farRow is the promotion row for a color: Black advances toward the
// bottom of the board, Red toward row zero.
func (g *Game) farRow(c checker.Color) int {
	if c == checker.Black {
		return g.board.Height() - 1
	}
	return 0
}

func forwardOf(c checker.Color, fromRow, toRow int) bool {
	if c == checker.Black {
		return toRow > fromRow
	}
	return toRow < fromRow
}

// ValidateMove validates a proposed move without mutating any state. On
// success it returns the fully resolved move, including the jumped piece
// for a capture and whether the piece promotes. On failure the returned
// error wraps ErrIllegalMove with the reason.
func (g *Game) ValidateMove(p checker.Checker, dest move.Square) (*move.Move, error) {
	m, err := g.validate(p, dest)
	if err != nil {
		log.Debug().Err(err).Str("piece", p.String()).Str("dest", dest.String()).
			Msg("move rejected")
	}
	return m, err
}

// MovementCheck is the boolean form of ValidateMove.
func (g *Game) MovementCheck(p checker.Checker, dest move.Square) bool {
	_, err := g.ValidateMove(p, dest)
	return err == nil
}

func (g *Game) validate(p checker.Checker, dest move.Square) (*move.Move, error) {
	if g.playing == StateGameOver {
		return nil, fmt.Errorf("%w: the game is over", ErrIllegalMove)
	}
	if g.rules.StrictTurns() && p.Color() != g.onturn {
		return nil, fmt.Errorf("%w: it is %v's turn", ErrIllegalMove, g.onturn)
	}
	m, err := g.resolve(p, dest)
	if err != nil {
		return nil, err
	}
	if g.rules.ForcedCapture() && m.Kind() == move.SimpleMove && g.hasAnyJump(p.Color()) {
		return nil, fmt.Errorf("%w: a capture is available and must be taken", ErrIllegalMove)
	}
	return m, nil
}

// resolve applies the geometric and occupancy rules only; turn order and
// forced capture are layered on top by validate.
func (g *Game) resolve(p checker.Checker, dest move.Square) (*move.Move, error) {
	onBoard, ok := g.board.PieceAt(p.Col(), p.Row())
	if !ok || onBoard != p {
		return nil, fmt.Errorf("%w: no such piece on %v", ErrIllegalMove,
			move.Square{Col: p.Col(), Row: p.Row()})
	}
	if !g.board.OnBoard(dest.Col, dest.Row) {
		return nil, fmt.Errorf("%w: %v is not on the grid", ErrIllegalMove, dest)
	}
	if board.RedCheck(dest.Row, dest.Col) {
		return nil, fmt.Errorf("%w: checkers can only move to black squares", ErrIllegalMove)
	}
	if _, occupied := g.board.PieceAt(dest.Col, dest.Row); occupied {
		return nil, fmt.Errorf("%w: %v is occupied", ErrIllegalMove, dest)
	}

	dcol := dest.Col - p.Col()
	drow := dest.Row - p.Row()
	adcol, adrow := abs(dcol), abs(drow)
	if adcol != adrow || adcol == 0 || adcol > 2 {
		return nil, fmt.Errorf("%w: checkers can only move diagonally", ErrIllegalMove)
	}
	if !p.IsKing() && !forwardOf(p.Color(), p.Row(), dest.Row) {
		return nil, fmt.Errorf("%w: only kings can move backwards", ErrIllegalMove)
	}

	promotes := !p.IsKing() && dest.Row == g.farRow(p.Color())

	if adcol == 1 {
		return move.New(p, dest, promotes), nil
	}

	// The jumped piece sits on the square between origin and destination.
	midCol := p.Col() + dcol/2
	midRow := p.Row() + drow/2
	jumped, ok := g.board.PieceAt(midCol, midRow)
	if !ok {
		return nil, fmt.Errorf("%w: there is no piece to jump on %v", ErrIllegalMove,
			move.Square{Col: midCol, Row: midRow})
	}
	if jumped.Color() == p.Color() {
		return nil, fmt.Errorf("%w: checkers can not jump over their own color", ErrIllegalMove)
	}
	return move.NewJump(p, dest, jumped, promotes), nil
}

// PlayMove validates and applies a move: the mover is relocated, the jumped
// piece (if any) is removed, promotion is applied, and the turn flips. On a
// validation error nothing changes.
func (g *Game) PlayMove(p checker.Checker, dest move.Square) (*move.Move, error) {
	m, err := g.validate(p, dest)
	if err != nil {
		return nil, err
	}
	if err := g.board.RemovePiece(p); err != nil {
		return nil, err
	}
	if captured, ok := m.Captured(); ok {
		if err := g.board.RemovePiece(captured); err != nil {
			return nil, err
		}
	}
	placed, err := p.WithPos(dest.Col, dest.Row)
	if err != nil {
		return nil, err
	}
	if m.Promotes() {
		placed = placed.Promoted()
	}
	if err := g.board.AddPiece(placed); err != nil {
		return nil, err
	}

	g.history.add(m)
	g.turnnum++
	g.onturn = g.onturn.Other()
	log.Debug().Int("turn", g.turnnum).Str("move", m.ShortDescription()).Msg("played move")

	g.checkGameOver(p.Color())
	return m, nil
}

// checkGameOver applies the end-of-game rules after mover's move: when all
// of the opponent's pieces are captured the mover wins; when the side now
// to move has pieces but no legal move the game ends in a draw.
func (g *Game) checkGameOver(mover checker.Color) {
	opp := mover.Other()
	if len(g.board.PiecesOf(opp)) == 0 {
		g.playing = StateGameOver
		g.winner = mover
		g.won = true
		log.Debug().Str("winner", mover.String()).Msg("game over")
		return
	}
	if !g.hasAnyMove(g.onturn) {
		g.playing = StateGameOver
		g.won = false
		log.Debug().Msg("game drawn: no legal moves available")
	}
}

// candidateSquares returns the up to eight destinations a piece could ever
// reach in one move: the four diagonal steps and the four jumps.
func candidateSquares(p checker.Checker) []move.Square {
	sqs := make([]move.Square, 0, 8)
	for _, d := range []int{1, 2} {
		for _, dc := range []int{-d, d} {
			for _, dr := range []int{-d, d} {
				sqs = append(sqs, move.Square{Col: p.Col() + dc, Row: p.Row() + dr})
			}
		}
	}
	return sqs
}

func (g *Game) hasAnyJump(color checker.Color) bool {
	for _, p := range g.board.PiecesOf(color) {
		for _, sq := range candidateSquares(p) {
			if abs(sq.Col-p.Col()) != 2 {
				continue
			}
			if m, err := g.resolve(p, sq); err == nil && m.Kind() == move.JumpMove {
				return true
			}
		}
	}
	return false
}

func (g *Game) hasAnyMove(color checker.Color) bool {
	for _, p := range g.board.PiecesOf(color) {
		for _, sq := range candidateSquares(p) {
			if _, err := g.resolve(p, sq); err == nil {
				return true
			}
		}
	}
	return false
}

// LegalMoves enumerates every legal move for a color under the current
// rules. Used by the self-play harness and the shell.
func (g *Game) LegalMoves(color checker.Color) []*move.Move {
	var moves []*move.Move
	for _, p := range g.board.PiecesOf(color) {
		for _, sq := range candidateSquares(p) {
			if m, err := g.validate(p, sq); err == nil {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
