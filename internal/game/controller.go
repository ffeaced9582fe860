// Package game holds the turn and outcome state machine for a single
// human-versus-computer game and its JSON save record.
//
// The human always plays White and the built-in search plays Black.
package game

import (
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"github.com/circuithack/codee-chess/internal/chess"
	"github.com/circuithack/codee-chess/internal/engine"
	"github.com/circuithack/codee-chess/internal/search"
)

// DefaultDepth is the search depth used by the shell when none is configured.
const DefaultDepth = 2

// Phase is the state of the game as seen by the turn state machine.
type Phase int

const (
	WhiteToMove Phase = iota
	BlackToMove
	Checkmate
	Stalemate
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case WhiteToMove:
		return "WhiteToMove"
	case BlackToMove:
		return "BlackToMove"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	}
	return "Unknown"
}

// State is a snapshot of the controller.
type State struct {
	Board      chess.Board
	Turn       chess.Side
	GameOver   bool
	ResultText string
	LastMove   *chess.Move
}

// Controller owns the board, the side to move, the outcome and the
// move picker's random source.
type Controller struct {
	board      chess.Board
	turn       chess.Side
	gameOver   bool
	resultText string
	lastMove   *chess.Move

	rng    *rand.Rand
	logger zerolog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for move and outcome events.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// New creates a controller in the initial position. The seed drives the
// shuffle of the computer's candidate moves, so equal seeds replay equal games.
func New(seed uint64, opts ...Option) *Controller {
	c := &Controller{
		rng:    rand.New(rand.NewSource(seed)),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Reset()
	return c
}

// Reset restores the initial position with White to move.
func (c *Controller) Reset() {
	c.board = chess.InitialBoard()
	c.turn = chess.White
	c.gameOver = false
	c.resultText = "White to move"
	c.lastMove = nil
}

// SetPosition replaces the board and side to move, clears the last move
// and recomputes the outcome.
func (c *Controller) SetPosition(board chess.Board, turn chess.Side) {
	c.board = board
	c.turn = turn
	c.lastMove = nil
	c.RecomputeOutcome()
}

// Board returns a copy of the current board.
func (c *Controller) Board() chess.Board {
	return c.board
}

// Turn returns the side to move.
func (c *Controller) Turn() chess.Side {
	return c.turn
}

// GameOver reports whether the game has ended.
func (c *Controller) GameOver() bool {
	return c.gameOver
}

// ResultText returns the status line, e.g. "Black to move".
func (c *Controller) ResultText() string {
	return c.resultText
}

// LastMove returns the most recently applied move, or nil.
func (c *Controller) LastMove() *chess.Move {
	if c.lastMove == nil {
		return nil
	}
	m := *c.lastMove
	return &m
}

// PieceAt returns the cell at (x, y); off-board coordinates read as Empty.
func (c *Controller) PieceAt(x, y int) chess.Cell {
	return c.board.Get(x, y)
}

// State returns a snapshot of the controller.
func (c *Controller) State() State {
	return State{
		Board:      c.board,
		Turn:       c.turn,
		GameOver:   c.gameOver,
		ResultText: c.resultText,
		LastMove:   c.LastMove(),
	}
}

// Phase derives the state machine phase from the current fields.
func (c *Controller) Phase() Phase {
	if c.gameOver {
		if engine.IsSideInCheck(&c.board, c.turn) {
			return Checkmate
		}
		return Stalemate
	}
	if c.turn == chess.Black {
		return BlackToMove
	}
	return WhiteToMove
}

// LegalMovesForSide returns every legal move for side in the current position.
func (c *Controller) LegalMovesForSide(side chess.Side) []chess.Move {
	return engine.AllLegalMoves(&c.board, side)
}

// LegalMovesFrom returns the legal moves of the piece on (x, y), which
// must belong to the side to move.
func (c *Controller) LegalMovesFrom(x, y int) []chess.Move {
	return engine.LegalMovesFrom(&c.board, c.turn, x, y)
}

// TryPlayerMove applies White's move from (fx, fy) to (tx, ty) if it is
// legal. Pawns reaching the last rank promote to a queen.
func (c *Controller) TryPlayerMove(fx, fy, tx, ty int) bool {
	if c.gameOver || c.turn != chess.White {
		return false
	}
	for _, m := range c.LegalMovesFrom(fx, fy) {
		if m.To.X == tx && m.To.Y == ty {
			c.apply(m)
			return true
		}
	}
	c.logger.Debug().
		Str("move", chess.NewMove(fx, fy, tx, ty).String()).
		Msg("rejected player move")
	return false
}

// AiMove lets Black pick and play a move searched to depth plies.
// ok is false when the game is over, it is not Black's turn, or Black
// has no legal move (in which case the outcome is recomputed).
func (c *Controller) AiMove(depth int) (m chess.Move, ok bool) {
	if c.gameOver || c.turn != chess.Black {
		return chess.Move{}, false
	}
	m, ok = search.PickBestMove(&c.board, c.turn, depth, c.rng)
	if !ok {
		c.RecomputeOutcome()
		return chess.Move{}, false
	}
	c.apply(m)
	return m, true
}

// RecomputeOutcome sets the game-over flag and result text from the
// legal moves of the side to move.
func (c *Controller) RecomputeOutcome() {
	if engine.HasLegalMoves(&c.board, c.turn) {
		c.gameOver = false
		c.resultText = c.turn.String() + " to move"
		return
	}
	c.gameOver = true
	if engine.IsSideInCheck(&c.board, c.turn) {
		c.resultText = "Checkmate: " + c.turn.Opposite().String() + " wins"
	} else {
		c.resultText = "Stalemate"
	}
	c.logger.Info().Str("result", c.resultText).Msg("game over")
}

func (c *Controller) apply(m chess.Move) {
	c.board = engine.ApplyMoveToBoard(&c.board, m)
	c.lastMove = &m
	c.logger.Debug().
		Stringer("side", c.turn).
		Stringer("move", m).
		Msg("move applied")
	c.turn = c.turn.Opposite()
	c.RecomputeOutcome()
}
