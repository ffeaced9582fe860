package main

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/circuithack/codee-chess/internal/chess"
	"github.com/circuithack/codee-chess/internal/config"
	"github.com/circuithack/codee-chess/internal/engine"
	"github.com/circuithack/codee-chess/internal/errors"
	"github.com/circuithack/codee-chess/internal/game"
	"github.com/circuithack/codee-chess/internal/notation"
	"github.com/circuithack/codee-chess/internal/save"
	"github.com/circuithack/codee-chess/internal/worker"
)

// maxPerftDepth bounds the perft command.
const maxPerftDepth = 6

// errQuit ends the command loop.
var errQuit = stderrors.New("quit")

// Shell reads commands and moves line by line and drives a game.
// The human plays White; after each accepted move the computer replies.
type Shell struct {
	cfg      *config.Config
	game     *game.Controller
	store    *save.Store // nil disables save and load
	renderer *Renderer
	out      io.Writer
	logger   zerolog.Logger
}

// command is a shell command handler.
type command func(s *Shell, args []string) error

var commands map[string]command

func init() {
	commands = map[string]command{
		"help":    (*Shell).cmdHelp,
		"board":   (*Shell).cmdBoard,
		"fen":     (*Shell).cmdFEN,
		"moves":   (*Shell).cmdMoves,
		"new":     (*Shell).cmdNew,
		"save":    (*Shell).cmdSave,
		"load":    (*Shell).cmdLoad,
		"perft":   (*Shell).cmdPerft,
		"analyze": (*Shell).cmdAnalyze,
		"quit":    (*Shell).cmdQuit,
		"exit":    (*Shell).cmdQuit,
	}
}

// NewShell creates a shell around a controller. store may be nil.
func NewShell(cfg *config.Config, ctrl *game.Controller, store *save.Store, logger zerolog.Logger) *Shell {
	return &Shell{
		cfg:      cfg,
		game:     ctrl,
		store:    store,
		renderer: NewRenderer(cfg.Display),
		out:      cfg.OutputFile,
		logger:   logger,
	}
}

// Run shows the position, lets the computer finish a pending reply and
// then processes lines from in until "quit" or end of input.
func (s *Shell) Run(in io.Reader) error {
	s.showPosition()
	if s.computerReply() {
		s.showPosition()
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		if err := s.Execute(scanner.Text()); err != nil {
			if stderrors.Is(err, errQuit) {
				return nil
			}
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
}

// Execute runs one input line: a command or a move in coordinate
// ("e2e4") or standard algebraic ("Nf3") form.
func (s *Shell) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	if cmd, ok := commands[strings.ToLower(fields[0])]; ok {
		return cmd(s, fields[1:])
	}
	if len(fields) != 1 {
		return fmt.Errorf("unknown command %q (try \"help\")", fields[0])
	}
	return s.playerMove(fields[0])
}

func (s *Shell) playerMove(text string) error {
	if s.game.GameOver() {
		return fmt.Errorf("game over: %s (type \"new\")", s.game.ResultText())
	}
	board, turn := s.game.Board(), s.game.Turn()
	if turn != chess.White {
		return &errors.MoveError{Err: errors.ErrIllegalMove, MoveText: text, Reason: "not White's turn"}
	}

	m, ok := chess.ParseMove(text)
	if !ok {
		var err error
		if m, err = notation.ParseSAN(&board, turn, text); err != nil {
			return err
		}
	}
	if m.IsPromotion() && m.Promotion != chess.Queen {
		return &errors.MoveError{Err: errors.ErrIllegalMove, MoveText: text, Reason: "pawns only promote to a queen"}
	}

	played := s.moveText(&board, turn, m)
	if !s.game.TryPlayerMove(m.From.X, m.From.Y, m.To.X, m.To.Y) {
		return &errors.MoveError{Err: errors.ErrIllegalMove, MoveText: text}
	}
	fmt.Fprintf(s.out, "You: %s\n", played)
	s.persist()

	s.computerReply()
	s.showPosition()
	return nil
}

// computerReply plays Black's move if it is Black's turn. It reports
// whether a move was made.
func (s *Shell) computerReply() bool {
	if s.game.GameOver() || s.game.Turn() != chess.Black {
		return false
	}
	board := s.game.Board()
	start := time.Now()
	m, ok := s.game.AiMove(s.cfg.Search.Depth)
	if !ok {
		return false
	}
	s.logger.Debug().
		Stringer("move", m).
		Int("depth", s.cfg.Search.Depth).
		Dur("took", time.Since(start)).
		Msg("computer moved")
	fmt.Fprintf(s.out, "Computer: %s\n", s.moveText(&board, chess.Black, m))
	s.persist()
	return true
}

// moveText renders m for the transcript.
func (s *Shell) moveText(board *chess.Board, side chess.Side, m chess.Move) string {
	if !s.cfg.Display.ShowSAN {
		return m.String()
	}
	return notation.SANOrCoordinate(board, side, m)
}

// persist autosaves the game; failures are reported but not fatal.
func (s *Shell) persist() {
	if s.store == nil || !s.cfg.Save.Autosave {
		return
	}
	if err := s.store.Save(s.game.ToRecord()); err != nil {
		s.logger.Error().Err(err).Msg("autosave failed")
		fmt.Fprintf(s.out, "warning: %v\n", err)
	}
}

func (s *Shell) showPosition() {
	board := s.game.Board()
	s.renderer.Board(s.out, &board, s.game.LastMove())
	fmt.Fprintln(s.out, s.game.ResultText())
}

func (s *Shell) cmdHelp(_ []string) error {
	fmt.Fprint(s.out, `Commands:
  e2e4 | Nf3     play a move as White
  moves <sq>     list legal moves of the piece on <sq>
  board          show the board
  fen            print the position as FEN
  new            start a new game
  save | load    write or read the save file
  perft <n>      count move-tree leaves to depth n
  analyze [n]    score the side to move's moves to depth n
  quit           leave
`)
	return nil
}

func (s *Shell) cmdBoard(_ []string) error {
	s.showPosition()
	return nil
}

func (s *Shell) cmdFEN(_ []string) error {
	board := s.game.Board()
	fmt.Fprintln(s.out, engine.BoardToFEN(&board, s.game.Turn()))
	return nil
}

func (s *Shell) cmdMoves(args []string) error {
	if len(args) != 1 {
		return stderrors.New("usage: moves <square>")
	}
	sq, ok := chess.ParseSquare(args[0])
	if !ok {
		return fmt.Errorf("invalid square %q", args[0])
	}
	board, turn := s.game.Board(), s.game.Turn()
	moves := s.game.LegalMovesFrom(sq.X, sq.Y)
	if len(moves) == 0 {
		fmt.Fprintf(s.out, "no legal moves from %s\n", sq)
		return nil
	}
	texts := make([]string, 0, len(moves))
	for _, m := range moves {
		texts = append(texts, s.moveText(&board, turn, m))
	}
	fmt.Fprintln(s.out, strings.Join(texts, " "))
	return nil
}

func (s *Shell) cmdNew(_ []string) error {
	s.game.Reset()
	s.persist()
	s.showPosition()
	return nil
}

func (s *Shell) cmdSave(_ []string) error {
	if s.store == nil {
		return stderrors.New("no save file configured")
	}
	if err := s.store.Save(s.game.ToRecord()); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "saved to %s\n", s.store.Path())
	return nil
}

func (s *Shell) cmdLoad(_ []string) error {
	if s.store == nil {
		return stderrors.New("no save file configured")
	}
	rec, err := s.store.Load()
	if err != nil {
		return err
	}
	s.game.FromRecord(rec)
	fmt.Fprintf(s.out, "loaded %s\n", s.store.Path())
	s.showPosition()
	if s.computerReply() {
		s.showPosition()
	}
	return nil
}

// interruptible returns a context cancelled by Ctrl-C, so a long perft or
// analysis can be abandoned without leaving the shell.
func interruptible() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// parseDepth parses an optional depth argument within 1..limit.
func parseDepth(args []string, def, limit int) (int, error) {
	if len(args) == 0 {
		return def, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > limit {
		return 0, fmt.Errorf("depth must be a number from 1 to %d", limit)
	}
	return n, nil
}

func (s *Shell) cmdPerft(args []string) error {
	n, err := parseDepth(args, 1, maxPerftDepth)
	if err != nil {
		return err
	}
	board, turn := s.game.Board(), s.game.Turn()
	ctx, stop := interruptible()
	defer stop()
	start := time.Now()
	entries, err := worker.Divide(ctx, &board, turn, n, s.cfg.Search.PerftWorkers)
	if err != nil {
		return errors.Wrapf(err, "perft %d", n)
	}

	var total uint64
	for _, e := range entries {
		fmt.Fprintf(s.out, "%s: %d\n", e.Move, e.Nodes)
		total += e.Nodes
	}
	fmt.Fprintf(s.out, "total: %d\n", total)
	s.logger.Debug().Int("depth", n).Uint64("nodes", total).Dur("took", time.Since(start)).Msg("perft")
	return nil
}

func (s *Shell) cmdAnalyze(args []string) error {
	n, err := parseDepth(args, s.cfg.Search.Depth, config.MaxDepth)
	if err != nil {
		return err
	}
	board, turn := s.game.Board(), s.game.Turn()
	ctx, stop := interruptible()
	defer stop()
	scored, err := worker.ScoreMoves(ctx, &board, turn, n, s.cfg.Search.PerftWorkers)
	if err != nil {
		return errors.Wrapf(err, "analyze %d", n)
	}
	if len(scored) == 0 {
		fmt.Fprintln(s.out, "no legal moves")
		return nil
	}
	const shown = 5
	for i, sm := range scored {
		if i == shown {
			break
		}
		fmt.Fprintf(s.out, "%-8s %d\n", s.moveText(&board, turn, sm.Move), sm.Score)
	}
	return nil
}

func (s *Shell) cmdQuit(_ []string) error {
	return errQuit
}
