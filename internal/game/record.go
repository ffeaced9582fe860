package game

import (
	"encoding/json"
	"fmt"

	"github.com/circuithack/codee-chess/internal/chess"
)

// Record is the persisted form of a game:
//
//	{"board": ["rnbqkbnr", ...], "turn": "w", "game_over": false,
//	 "result_text": "White to move", "last_move": [4, 6, 4, 4, ""]}
//
// Board rows run from rank 8 to rank 1 using piece letters and '.'.
type Record struct {
	Board      []string    `json:"board"`
	Turn       string      `json:"turn"`
	GameOver   bool        `json:"game_over"`
	ResultText string      `json:"result_text"`
	LastMove   *MoveRecord `json:"last_move"`
}

// MoveRecord is a move encoded as [fromX, fromY, toX, toY, promotion],
// where promotion is "Q" or "".
type MoveRecord struct {
	FromX, FromY int
	ToX, ToY     int
	Promotion    string
}

// NewMoveRecord converts a move to its record form.
func NewMoveRecord(m chess.Move) *MoveRecord {
	return &MoveRecord{
		FromX:     m.From.X,
		FromY:     m.From.Y,
		ToX:       m.To.X,
		ToY:       m.To.Y,
		Promotion: m.PromotionLetter(),
	}
}

// Move converts the record back to a move.
func (r MoveRecord) Move() chess.Move {
	m := chess.NewMove(r.FromX, r.FromY, r.ToX, r.ToY)
	if r.Promotion != "" {
		m.Promotion = chess.PieceFromLetter(r.Promotion[0])
	}
	return m
}

// MarshalJSON encodes the move as a five element array.
func (r MoveRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{r.FromX, r.FromY, r.ToX, r.ToY, r.Promotion})
}

// UnmarshalJSON decodes a five element array of four integers and a string.
func (r *MoveRecord) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) != 5 {
		return fmt.Errorf("last_move: expected 5 elements, got %d", len(parts))
	}
	var coords [4]float64
	for i := range coords {
		if err := json.Unmarshal(parts[i], &coords[i]); err != nil {
			return fmt.Errorf("last_move[%d]: %w", i, err)
		}
	}
	var promotion string
	if err := json.Unmarshal(parts[4], &promotion); err != nil {
		return fmt.Errorf("last_move[4]: %w", err)
	}
	m := MoveRecord{
		FromX:     int(coords[0]),
		FromY:     int(coords[1]),
		ToX:       int(coords[2]),
		ToY:       int(coords[3]),
		Promotion: promotion,
	}
	if !m.OnBoard() {
		return fmt.Errorf("last_move: coordinates %v off the board", coords)
	}
	*r = m
	return nil
}

// OnBoard reports whether both squares lie within 0..7.
func (r MoveRecord) OnBoard() bool {
	return chess.InBounds(r.FromX, r.FromY) && chess.InBounds(r.ToX, r.ToY)
}

// UnmarshalJSON decodes a record leniently: a field of the wrong type is
// left at its zero value instead of failing the whole record. Only a
// document that is not a JSON object is an error.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = Record{}
	if v, ok := raw["board"]; ok {
		var rows []string
		if json.Unmarshal(v, &rows) == nil {
			r.Board = rows
		}
	}
	if v, ok := raw["turn"]; ok {
		_ = json.Unmarshal(v, &r.Turn)
	}
	if v, ok := raw["game_over"]; ok {
		_ = json.Unmarshal(v, &r.GameOver)
	}
	if v, ok := raw["result_text"]; ok {
		_ = json.Unmarshal(v, &r.ResultText)
	}
	if v, ok := raw["last_move"]; ok {
		var m MoveRecord
		if json.Unmarshal(v, &m) == nil {
			r.LastMove = &m
		}
	}
	return nil
}

// ToRecord captures the controller state as a record.
func (c *Controller) ToRecord() Record {
	rec := Record{
		Board:      c.board.Rows(),
		Turn:       "w",
		GameOver:   c.gameOver,
		ResultText: c.resultText,
	}
	if c.turn == chess.Black {
		rec.Turn = "b"
	}
	if c.lastMove != nil {
		rec.LastMove = NewMoveRecord(*c.lastMove)
	}
	return rec
}

// FromRecord restores the controller from rec. A board that is not eight
// rows of eight valid letters resets the game instead. Any turn other than
// "b" means White. A last move with a square off the board is dropped. The
// stored outcome is kept as-is.
func (c *Controller) FromRecord(rec Record) {
	board, ok := chess.BoardFromRows(rec.Board)
	if !ok {
		c.logger.Warn().Int("rows", len(rec.Board)).Msg("invalid board in record, resetting")
		c.Reset()
		return
	}
	c.board = board
	c.turn = chess.White
	if rec.Turn == "b" {
		c.turn = chess.Black
	}
	c.gameOver = rec.GameOver
	c.resultText = rec.ResultText
	c.lastMove = nil
	switch {
	case rec.LastMove == nil:
	case !rec.LastMove.OnBoard():
		c.logger.Warn().Interface("last_move", rec.LastMove).Msg("last move off the board, dropping")
	default:
		m := rec.LastMove.Move()
		c.lastMove = &m
	}
}
