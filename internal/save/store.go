// Package save persists game records to a single JSON file.
//
// Writes go to "<path>.tmp" first and are renamed over the target, so a
// crash mid-write leaves the previous save intact. Paths ending in ".zst"
// are zstd-compressed.
package save

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog"

	"github.com/circuithack/codee-chess/internal/errors"
	"github.com/circuithack/codee-chess/internal/game"
)

// CompressedSuffix selects zstd compression when it ends the save path.
const CompressedSuffix = ".zst"

// DefaultPath is the save file used when none is configured.
const DefaultPath = "save_chess.json"

// Store reads and writes one save file.
type Store struct {
	path   string
	logger zerolog.Logger

	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load and save events.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a store for path. The zstd codec is only set up for
// compressed paths.
func New(path string, opts ...Option) (*Store, error) {
	if path == "" {
		return nil, errors.Wrap(errors.ErrInvalidConfig, "empty save path")
	}
	s := &Store{
		path:   path,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.Compressed() {
		encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, errors.Wrap(err, "create zstd encoder")
		}
		decoder, err := zstd.NewReader(nil)
		if err != nil {
			encoder.Close()
			return nil, errors.Wrap(err, "create zstd decoder")
		}
		s.encoder = encoder
		s.decoder = decoder
	}
	return s, nil
}

// Path returns the save file path.
func (s *Store) Path() string {
	return s.path
}

// Compressed reports whether the save file is zstd-compressed.
func (s *Store) Compressed() bool {
	return strings.HasSuffix(s.path, CompressedSuffix)
}

// Save writes rec atomically, creating the parent directory if needed.
func (s *Store) Save(rec game.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return &errors.SaveError{Err: err, Op: "save", Path: s.path}
	}
	if s.encoder != nil {
		data = s.encoder.EncodeAll(data, nil)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &errors.SaveError{Err: err, Op: "save", Path: s.path}
		}
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		os.Remove(tmpPath)
		return &errors.SaveError{Err: err, Op: "save", Path: s.path}
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return &errors.SaveError{Err: err, Op: "save", Path: s.path}
	}

	s.logger.Debug().Str("path", s.path).Int("bytes", len(data)).Msg("game saved")
	return nil
}

// Load reads the saved record. A missing file yields ErrNoSave and an
// undecodable one ErrCorruptSave, both wrapped in a *errors.SaveError.
func (s *Store) Load() (game.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return game.Record{}, &errors.SaveError{Err: errors.ErrNoSave, Op: "load", Path: s.path}
		}
		return game.Record{}, &errors.SaveError{Err: err, Op: "load", Path: s.path}
	}

	if s.decoder != nil {
		data, err = s.decoder.DecodeAll(data, nil)
		if err != nil {
			return game.Record{}, &errors.SaveError{
				Err:  fmt.Errorf("%w: %w", errors.ErrCorruptSave, err),
				Op:   "load",
				Path: s.path,
			}
		}
	}

	var rec game.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return game.Record{}, &errors.SaveError{
			Err:  fmt.Errorf("%w: %w", errors.ErrCorruptSave, err),
			Op:   "load",
			Path: s.path,
		}
	}

	s.logger.Debug().Str("path", s.path).Msg("game loaded")
	return rec, nil
}

// Close releases the zstd codec, if any.
func (s *Store) Close() error {
	if s.decoder != nil {
		s.decoder.Close()
		s.decoder = nil
	}
	if s.encoder != nil {
		err := s.encoder.Close()
		s.encoder = nil
		return err
	}
	return nil
}
