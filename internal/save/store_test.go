package save

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/circuithack/codee-chess/internal/errors"
	"github.com/circuithack/codee-chess/internal/game"
)

func newStore(t *testing.T, name string) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), name))
	if err != nil {
		t.Fatalf("New(): %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func midgameRecord() game.Record {
	c := game.New(11)
	c.TryPlayerMove(4, 6, 4, 4)
	c.AiMove(1)
	return c.ToRecord()
}

func TestStore_RoundTrip(t *testing.T) {
	for _, name := range []string{"save_chess.json", "save_chess.json.zst", "nested/dir/save.json"} {
		t.Run(name, func(t *testing.T) {
			s := newStore(t, name)
			want := midgameRecord()

			if err := s.Save(want); err != nil {
				t.Fatalf("Save(): %v", err)
			}
			got, err := s.Load()
			if err != nil {
				t.Fatalf("Load(): %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("record mismatch (-want +got):\n%s", diff)
			}
			if _, err := os.Stat(s.Path() + ".tmp"); !os.IsNotExist(err) {
				t.Errorf("temporary file left behind: %v", err)
			}
		})
	}
}

func TestStore_Overwrite(t *testing.T) {
	s := newStore(t, "save.json")
	if err := s.Save(game.New(1).ToRecord()); err != nil {
		t.Fatalf("Save(initial): %v", err)
	}
	want := midgameRecord()
	if err := s.Save(want); err != nil {
		t.Fatalf("Save(midgame): %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_Compressed(t *testing.T) {
	plain := newStore(t, "save.json")
	packed := newStore(t, "save.json.zst")
	if plain.Compressed() || !packed.Compressed() {
		t.Fatalf("Compressed() = %v, %v; want false, true", plain.Compressed(), packed.Compressed())
	}

	if err := packed.Save(midgameRecord()); err != nil {
		t.Fatalf("Save(): %v", err)
	}
	data, err := os.ReadFile(packed.Path())
	if err != nil {
		t.Fatalf("ReadFile(): %v", err)
	}
	// zstd frame magic number, little endian.
	if len(data) < 4 || data[0] != 0x28 || data[1] != 0xB5 || data[2] != 0x2F || data[3] != 0xFD {
		t.Errorf("compressed save does not start with a zstd frame: % x", data)
	}
}

func TestStore_LoadMissing(t *testing.T) {
	s := newStore(t, "missing.json")
	_, err := s.Load()
	if !stderrors.Is(err, errors.ErrNoSave) {
		t.Fatalf("Load() error = %v, want ErrNoSave", err)
	}
	var saveErr *errors.SaveError
	if !stderrors.As(err, &saveErr) || saveErr.Op != "load" || saveErr.Path != s.Path() {
		t.Errorf("Load() error = %#v, want *SaveError for load of %s", err, s.Path())
	}
}

func TestStore_LoadCorrupt(t *testing.T) {
	tests := []struct {
		name string
		file string
		data string
	}{
		{"not json", "save.json", "{not json"},
		{"json array", "save.json", "[1,2,3]"},
		{"not zstd", "save.json.zst", `{"board":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t, tt.file)
			if err := os.WriteFile(s.Path(), []byte(tt.data), 0o644); err != nil {
				t.Fatalf("WriteFile(): %v", err)
			}
			if _, err := s.Load(); !stderrors.Is(err, errors.ErrCorruptSave) {
				t.Errorf("Load() error = %v, want ErrCorruptSave", err)
			}
		})
	}
}

func TestStore_LoadedInvalidBoardResetsGame(t *testing.T) {
	s := newStore(t, "save.json")
	if err := os.WriteFile(s.Path(), []byte(`{"board":["short"],"turn":"b"}`), 0o644); err != nil {
		t.Fatalf("WriteFile(): %v", err)
	}
	rec, err := s.Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	c := game.New(1)
	c.FromRecord(rec)
	if diff := cmp.Diff(game.New(1).State(), c.State()); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_EmptyPath(t *testing.T) {
	if _, err := New(""); !stderrors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("New(\"\") error = %v, want ErrInvalidConfig", err)
	}
}
