// Package saves stores named game snapshots in a local sqlite database.
// Each save is one row: a human-chosen name, unique case-insensitively,
// and a zstd-compressed JSON snapshot blob.
package saves

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"imperium/game"
)

var (
	// ErrNameTaken means a save with the same name already exists,
	// compared case-insensitively.
	ErrNameTaken = errors.New("save name already taken")

	// ErrNotFound means no save has the given name.
	ErrNotFound = errors.New("save not found")
)

// Entry describes one stored save.
type Entry struct {
	ID        string
	Name      string
	Turn      int
	CreatedAt time.Time
}

// Store is a sqlite-backed save catalog. Safe for use from one goroutine,
// like the engine it persists.
type Store struct {
	db  *sql.DB
	enc *zstd.Encoder
	dec *zstd.Decoder
	log zerolog.Logger
}

// Open creates or opens the save database at path.
func Open(path string, logger zerolog.Logger) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, enc: enc, dec: dec, log: logger}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS saves (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL UNIQUE COLLATE NOCASE,
		turn       INTEGER NOT NULL,
		created_at TEXT NOT NULL,
		data       BLOB NOT NULL
	);`)
	return err
}

func (s *Store) Close() error {
	s.enc.Close()
	s.dec.Close()
	return s.db.Close()
}

// Save stores a snapshot under the given name. Returns ErrNameTaken if a
// save of that name exists, ignoring case.
func (s *Store) Save(ctx context.Context, name string, snap *game.Snapshot) error {
	if name == "" {
		return fmt.Errorf("empty save name")
	}

	var existing int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM saves WHERE name = ? COLLATE NOCASE`, name).Scan(&existing)
	if err != nil {
		return fmt.Errorf("check save name: %w", err)
	}
	if existing > 0 {
		return ErrNameTaken
	}

	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	blob := s.enc.EncodeAll(raw, nil)

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO saves (id, name, turn, created_at, data) VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), name, snap.Turn, time.Now().UTC().Format(time.RFC3339), blob)
	if err != nil {
		return fmt.Errorf("insert save: %w", err)
	}
	s.log.Info().Str("name", name).Int("turn", snap.Turn).Int("bytes", len(blob)).Msg("game saved")
	return nil
}

// Load decodes the named save into a snapshot. The caller's live session
// is untouched; restoring is a separate step.
func (s *Store) Load(ctx context.Context, name string) (*game.Snapshot, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM saves WHERE name = ? COLLATE NOCASE`, name).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read save: %w", err)
	}

	raw, err := s.dec.DecodeAll(blob, nil)
	if err != nil {
		return nil, fmt.Errorf("decompress save %q: %w", name, err)
	}
	var snap game.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decode save %q: %w", name, err)
	}
	return &snap, nil
}

// List returns all saves, most recent first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, turn, created_at FROM saves ORDER BY created_at DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var created string
		if err := rows.Scan(&e.ID, &e.Name, &e.Turn, &created); err != nil {
			return nil, err
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339, created)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Delete removes the named save. Returns ErrNotFound when nothing matched.
func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM saves WHERE name = ? COLLATE NOCASE`, name)
	if err != nil {
		return fmt.Errorf("delete save: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
