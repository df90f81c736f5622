package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/tutor-cli/internal/core/domain"
	"github.com/custodia-labs/tutor-cli/internal/core/ports/driven"
)

// schema creates the two tables backing the store ports. The sections table
// keeps insertion order via the rowid; the profile table holds the single
// learner record as a JSON document.
const schema = `
CREATE TABLE IF NOT EXISTS sections (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	section_id TEXT NOT NULL,
	source     TEXT NOT NULL,
	content    TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS profile (
	id     INTEGER PRIMARY KEY CHECK (id = 1),
	record TEXT NOT NULL
);
`

// Store is a unified SQLite-based storage that provides access to the
// knowledge and profile store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.tutor/data/tutor.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".tutor", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "tutor.db")

	// WAL mode keeps reads cheap while every mutation still commits
	// before the call returns.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// KnowledgeStore returns a KnowledgeStore interface backed by this store.
func (s *Store) KnowledgeStore() driven.KnowledgeStore {
	return &knowledgeStore{store: s}
}

// ProfileStore returns a ProfileStore interface backed by this store.
func (s *Store) ProfileStore() driven.ProfileStore {
	return &profileStore{store: s}
}

// Ensure the wrappers implement the driven store interfaces.
var (
	_ driven.KnowledgeStore = (*knowledgeStore)(nil)
	_ driven.ProfileStore   = (*profileStore)(nil)
)

// knowledgeStore implements driven.KnowledgeStore over the sections table.
type knowledgeStore struct {
	store *Store
}

func (k *knowledgeStore) Append(ctx context.Context, section domain.KnowledgeSection) error {
	_, err := k.store.db.ExecContext(ctx,
		`INSERT INTO sections (section_id, source, content) VALUES (?, ?, ?)`,
		uuid.New().String(), section.Source, section.Content,
	)
	if err != nil {
		return fmt.Errorf("insert section: %w", err)
	}
	return nil
}

func (k *knowledgeStore) Sections(ctx context.Context) ([]domain.KnowledgeSection, error) {
	rows, err := k.store.db.QueryContext(ctx,
		`SELECT source, content FROM sections ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query sections: %w", err)
	}
	defer rows.Close()

	var sections []domain.KnowledgeSection
	for rows.Next() {
		var sec domain.KnowledgeSection
		if err := rows.Scan(&sec.Source, &sec.Content); err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		sections = append(sections, sec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sections: %w", err)
	}
	return sections, nil
}

func (k *knowledgeStore) Count(ctx context.Context) (int, error) {
	var count int
	err := k.store.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sections`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count sections: %w", err)
	}
	return count, nil
}

func (k *knowledgeStore) Close() error {
	// The parent Store owns the connection.
	return nil
}

// profileStore implements driven.ProfileStore over the profile table.
// The record is stored as one JSON document, same shape as the file store.
type profileStore struct {
	store *Store
}

func (p *profileStore) Load(ctx context.Context) (*domain.Profile, error) {
	var record string
	err := p.store.db.QueryRowContext(ctx,
		`SELECT record FROM profile WHERE id = 1`,
	).Scan(&record)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewProfile(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("query profile: %w", err)
	}

	profile := domain.NewProfile()
	if err := json.Unmarshal([]byte(record), profile); err != nil {
		return nil, fmt.Errorf("parse profile record: %w", err)
	}
	return profile, nil
}

func (p *profileStore) Save(ctx context.Context, profile *domain.Profile) error {
	record, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	_, err = p.store.db.ExecContext(ctx,
		`INSERT INTO profile (id, record) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET record = excluded.record`,
		string(record),
	)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

func (p *profileStore) Close() error {
	// The parent Store owns the connection.
	return nil
}
