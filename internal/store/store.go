package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"github.com/abhisek/vocabcards/ent"
	"github.com/abhisek/vocabcards/internal/config"
)

// connPragmas are applied by the driver to every pooled connection.
// busy_timeout in particular is per connection, so a one-off Exec would
// leave the rest of the pool without it.
var connPragmas = []string{
	"busy_timeout(5000)",
	"journal_mode(WAL)",
	"foreign_keys(1)",
	"synchronous(NORMAL)",
}

// Store is the event log database: an ent client over SQLite plus the
// global sequence shared by every event table.
type Store struct {
	db     *sql.DB
	client *ent.Client
	events *eventRepo
}

// Open opens or creates the database at dsn, migrates the schema and
// prepares the event sequence. dsn is a file path or a file: URI.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", withPragmas(dsn))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		client.Close()
		return nil, err
	}

	return &Store{
		db:     db,
		client: client,
		events: &eventRepo{client: client, db: db, seq: seq},
	}, nil
}

func withPragmas(dsn string) string {
	q := url.Values{"_pragma": connPragmas}.Encode()
	if strings.Contains(dsn, "?") {
		return dsn + "&" + q
	}
	return dsn + "?" + q
}

func (s *Store) Client() *ent.Client { return s.client }

// DB is the raw handle used for the sequence table and usage queries.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Close() error { return s.client.Close() }

func (s *Store) EventRepo() EventRepo { return s.events }

// DefaultDBPath is VOCABCARDS_DB when set, otherwise vocabcards.db in
// the XDG data directory. The parent directory is created.
func DefaultDBPath() (string, error) {
	if p := os.Getenv("VOCABCARDS_DB"); p != "" {
		return p, EnsureDir(p)
	}

	p := filepath.Join(config.DefaultDataDir(), "vocabcards.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
