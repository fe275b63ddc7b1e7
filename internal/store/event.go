package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// sequenceCounter numbers events across all event tables, so a quiz
// answer can be ordered against the word-list call that preceded it.
// ent has no atomic counter, hence the raw SQL.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

const (
	createSequenceTable = `CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL
	)`

	// takeSequence returns the current value and advances it, creating
	// the row on first use.
	takeSequence = `INSERT INTO global_sequence (id, next_val) VALUES (1, 2)
		ON CONFLICT (id) DO UPDATE SET next_val = next_val + 1
		RETURNING next_val - 1`
)

func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	if _, err := db.Exec(createSequenceTable); err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}
	return &sequenceCounter{db: db}, nil
}

// Next returns the next sequence number, starting at 1.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	if err := sc.db.QueryRowContext(ctx, takeSequence).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}
