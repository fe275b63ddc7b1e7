package store

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	assert.NotNil(t, s.Client())
	assert.NotNil(t, s.EventRepo())
}

func TestPragmasApplyToEveryConnection(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Hold two connections at once so the pool has to open a second one.
	first, err := s.DB().Conn(ctx)
	require.NoError(t, err)
	defer first.Close()
	second, err := s.DB().Conn(ctx)
	require.NoError(t, err)
	defer second.Close()

	for i, c := range []*sql.Conn{first, second} {
		for pragma, want := range map[string]string{
			"busy_timeout": "5000",
			"foreign_keys": "1",
			"synchronous":  "1", // NORMAL
		} {
			var got string
			require.NoError(t, c.QueryRowContext(ctx, "PRAGMA "+pragma).Scan(&got))
			assert.Equal(t, want, got, "conn %d PRAGMA %s", i, pragma)
		}
	}
}

func TestWithPragmas(t *testing.T) {
	assert.True(t, strings.HasPrefix(withPragmas("/tmp/v.db"), "/tmp/v.db?_pragma="))
	assert.True(t, strings.HasPrefix(withPragmas("file:x?mode=memory"), "file:x?mode=memory&_pragma="))
	assert.Equal(t, len(connPragmas), strings.Count(withPragmas("v.db"), "_pragma="))
}

func TestOpen_FileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "vocab.db")
	require.NoError(t, EnsureDir(path))

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	var mode string
	require.NoError(t, s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestDefaultDBPath(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "custom", "x.db")
		t.Setenv("VOCABCARDS_DB", p)
		got, err := DefaultDBPath()
		require.NoError(t, err)
		assert.Equal(t, p, got)
		assert.DirExists(t, filepath.Dir(p))
	})

	t.Run("xdg data home", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("VOCABCARDS_DB", "")
		t.Setenv("XDG_DATA_HOME", dir)
		got, err := DefaultDBPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "vocabcards", "vocabcards.db"), got)
	})
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	require.NoError(t, err)

	for i := range 5 {
		seq, err := sc.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), seq)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)

	for _, table := range []string{"llm_request_events", "quiz_session_events", "quiz_answer_events", "global_sequence"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		require.NoError(t, err, "table %s", table)
		assert.Equal(t, table, name)
	}
}
