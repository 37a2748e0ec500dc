package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"net/url"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore keeps the history of finished passes.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates the history database at path. Foreign keys
// are enforced on every connection so category rows cannot outlive their pass.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("history database path is required")
	}

	params := url.Values{}
	params.Set("_foreign_keys", "on")
	params.Set("_busy_timeout", "5000")
	db, err := sql.Open("sqlite3", path+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)

	store := &SQLiteStore{db: db}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
