package splitmap

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// ConvertDB is a manifest of completed conversions, keyed by the SHA-1 of
// the input image content together with the options that shaped the output.
type ConvertDB struct {
	db *sql.DB
}

func NewConvertDB(file string) (*ConvertDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS conversion (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL, normalized INTEGER NOT NULL, format TEXT NOT NULL, width INTEGER NOT NULL, height INTEGER NOT NULL, min INTEGER NOT NULL, max INTEGER NOT NULL, output TEXT NOT NULL, UNIQUE(sha1, normalized, format, width, height))"); err != nil {
		return nil, err
	}

	return &ConvertDB{
		db: db,
	}, nil
}

func (db *ConvertDB) Close() error {
	return db.db.Close()
}

// FindOutput returns the recorded output path for a previous conversion of
// the same content with the same options, or "" if there is none.
func (db *ConvertDB) FindOutput(sha string, normalized bool, format string, width, height int) (string, error) {
	var output string
	switch err := db.db.QueryRow("SELECT output FROM conversion WHERE sha1 = ? AND normalized = ? AND format = ? AND width = ? AND height = ?", sha, normalized, format, width, height).Scan(&output); err {
	case sql.ErrNoRows:
		return "", nil
	case nil:
		return output, nil
	default:
		return "", err
	}
}

// Record upserts the manifest row for a completed conversion.
func (db *ConvertDB) Record(sha string, normalized bool, format string, width, height int, min, max uint16, output string) error {
	if _, err := db.db.Exec("INSERT OR REPLACE INTO conversion (sha1, normalized, format, width, height, min, max, output) VALUES (?, ?, ?, ?, ?, ?, ?, ?)", sha, normalized, format, width, height, min, max, output); err != nil {
		return err
	}
	return nil
}
