// Package mixindex records packed archive tables in a SQL database, so
// that tooling can look up entries without parsing the archive.
//
// The package is written against database/sql and is used with the
// sqlite3 driver:
//
//	import _ "github.com/mattn/go-sqlite3"
//
//	db, err := sql.Open("sqlite3", "index.sqlite")
package mixindex

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/I-Am-Dench/mixbuild/mix"
)

var ErrNotIndexed = errors.New("not indexed")

const schema = `
CREATE TABLE IF NOT EXISTS archives (
	name      TEXT PRIMARY KEY,
	num_files INTEGER NOT NULL,
	data_size INTEGER NOT NULL,
	size      INTEGER NOT NULL,
	crc       INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS entries (
	archive     TEXT    NOT NULL REFERENCES archives(name) ON DELETE CASCADE,
	position    INTEGER NOT NULL,
	id          INTEGER NOT NULL,
	name        TEXT    NOT NULL,
	data_offset INTEGER NOT NULL,
	data_length INTEGER NOT NULL,
	PRIMARY KEY (archive, position)
);
CREATE INDEX IF NOT EXISTS entries_by_id ON entries(archive, id);`

type Row struct {
	Archive  string
	Position int
	Id       uint32
	Name     string
	Offset   uint32
	Length   uint32
}

func Init(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("mixindex: init: %w", err)
	}
	return nil
}

// Replaces the recorded table of the named archive with entries, which must
// be in table order with offsets assigned.
func Export(db *sql.DB, name string, summary mix.Summary, entries []*mix.Entry) (err error) {
	if err := Init(db); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("mixindex: export: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err := tx.Exec("DELETE FROM entries WHERE archive = ?", name); err != nil {
		return fmt.Errorf("mixindex: export: %w", err)
	}

	if _, err := tx.Exec("INSERT OR REPLACE INTO archives (name, num_files, data_size, size, crc) VALUES (?, ?, ?, ?, ?)",
		name, summary.NumFiles, summary.DataSize, summary.Size, summary.Crc); err != nil {
		return fmt.Errorf("mixindex: export: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO entries (archive, position, id, name, data_offset, data_length) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("mixindex: export: %w", err)
	}
	defer stmt.Close()

	for i, entry := range entries {
		if _, err := stmt.Exec(name, i, entry.Id, entry.Name, entry.Offset, entry.Size); err != nil {
			return fmt.Errorf("mixindex: export: %s: %w", entry.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("mixindex: export: %w", err)
	}

	return nil
}

// Finds the row for a file name in the named archive by its id.
func Lookup(db *sql.DB, archive, name string) (Row, error) {
	row := Row{}
	err := db.QueryRow("SELECT archive, position, id, name, data_offset, data_length FROM entries WHERE archive = ? AND id = ? ORDER BY position LIMIT 1",
		archive, mix.Id(name)).Scan(&row.Archive, &row.Position, &row.Id, &row.Name, &row.Offset, &row.Length)
	if errors.Is(err, sql.ErrNoRows) {
		return Row{}, fmt.Errorf("mixindex: lookup: %s: %w", name, ErrNotIndexed)
	}

	if err != nil {
		return Row{}, fmt.Errorf("mixindex: lookup: %s: %w", name, err)
	}

	return row, nil
}

// Returns every recorded row of the named archive in table order.
func Rows(db *sql.DB, archive string) ([]Row, error) {
	rows, err := db.Query("SELECT archive, position, id, name, data_offset, data_length FROM entries WHERE archive = ? ORDER BY position", archive)
	if err != nil {
		return nil, fmt.Errorf("mixindex: rows: %w", err)
	}
	defer rows.Close()

	result := []Row{}
	for rows.Next() {
		row := Row{}
		if err := rows.Scan(&row.Archive, &row.Position, &row.Id, &row.Name, &row.Offset, &row.Length); err != nil {
			return nil, fmt.Errorf("mixindex: rows: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("mixindex: rows: %w", err)
	}

	return result, nil
}
