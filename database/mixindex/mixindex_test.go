package mixindex_test

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/I-Am-Dench/mixbuild/database/mixindex"
	"github.com/I-Am-Dench/mixbuild/mix"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "index.sqlite"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func entries() []*mix.Entry {
	entries := []*mix.Entry{
		mix.NewEntry("WSTLGO_E.TRE", 7),
		mix.NewEntry("A.TXT", 10),
		mix.NewEntry("B.TXT", 5),
	}
	mix.Sort(entries)

	offset := uint32(0)
	for _, entry := range entries {
		entry.Offset = offset
		offset += entry.Size
	}

	return entries
}

func TestExport(t *testing.T) {
	db := openDB(t)
	packed := entries()

	summary := mix.Summary{NumFiles: 3, DataSize: 22, Size: 64, Crc: 0xdeadbeef}
	if err := mixindex.Export(db, "SUBTITLES.MIX", summary, packed); err != nil {
		t.Fatal(err)
	}

	rows, err := mixindex.Rows(db, "SUBTITLES.MIX")
	if err != nil {
		t.Fatal(err)
	}

	if len(rows) != len(packed) {
		t.Fatalf("expected %d rows but got %d", len(packed), len(rows))
	}

	for i, row := range rows {
		entry := packed[i]
		if row.Position != i || row.Id != entry.Id || row.Name != entry.Name || row.Offset != entry.Offset || row.Length != entry.Size {
			t.Errorf("%d: expected %v but got %+v", i, entry, row)
		}
	}

	var crc uint32
	if err := db.QueryRow("SELECT crc FROM archives WHERE name = ?", "SUBTITLES.MIX").Scan(&crc); err != nil {
		t.Fatal(err)
	}

	if crc != summary.Crc {
		t.Errorf("expected crc %08x but got %08x", summary.Crc, crc)
	}
}

func TestExportReplaces(t *testing.T) {
	db := openDB(t)

	if err := mixindex.Export(db, "SUBTITLES.MIX", mix.Summary{NumFiles: 3}, entries()); err != nil {
		t.Fatal(err)
	}

	single := []*mix.Entry{mix.NewEntry("A.TXT", 10)}
	if err := mixindex.Export(db, "SUBTITLES.MIX", mix.Summary{NumFiles: 1}, single); err != nil {
		t.Fatal(err)
	}

	rows, err := mixindex.Rows(db, "SUBTITLES.MIX")
	if err != nil {
		t.Fatal(err)
	}

	if len(rows) != 1 {
		t.Errorf("expected 1 row but got %d", len(rows))
	}
}

func TestLookup(t *testing.T) {
	db := openDB(t)

	if err := mixindex.Export(db, "SUBTITLES.MIX", mix.Summary{NumFiles: 3}, entries()); err != nil {
		t.Fatal(err)
	}

	row, err := mixindex.Lookup(db, "SUBTITLES.MIX", "a.txt")
	if err != nil {
		t.Fatal(err)
	}

	if row.Name != "A.TXT" || row.Length != 10 {
		t.Errorf("unexpected row: %+v", row)
	}

	if _, err := mixindex.Lookup(db, "SUBTITLES.MIX", "C.TXT"); !errors.Is(err, mixindex.ErrNotIndexed) {
		t.Errorf("expected %v but got %v", mixindex.ErrNotIndexed, err)
	}

	if _, err := mixindex.Lookup(db, "OTHER.MIX", "A.TXT"); !errors.Is(err, mixindex.ErrNotIndexed) {
		t.Errorf("expected %v but got %v", mixindex.ErrNotIndexed, err)
	}
}
