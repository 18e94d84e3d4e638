package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	_ "github.com/mattn/go-sqlite3"

	"github.com/I-Am-Dench/mixbuild/database/mixindex"
)

type IndexRowTable struct {
	*tabwriter.Writer
}

func NewIndexRowTable() *IndexRowTable {
	tab := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tab, "position\tid\tname\toffset\tlength")
	return &IndexRowTable{tab}
}

func (t *IndexRowTable) Row(row mixindex.Row) *IndexRowTable {
	fmt.Fprintf(t, "%d\t%08X\t%s\t%d\t%d\n", row.Position, row.Id, row.Name, row.Offset, row.Length)
	return t
}

func openIndex(path string) *sql.DB {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		Error.Fatalf("index does not exist: %s", path)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		Error.Fatal(err)
	}

	return db
}

func doIndex(args []string) {
	SetLogPrefix("mixbuild(index): ")

	flagset := flag.NewFlagSet("index", flag.ExitOnError)
	find := flagset.String("find", "", "Show only the entry of this file name.")
	flagset.Parse(args)

	indexName := GetArgFilename(flagset, 0, "index name not provided")
	archiveName := filepath.Base(GetArgFilename(flagset, 1, "archive name not provided"))

	db := openIndex(indexName)
	defer db.Close()

	if len(*find) > 0 {
		row, err := mixindex.Lookup(db, archiveName, *find)
		if errors.Is(err, mixindex.ErrNotIndexed) {
			Error.Printf("failed to find \"%s\" in %s", *find, archiveName)
			os.Exit(3)
		}

		if err != nil {
			Error.Fatal(err)
		}

		NewIndexRowTable().Row(row).Flush()
		return
	}

	rows, err := mixindex.Rows(db, archiveName)
	if err != nil {
		Error.Fatal(err)
	}

	tab := NewIndexRowTable()
	for _, row := range rows {
		tab.Row(row)
	}
	tab.Flush()
}
