package mix

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"strings"
)

// Candidate file names, grouped by where they come from.
type Candidates struct {
	// Subtitle sheet names. These are rewritten with TRxName before lookup.
	Sheets []string

	// Translated text resources, already named .TR<lang>.
	Translated []string

	// Fonts and other support files.
	Other []string
}

func (c Candidates) Len() int {
	return len(c.Sheets) + len(c.Translated) + len(c.Other)
}

// Returns the text resource name for a subtitle sheet.
//
// Names already carrying a .TR<lang> extension are returned unchanged.
// Otherwise the 4 character extension is replaced by .TR followed by the
// language code, which is the character just before the extension
// (WSTLGO_E.VQA becomes WSTLGO_E.TRE).
func TRxName(name string) string {
	if len(name) < 5 || name[len(name)-4:len(name)-1] == ".TR" {
		return name
	}

	return name[:len(name)-4] + ".TR" + name[len(name)-5:len(name)-4]
}

// Finds which candidates exist. A nil Source is the current working directory.
type Collector struct {
	Source fs.FS
	Trace  Logger
}

// Resolves every candidate against c.Source and returns an entry for each
// one that exists, in candidate order. Missing files are skipped.
func (c *Collector) Collect(candidates Candidates) ([]*Entry, error) {
	names := make([]string, 0, candidates.Len())
	for _, sheet := range candidates.Sheets {
		names = append(names, TRxName(sheet))
	}
	names = append(names, candidates.Translated...)
	names = append(names, candidates.Other...)

	tracef(c.Trace, "candidates=%s", strings.Join(names, ","))

	entries := []*Entry{}
	for _, name := range names {
		entry, ok, err := c.stat(name)
		if err != nil {
			return nil, fmt.Errorf("mix: collect: %w", err)
		}

		if !ok {
			continue
		}

		tracef(c.Trace, "%s: %08X", name, entry.Id)
		entries = append(entries, entry)
	}

	return entries, nil
}

func (c *Collector) stat(name string) (*Entry, bool, error) {
	info, err := fs.Stat(sourceOrWorkingDir(c.Source), name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, err
	}

	if !info.Mode().IsRegular() {
		return nil, false, nil
	}

	if info.Size() > math.MaxUint32 {
		return nil, false, &LimitError{"size of " + name, uint64(info.Size()), math.MaxUint32}
	}

	return NewEntry(name, uint32(info.Size())), true, nil
}
