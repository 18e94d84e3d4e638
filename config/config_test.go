package config_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/I-Am-Dench/mixbuild/config"
	"github.com/I-Am-Dench/mixbuild/resources"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "mixbuild.cfg")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	c := config.Default()

	if c.Output != config.DefaultOutput || c.Language != "E" || c.Root != "." {
		t.Errorf("unexpected defaults: %+v", c)
	}

	if len(c.Translated) != len(resources.Languages) {
		t.Errorf("expected %d translated languages but got %d", len(resources.Languages), len(c.Translated))
	}

	if err := c.Validate(); err != nil {
		t.Error(err)
	}
}

func TestReadFile(t *testing.T) {
	path := writeConfig(t, `
LANGUAGE=0:G
OUTPUT=0:SUBTLS_G.MIX
TRANSLATED=0:G;F
OTHER=0:SUBTLS_E.FON;EXTRA.TRG
TRACE=7:1`)

	c, err := config.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if c.Language != "G" || c.Output != "SUBTLS_G.MIX" || !c.Trace {
		t.Errorf("unexpected config: %+v", c)
	}

	if c.Root != "." {
		t.Errorf("expected default root but got %q", c.Root)
	}

	candidates, err := c.Candidates()
	if err != nil {
		t.Fatal(err)
	}

	if !slices.Equal(candidates.Other, []string{"SUBTLS_E.FON", "EXTRA.TRG"}) {
		t.Errorf("unexpected other files: %v", candidates.Other)
	}

	if candidates.Sheets[0] != "INGQUO_G.TRG" {
		t.Errorf("expected German sheets but got %v", candidates.Sheets[0])
	}

	if len(candidates.Translated) != 2*len(resources.TranslatedTRx) {
		t.Errorf("expected %d translated files but got %d", 2*len(resources.TranslatedTRx), len(candidates.Translated))
	}
}

func TestReadFileInvalid(t *testing.T) {
	tests := map[string]string{
		"language":   "LANGUAGE=0:X",
		"translated": "TRANSLATED=0:E;EG",
		"output":     "OUTPUT=0:",
		"malformed":  "LANGUAGE",
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := config.ReadFile(writeConfig(t, data)); err == nil {
				t.Errorf("expected an error for %q", data)
			}
		})
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := config.ReadFile(filepath.Join(t.TempDir(), "missing.cfg"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected %v but got %v", fs.ErrNotExist, err)
	}
}
