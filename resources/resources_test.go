package resources_test

import (
	"slices"
	"testing"

	"github.com/I-Am-Dench/mixbuild/mix"
	"github.com/I-Am-Dench/mixbuild/resources"
)

func TestSheets(t *testing.T) {
	sheets := resources.Sheets('G')

	if sheets[0] != "INGQUO_G.TRG" {
		t.Errorf("expected first sheet INGQUO_G.TRG but got %s", sheets[0])
	}

	if !slices.Contains(sheets, "WSTLGO_G.VQA") {
		t.Errorf("expected WSTLGO_G.VQA in %v", sheets)
	}

	for _, sheet := range sheets {
		name := mix.TRxName(sheet)
		if name[len(name)-4:] != ".TRG" {
			t.Errorf("%s: expected .TRG resource but got %s", sheet, name)
		}

		if len(name) > mix.MaxNameLength {
			t.Errorf("%s: name is longer than %d characters", name, mix.MaxNameLength)
		}
	}
}

func TestTranslated(t *testing.T) {
	names := resources.Translated([]byte{'E', 'F'})

	if expected := 2 * len(resources.TranslatedTRx); len(names) != expected {
		t.Fatalf("expected %d names but got %d", expected, len(names))
	}

	for _, name := range []string{"OPTIONS.TRE", "OPTIONS.TRF", "VK.TRE"} {
		if !slices.Contains(names, name) {
			t.Errorf("expected %s in translated names", name)
		}
	}
}

func TestCandidates(t *testing.T) {
	candidates := resources.Candidates('E', resources.Languages)

	if !slices.Equal(candidates.Other, []string{"SUBTLS_E.FON", "SBTLVERS.TRE"}) {
		t.Errorf("unexpected other files: %v", candidates.Other)
	}

	if candidates.Len() != len(candidates.Sheets)+len(candidates.Translated)+2 {
		t.Errorf("unexpected candidate count: %d", candidates.Len())
	}
}

func TestValidLanguage(t *testing.T) {
	if !resources.ValidLanguage('E') {
		t.Errorf("expected E to be valid")
	}

	if resources.ValidLanguage('X') {
		t.Errorf("expected X to be invalid")
	}
}
