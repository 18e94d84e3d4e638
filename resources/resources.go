// Package resources lists the files that may be packed into the
// subtitles archive.
package resources

import (
	"slices"

	"github.com/I-Am-Dench/mixbuild/mix"
)

// Language codes as they appear in TRx extensions.
var Languages = []byte{'E', 'G', 'F', 'I', 'S', 'R'}

const DefaultLanguage = 'E'

const (
	InGameQuotes = "INGQUO_"
	FontFileName = "SUBTLS_E.FON"
	VersionSheet = "SBTLVERS"
)

// Cutscenes with subtitle sheets. Each sheet is named <NAME>_<lang>.VQA
// after the video it belongs to.
var VideoSheets = []string{
	"WSTLGO", "BRLOGO", "INTRO", "MW_A", "MW_B01", "MW_B02", "MW_B03",
	"MW_B04", "MW_B05", "INTRGT", "MW_D", "MW_C01", "MW_C02", "MW_C03",
	"END01A", "END01B", "END01C", "END01D", "END01E", "END01F",
	"END03", "END04A", "END04B", "END04C", "END06", "TB_FLY",
}

// Text resources of the base game that can be replaced by translations.
var TranslatedTRx = []string{
	"ACTORS", "AUTOSAVE", "CLUES", "CLUETYPE", "CRIMES", "DLGMENU",
	"ERRORMSG", "HELP", "KIA", "KIACRED", "OPTIONS", "SCORERS",
	"SPINDEST", "VK", "ENDCRED", "POGO",
}

func ValidLanguage(code byte) bool {
	return slices.Contains(Languages, code)
}

func trx(name string, lang byte) string {
	return name + ".TR" + string(lang)
}

// Returns the subtitle sheets for lang. Video sheets still carry their
// .VQA extension and are resolved by mix.TRxName.
func Sheets(lang byte) []string {
	sheets := []string{trx(InGameQuotes+string(lang), lang)}
	for _, name := range VideoSheets {
		sheets = append(sheets, name+"_"+string(lang)+".VQA")
	}
	return sheets
}

// Returns every translated text resource name for the given languages.
func Translated(langs []byte) []string {
	names := []string{}
	for _, lang := range langs {
		for _, name := range TranslatedTRx {
			names = append(names, trx(name, lang))
		}
	}
	return names
}

func Other(lang byte) []string {
	return []string{FontFileName, trx(VersionSheet, lang)}
}

// Returns the candidates for a subtitles archive in lang. Translated
// resources are considered for each of translated.
func Candidates(lang byte, translated []byte) mix.Candidates {
	return mix.Candidates{
		Sheets:     Sheets(lang),
		Translated: Translated(translated),
		Other:      Other(lang),
	}
}
