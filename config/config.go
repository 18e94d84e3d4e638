package config

import (
	"fmt"
	"os"

	"github.com/I-Am-Dench/mixbuild/encoding/ldf"
	"github.com/I-Am-Dench/mixbuild/mix"
	"github.com/I-Am-Dench/mixbuild/resources"
)

const DefaultOutput = "SUBTITLES.MIX"

// Settings for packing an archive. Config files use the ldf text format:
//
//	LANGUAGE=0:E
//	OUTPUT=0:SUBTITLES.MIX
//	TRANSLATED=0:E;G;F
type Config struct {
	Language string `ldf:"LANGUAGE"`
	Output   string `ldf:"OUTPUT"`

	// Directory the candidate files are read from.
	Root string `ldf:"ROOT"`

	// Optional SQLite database the packed entry table is exported to.
	Index string `ldf:"INDEX"`

	// Languages to consider translated text resources for.
	Translated []string `ldf:"TRANSLATED"`

	// When set, replace the stock candidate lists.
	Sheets []string `ldf:"SHEETS"`
	Other  []string `ldf:"OTHER"`

	Trace bool `ldf:"TRACE"`
}

func Default() *Config {
	translated := []string{}
	for _, lang := range resources.Languages {
		translated = append(translated, string(lang))
	}

	return &Config{
		Language:   string(resources.DefaultLanguage),
		Output:     DefaultOutput,
		Root:       ".",
		Translated: translated,
	}
}

// Decodes the config file at path over the default settings.
func ReadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	config := Default()
	if err := ldf.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func language(code string) (byte, error) {
	if len(code) != 1 || !resources.ValidLanguage(code[0]) {
		return 0, fmt.Errorf("config: unsupported language: %q", code)
	}
	return code[0], nil
}

func (config *Config) Validate() error {
	if _, err := language(config.Language); err != nil {
		return err
	}

	for _, code := range config.Translated {
		if _, err := language(code); err != nil {
			return err
		}
	}

	if len(config.Output) == 0 {
		return fmt.Errorf("config: output name not provided")
	}

	return nil
}

// Returns the candidate files described by the config.
func (config *Config) Candidates() (mix.Candidates, error) {
	if err := config.Validate(); err != nil {
		return mix.Candidates{}, err
	}

	lang, _ := language(config.Language)

	translated := []byte{}
	for _, code := range config.Translated {
		translated = append(translated, code[0])
	}

	candidates := resources.Candidates(lang, translated)
	if len(config.Sheets) > 0 {
		candidates.Sheets = config.Sheets
	}

	if len(config.Other) > 0 {
		candidates.Other = config.Other
	}

	return candidates, nil
}
