// Package config loads the optional kosakata.yaml that overrides file names,
// classification markers and workbook layout.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/faizmokh/kosakata/internal/sheets"
	"github.com/faizmokh/kosakata/internal/vocab"
)

// DefaultFileName is looked up in the workspace root when no --config is given.
const DefaultFileName = "kosakata.yaml"

// ErrInvalid marks configuration that loaded but cannot be used.
var ErrInvalid = errors.New("invalid config")

// Config is the full set of tunables.
type Config struct {
	Words   Words   `yaml:"words"`
	Grades  Grades  `yaml:"grades"`
	Overlap Overlap `yaml:"overlap"`
	Text    Text    `yaml:"text"`
}

// Words configures the star report.
type Words struct {
	Input   string  `yaml:"input"`
	Output  string  `yaml:"output"`
	Markers Markers `yaml:"markers"`
	Labels  Labels  `yaml:"labels"`
}

// Markers are the substrings that classify an entry.
type Markers struct {
	Double string `yaml:"double"`
	Single string `yaml:"single"`
}

// Labels head each group in the star report.
type Labels struct {
	Double string `yaml:"double"`
	Single string `yaml:"single"`
	Plain  string `yaml:"plain"`
}

// Grades configures workbook extraction.
type Grades struct {
	Workbook string    `yaml:"workbook"`
	Output   string    `yaml:"output"`
	Exclude  []string  `yaml:"exclude"`
	Sections []Section `yaml:"sections"`
}

// Section maps a worksheet, by zero-based position, onto a grade heading.
type Section struct {
	Grade string `yaml:"grade"`
	Title string `yaml:"title"`
	Sheet int    `yaml:"sheet"`
}

// Overlap configures the publisher overlap analysis.
type Overlap struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// Text configures how input files are decoded.
type Text struct {
	Normalize bool `yaml:"normalize"`
}

// Default returns the built-in configuration.
func Default() Config {
	classifier := vocab.DefaultClassifier()

	layout := sheets.DefaultLayout()
	sections := make([]Section, 0, len(layout))
	for _, section := range layout {
		sections = append(sections, Section{Grade: section.Grade, Title: section.Title, Sheet: section.Sheet})
	}

	return Config{
		Words: Words{
			Input:  "words.txt",
			Output: "words_by_star.txt",
			Markers: Markers{
				Double: classifier.DoubleMarker,
				Single: classifier.SingleMarker,
			},
			Labels: Labels{
				Double: classifier.DoubleLabel,
				Single: classifier.SingleLabel,
				Plain:  classifier.PlainLabel,
			},
		},
		Grades: Grades{
			Workbook: "grade_vocabulary.xlsx",
			Output:   sheets.DefaultOutputPattern,
			Exclude:  sheets.DefaultExclude(),
			Sections: sections,
		},
		Overlap: Overlap{
			Input:  "data/vocabulary_level.json",
			Output: "data/vocabulary_overlap_analysis.json",
		},
	}
}

// Load reads the YAML file at path on top of Default. Keys missing from the
// file keep their default values; lists present in the file replace the
// defaults wholesale.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOptional behaves like Load but returns Default when path does not exist.
func LoadOptional(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate reports settings that would make a command misbehave.
func (c Config) Validate() error {
	if c.Words.Markers.Double == "" || c.Words.Markers.Single == "" {
		return fmt.Errorf("%w: words.markers must not be empty", ErrInvalid)
	}
	if c.Words.Input == "" || c.Words.Output == "" {
		return fmt.Errorf("%w: words.input and words.output are required", ErrInvalid)
	}
	if err := sheets.CheckOutputPattern(c.Grades.Output); err != nil {
		return fmt.Errorf("%w: grades.output: %w", ErrInvalid, err)
	}
	for i, section := range c.Grades.Sections {
		if section.Grade == "" || section.Title == "" {
			return fmt.Errorf("%w: grades.sections[%d] needs grade and title", ErrInvalid, i)
		}
		if section.Sheet < 0 {
			return fmt.Errorf("%w: grades.sections[%d].sheet is negative", ErrInvalid, i)
		}
	}
	return nil
}
