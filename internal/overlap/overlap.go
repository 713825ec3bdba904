// Package overlap measures how unit vocabulary is shared between textbook
// publishers.
package overlap

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"
)

// Description is written into the metadata of every analysis.
const Description = "출판사별 단원 어휘의 중복 분포 분석 결과"

// ErrMalformed marks input that does not have the expected document shape.
var ErrMalformed = errors.New("malformed vocabulary document")

// Dataset is the parsed vocabulary document.
type Dataset struct {
	// Publishers holds the publisher ids, sorted.
	Publishers []string
	Units      []Unit
}

// Unit is one textbook unit. Each entry maps publisher ids to the word that
// publisher uses for the entry.
type Unit struct {
	Entries []map[string]any
}

type document struct {
	Metadata *struct {
		Publishers map[string]json.RawMessage `json:"publishers"`
	} `json:"metadata"`
	Units []struct {
		Entries []map[string]any `json:"entries"`
	} `json:"units"`
}

// Load decodes a vocabulary document from r.
func Load(r io.Reader) (Dataset, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Dataset{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if doc.Metadata == nil || doc.Metadata.Publishers == nil {
		return Dataset{}, fmt.Errorf("%w: metadata.publishers is missing", ErrMalformed)
	}

	ds := Dataset{
		Publishers: make([]string, 0, len(doc.Metadata.Publishers)),
		Units:      make([]Unit, 0, len(doc.Units)),
	}
	for id := range doc.Metadata.Publishers {
		ds.Publishers = append(ds.Publishers, id)
	}
	sort.Strings(ds.Publishers)
	for _, unit := range doc.Units {
		ds.Units = append(ds.Units, Unit{Entries: unit.Entries})
	}
	return ds, nil
}

// Analysis is the JSON report written by the overlap command.
type Analysis struct {
	Metadata       Metadata         `json:"metadata"`
	AllPublishers  Shared           `json:"all_publishers_overlap"`
	WordPublishers []WordPublishers `json:"word_publishers"`
}

// Metadata describes where an Analysis came from.
type Metadata struct {
	Source      string `json:"source"`
	Generated   string `json:"generated"`
	Description string `json:"description"`
}

// Shared lists the words every publisher uses.
type Shared struct {
	Count int      `json:"count"`
	Words []string `json:"words"`
}

// WordPublishers lists the publishers that use a word.
type WordPublishers struct {
	Word           string   `json:"word"`
	PublisherCount int      `json:"publisher_count"`
	Publishers     []string `json:"publishers"`
}

// Analyze computes the words shared by all publishers and the publisher set of
// every word. Only non-empty string values count as words. With no publishers
// the shared list is empty.
func Analyze(ds Dataset, source string, generated time.Time) Analysis {
	perPublisher := make(map[string]map[string]struct{}, len(ds.Publishers))
	for _, pub := range ds.Publishers {
		perPublisher[pub] = make(map[string]struct{})
	}
	wordPublishers := make(map[string]map[string]struct{})

	for _, unit := range ds.Units {
		for _, entry := range unit.Entries {
			for _, pub := range ds.Publishers {
				word, ok := entry[pub].(string)
				if !ok || word == "" {
					continue
				}
				perPublisher[pub][word] = struct{}{}
				if wordPublishers[word] == nil {
					wordPublishers[word] = make(map[string]struct{})
				}
				wordPublishers[word][pub] = struct{}{}
			}
		}
	}

	shared := []string{}
	if len(ds.Publishers) > 0 {
		for word := range perPublisher[ds.Publishers[0]] {
			if usedByAll(word, ds.Publishers[1:], perPublisher) {
				shared = append(shared, word)
			}
		}
	}
	sort.Strings(shared)

	words := make([]string, 0, len(wordPublishers))
	for word := range wordPublishers {
		words = append(words, word)
	}
	sort.Strings(words)

	byWord := make([]WordPublishers, 0, len(words))
	for _, word := range words {
		pubs := sortedKeys(wordPublishers[word])
		byWord = append(byWord, WordPublishers{
			Word:           word,
			PublisherCount: len(pubs),
			Publishers:     pubs,
		})
	}

	return Analysis{
		Metadata: Metadata{
			Source:      source,
			Generated:   generated.Format("2006-01-02"),
			Description: Description,
		},
		AllPublishers: Shared{
			Count: len(shared),
			Words: shared,
		},
		WordPublishers: byWord,
	}
}

// Encode writes a as two-space indented JSON without escaping non-ASCII or
// HTML characters.
func Encode(w io.Writer, a Analysis) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(a)
}

func usedByAll(word string, publishers []string, perPublisher map[string]map[string]struct{}) bool {
	for _, pub := range publishers {
		if _, ok := perPublisher[pub][word]; !ok {
			return false
		}
	}
	return true
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
