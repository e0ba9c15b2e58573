// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of ISLGEN.
//
//  ISLGEN is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  ISLGEN is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with ISLGEN.  If not, see <https://www.gnu.org/licenses/>.

package gloss

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/czcorpus/cnc-gokit/collections"
)

// islStopWords are the function words ISL omits - copulas,
// auxiliaries, articles, modals, a few prepositions and the
// neuter pronoun. Filtering matches the surface word before
// lemmatization, never the tag.
var islStopWords = []string{
	"is", "am", "are", "was", "were", "be", "been", "being",
	"the", "a", "an",
	"do", "does", "did",
	"has", "have", "had",
	"will", "shall", "would", "should", "could", "might",
	"to", "of", "for",
	"it", "its",
}

// whWords is the closed set of interrogative words recognized by
// exact surface match during role bucketing.
var whWords = []string{"what", "who", "where", "when", "why", "how", "which"}

// ResourcesConf configures the linguistic resources of a pipeline
// instance. All fields are optional.
type ResourcesConf struct {

	// WordSignsFile is a path to a JSON object mapping tokens to
	// the identifiers of dedicated word-level signs. Without it the
	// lookup table is empty and every token is fingerspelled.
	WordSignsFile string `json:"wordSignsFile"`

	// ExtraStopWords extends the built-in ISL stop-word set.
	ExtraStopWords []string `json:"extraStopWords"`
}

// Resources is the read-only linguistic configuration of a pipeline.
// It is built once at startup and safe to share between concurrent
// pipeline runs without locking.
type Resources struct {
	stopWords *collections.Set[string]
	whWords   *collections.Set[string]
	wordSigns map[string]string
}

func (r *Resources) IsStopWord(word string) bool {
	return r.stopWords.Contains(word)
}

func (r *Resources) IsWhWord(word string) bool {
	return r.whWords.Contains(word)
}

// WordSign returns the identifier of a dedicated word-level sign
// for the token, if one is configured.
func (r *Resources) WordSign(token string) (string, bool) {
	ans, ok := r.wordSigns[token]
	return ans, ok
}

func (r *Resources) NumWordSigns() int {
	return len(r.wordSigns)
}

// NewResources builds the pipeline resources from an optional
// configuration section. A nil conf produces the defaults (built-in
// stop words, empty word-sign table).
func NewResources(conf *ResourcesConf) (*Resources, error) {
	ans := &Resources{
		stopWords: collections.NewSet(islStopWords...),
		whWords:   collections.NewSet(whWords...),
		wordSigns: make(map[string]string),
	}
	if conf == nil {
		return ans, nil
	}
	for _, w := range conf.ExtraStopWords {
		ans.stopWords.Add(strings.ToLower(w))
	}
	if conf.WordSignsFile != "" {
		rawData, err := os.ReadFile(conf.WordSignsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load word signs: %w", err)
		}
		var table map[string]string
		if err := json.Unmarshal(rawData, &table); err != nil {
			return nil, fmt.Errorf("failed to parse word signs: %w", err)
		}
		for token, label := range table {
			ans.wordSigns[strings.ToLower(token)] = strings.ToLower(label)
		}
	}
	return ans, nil
}
