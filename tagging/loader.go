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

// Package tagging provides the linguistic annotation capability
// consumed by the gloss pipeline - a tokenizer, a lexicon+suffix
// part-of-speech tagger and a rule-based English lemmatizer. All the
// language data is embedded, loaded once by New; a parse failure is
// a fatal initialization condition for the whole service.
package tagging

import (
	"bufio"
	"embed"
	"fmt"
	"strings"

	"islgen/gloss"
)

//go:embed data/lexicon.tsv data/irregular.tsv
var langData embed.FS

// Annotator implements both capability interfaces of the gloss
// pipeline (gloss.Annotator, gloss.Lemmatizer). It is read-only
// after New and safe for concurrent use.
type Annotator struct {
	lexicon map[string]gloss.PosTag
	irregs  map[irregKey]string
}

type irregKey struct {
	form string
	mode gloss.LemmaMode
}

// New loads the embedded language data and returns a ready-to-use
// Annotator.
func New() (*Annotator, error) {
	ans := &Annotator{
		lexicon: make(map[string]gloss.PosTag),
		irregs:  make(map[irregKey]string),
	}
	if err := ans.loadLexicon(); err != nil {
		return nil, err
	}
	if err := ans.loadIrregulars(); err != nil {
		return nil, err
	}
	return ans, nil
}

func (a *Annotator) loadLexicon() error {
	return scanDataFile("data/lexicon.tsv", func(lineNum int, items []string) error {
		if len(items) != 2 {
			return fmt.Errorf("expected 2 columns, found %d", len(items))
		}
		a.lexicon[items[0]] = gloss.PosTag(items[1])
		return nil
	})
}

func (a *Annotator) loadIrregulars() error {
	return scanDataFile("data/irregular.tsv", func(lineNum int, items []string) error {
		if len(items) != 3 {
			return fmt.Errorf("expected 3 columns, found %d", len(items))
		}
		mode := gloss.LemmaMode(items[1])
		switch mode {
		case gloss.LemmaVerb, gloss.LemmaNoun, gloss.LemmaAdjective, gloss.LemmaDefault:
		default:
			return fmt.Errorf("unknown lemma mode %s", items[1])
		}
		a.irregs[irregKey{form: items[0], mode: mode}] = items[2]
		return nil
	})
}

// scanDataFile reads an embedded TSV file line by line, skipping
// blank lines and `#` comments.
func scanDataFile(path string, onLine func(lineNum int, items []string) error) error {
	f, err := langData.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	var lineNum int
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := onLine(lineNum, strings.Split(line, "\t")); err != nil {
			return fmt.Errorf("%s line %d: %w", path, lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return nil
}
