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

package tagging

import (
	"strings"

	"islgen/gloss"
)

// Lemmatize reduces an inflected word to its root form. Irregular
// forms are resolved first, then mode-specific suffix rules apply.
// The mode materially affects the result - "going" reduces to "go"
// only in verb mode - so callers must derive it from the POS tag
// (gloss.LemmaModeFor).
func (a *Annotator) Lemmatize(word string, mode gloss.LemmaMode) string {
	if lemma, ok := a.irregs[irregKey{form: word, mode: mode}]; ok {
		return lemma
	}
	switch mode {
	case gloss.LemmaVerb:
		return lemmatizeVerb(word)
	case gloss.LemmaNoun:
		return lemmatizeNoun(word)
	case gloss.LemmaAdjective:
		return lemmatizeAdjective(word)
	}
	return word
}

func lemmatizeVerb(word string) string {
	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 4:
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "ied") && len(word) > 4:
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "ing") && len(word) > 4:
		return undouble(word[:len(word)-3])
	case strings.HasSuffix(word, "ed") && len(word) > 3:
		return undouble(word[:len(word)-2])
	case hasSibilantESSuffix(word):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss") && len(word) > 3:
		return word[:len(word)-1]
	}
	return word
}

func lemmatizeNoun(word string) string {
	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 4:
		return word[:len(word)-3] + "y"
	case hasSibilantESSuffix(word):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss") && len(word) > 3:
		return word[:len(word)-1]
	}
	return word
}

func lemmatizeAdjective(word string) string {
	switch {
	case strings.HasSuffix(word, "iest") && len(word) > 5:
		return word[:len(word)-4] + "y"
	case strings.HasSuffix(word, "ier") && len(word) > 4:
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "est") && len(word) > 4:
		return undouble(word[:len(word)-3])
	case strings.HasSuffix(word, "er") && len(word) > 3:
		return undouble(word[:len(word)-2])
	}
	return word
}

// hasSibilantESSuffix reports whether the word ends with an -es
// attached after a sibilant or o (goes, watches, washes, fixes,
// misses) where stripping the whole -es restores the root.
func hasSibilantESSuffix(word string) bool {
	if len(word) < 4 {
		return false
	}
	for _, suff := range []string{"oes", "xes", "ses", "zes", "ches", "shes"} {
		if strings.HasSuffix(word, suff) {
			return true
		}
	}
	return false
}

// undouble collapses the doubled final consonant produced by
// -ing/-ed/-er suffixation (running -> runn -> run) while leaving
// legitimate doublings alone (fall, miss, buzz, see).
func undouble(stem string) string {
	if len(stem) < 3 {
		return stem
	}
	last := stem[len(stem)-1]
	if stem[len(stem)-2] != last {
		return stem
	}
	if strings.ContainsRune("aeioulsz", rune(last)) {
		return stem
	}
	return stem[:len(stem)-1]
}
