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
	"unicode"

	"islgen/gloss"
)

// Tag determines the part-of-speech tag of a single token: lexicon
// first, then numeral detection and suffix heuristics. Unknown words
// default to NN, which also makes the first unknown word of a
// sentence eligible for the subject role downstream.
func (a *Annotator) Tag(word string) gloss.PosTag {
	if tag, ok := a.lexicon[word]; ok {
		return tag
	}
	if isNumeral(word) {
		return "CD"
	}
	switch {
	case strings.HasSuffix(word, "ing") && len(word) > 4:
		return "VBG"
	case strings.HasSuffix(word, "ed") && len(word) > 3:
		return "VBD"
	case strings.HasSuffix(word, "ly") && len(word) > 3:
		return "RB"
	case strings.HasSuffix(word, "est") && len(word) > 4:
		return "JJS"
	case strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss") && len(word) > 3:
		return "NNS"
	}
	return "NN"
}

// Annotate tokenizes normalized text and tags every token,
// fulfilling the annotation contract of the gloss pipeline.
func (a *Annotator) Annotate(text string) []gloss.TaggedToken {
	tokens := Tokenize(text)
	ans := make([]gloss.TaggedToken, len(tokens))
	for i, tok := range tokens {
		ans[i] = gloss.TaggedToken{Word: tok, Tag: a.Tag(tok)}
	}
	return ans
}

func isNumeral(word string) bool {
	for _, ch := range word {
		if !unicode.IsDigit(ch) {
			return false
		}
	}
	return len(word) > 0
}
