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
	"regexp"
	"strings"
)

// reNonSign matches every character removed by normalization, i.e.
// anything that is not a word character, whitespace or the question
// mark. The question mark is kept as the interrogative marker.
// Note that `\w` is ASCII here; non-English letters are out of scope
// and get stripped like punctuation.
var reNonSign = regexp.MustCompile(`[^\w\s?]`)

// Normalize prepares raw user text for annotation: it lowercases the
// text, deletes punctuation except `?` and trims surrounding
// whitespace. Trimming comes last so that whitespace exposed by a
// removed trailing character is trimmed too, keeping the function
// idempotent. Normalize never fails - garbage input reduces to an
// empty string.
func Normalize(text string) string {
	text = reNonSign.ReplaceAllString(strings.ToLower(text), "")
	return strings.TrimSpace(text)
}
