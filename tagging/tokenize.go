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

import "regexp"

// reToken matches a single word token. The input is already
// normalized (lowercase, punctuation stripped except `?`), so a
// token is simply a run of word characters (ASCII `\w`, matching
// the normalizer); the question marker never becomes a token of
// its own.
var reToken = regexp.MustCompile(`\w+`)

// Tokenize splits normalized text into word tokens in appearance
// order.
func Tokenize(text string) []string {
	return reToken.FindAllString(text, -1)
}
