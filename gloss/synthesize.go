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
	"strings"
	"unicode"
)

// synthesize expands ISL-ordered tokens into displayable sign units.
// A token with a dedicated word sign becomes a single `word` unit;
// anything else is fingerspelled character by character (letters
// uppercased, digits kept, other characters skipped silently).
// Tokens are separated by `space` units; the trailing one is removed
// afterwards so a finished sequence never ends with a space.
func synthesize(res *Resources, tokens []string) []SignUnit {
	if len(tokens) == 0 {
		return []SignUnit{}
	}
	ans := make([]SignUnit, 0, len(tokens)*4)
	for _, token := range tokens {
		if label, ok := res.WordSign(token); ok {
			ans = append(ans, SignUnit{
				Kind:     UnitWord,
				Label:    label,
				Original: token,
			})

		} else {
			for _, ch := range token {
				if unicode.IsLetter(ch) {
					ans = append(ans, SignUnit{
						Kind:     UnitLetter,
						Label:    strings.ToUpper(string(ch)),
						Original: token,
					})

				} else if unicode.IsDigit(ch) {
					ans = append(ans, SignUnit{
						Kind:     UnitNumber,
						Label:    string(ch),
						Original: token,
					})
				}
			}
		}
		ans = append(ans, SignUnit{
			Kind:     UnitSpace,
			Label:    "SPACE",
			Original: " ",
		})
	}
	if len(ans) > 0 && ans[len(ans)-1].Kind == UnitSpace {
		ans = ans[:len(ans)-1]
	}
	return ans
}
