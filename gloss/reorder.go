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

// reorderToISL turns an English-ordered gloss into ISL presentation
// order. English is SVO, ISL is SOV with interrogatives at the end,
// so the tokens are bucketed by syntactic role in a single pass and
// the buckets are concatenated as
// subject ++ object/modifier ++ verb ++ wh.
// Within a bucket the original relative order is preserved (a stable
// bucket sort keyed by role).
//
// The subject heuristic: every pronoun-class token is subject-class,
// and the first noun-class token claims the subject bucket as well.
// Any later noun goes to object/modifier.
func reorderToISL(res *Resources, tokens []GlossToken) []string {
	var subjects, objects, verbs, wh []string

	for _, tok := range tokens {
		switch {
		case res.IsWhWord(tok.Lemma):
			wh = append(wh, tok.Lemma)
		case tok.Tag.Category() == CatVerb:
			verbs = append(verbs, tok.Lemma)
		case tok.Tag.Category() == CatPronoun,
			tok.Tag.Category() == CatNoun && len(subjects) == 0:
			subjects = append(subjects, tok.Lemma)
		default:
			objects = append(objects, tok.Lemma)
		}
	}

	ans := make([]string, 0, len(tokens))
	ans = append(ans, subjects...)
	ans = append(ans, objects...)
	ans = append(ans, verbs...)
	ans = append(ans, wh...)

	// with non-empty input and nothing bucketed, fall back to the
	// original order
	if len(ans) == 0 && len(tokens) > 0 {
		for _, tok := range tokens {
			ans = append(ans, tok.Lemma)
		}
	}
	return ans
}
