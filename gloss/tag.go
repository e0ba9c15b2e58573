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

import "strings"

// PosTag is a Penn-style part-of-speech code as produced by
// the annotation capability (e.g. NN, NNS, VBG, PRP, PRP$, WP).
// The pipeline never inspects tags beyond the coarse category
// projection below.
type PosTag string

// TagCategory is a coarse projection of the external tagset.
// Role bucketing operates on categories only, so a change in
// the tagger's fine-grained vocabulary cannot silently alter
// the reordering behavior.
type TagCategory int

const (
	CatOther TagCategory = iota
	CatVerb
	CatNoun
	CatAdjective
	CatPronoun
)

// Category maps the tag to its coarse category. Both PRP and PRP$
// count as pronouns - possessives claim the subject bucket the same
// way personal pronouns do.
func (t PosTag) Category() TagCategory {
	s := string(t)
	switch {
	case strings.HasPrefix(s, "PRP"):
		return CatPronoun
	case strings.HasPrefix(s, "V"):
		return CatVerb
	case strings.HasPrefix(s, "N"):
		return CatNoun
	case strings.HasPrefix(s, "J"):
		return CatAdjective
	default:
		return CatOther
	}
}

// LemmaMode selects the lemmatization rules applied to a word.
type LemmaMode string

const (
	LemmaVerb      LemmaMode = "verb"
	LemmaNoun      LemmaMode = "noun"
	LemmaAdjective LemmaMode = "adjective"
	LemmaDefault   LemmaMode = "default"
)

// LemmaModeFor returns the lemmatization mode matching the tag's
// category. Anything outside verb/noun/adjective lemmatizes in the
// default mode.
func LemmaModeFor(tag PosTag) LemmaMode {
	switch tag.Category() {
	case CatVerb:
		return LemmaVerb
	case CatNoun:
		return LemmaNoun
	case CatAdjective:
		return LemmaAdjective
	default:
		return LemmaDefault
	}
}
