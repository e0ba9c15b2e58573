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

// Package gloss converts free-form English text into a sequence of
// displayable sign units approximating Indian Sign Language grammar.
// ISL uses Subject-Object-Verb order and drops helper words, so the
// pipeline normalizes the text, filters ISL-omitted function words,
// lemmatizes the rest, reorders it into SOV-plus-question order and
// expands each token into word signs or fingerspelled letters/digits.
//
// Each pipeline run is a pure function of its input plus the
// immutable Resources, so a single Pipeline may serve any number of
// concurrent callers.
package gloss

// TaggedToken is a normalized surface word paired with its
// part-of-speech tag, in original appearance order.
type TaggedToken struct {
	Word string
	Tag  PosTag
}

// GlossToken is a tagged token after lemmatization; the tag is
// retained unchanged for role classification.
type GlossToken struct {
	Lemma string
	Tag   PosTag
}

// Annotator tokenizes cleaned text and tags each token. Verb tags
// start with V, noun tags with N, adjective tags with J and pronoun
// tags with PRP (see PosTag.Category).
type Annotator interface {
	Annotate(text string) []TaggedToken
}

// Lemmatizer reduces an inflected word to its root form using the
// rules of the given mode.
type Lemmatizer interface {
	Lemmatize(word string, mode LemmaMode) string
}

// Pipeline is the gloss reordering and sign-sequence synthesis
// pipeline. Construct it once via NewPipeline and share it freely.
type Pipeline struct {
	ann Annotator
	lem Lemmatizer
	res *Resources
}

func NewPipeline(ann Annotator, lem Lemmatizer, res *Resources) *Pipeline {
	return &Pipeline{
		ann: ann,
		lem: lem,
		res: res,
	}
}

// glossTokens runs the stages shared by Reorder and SynthesizeSigns:
// normalization, annotation, stop-word filtering and tag-directed
// lemmatization. The result is a subset of the annotated tokens in
// their original order.
func (p *Pipeline) glossTokens(text string) []GlossToken {
	text = Normalize(text)
	if text == "" {
		return []GlossToken{}
	}
	tagged := p.ann.Annotate(text)
	ans := make([]GlossToken, 0, len(tagged))
	for _, tok := range tagged {
		if p.res.IsStopWord(tok.Word) {
			continue
		}
		ans = append(ans, GlossToken{
			Lemma: p.lem.Lemmatize(tok.Word, LemmaModeFor(tok.Tag)),
			Tag:   tok.Tag,
		})
	}
	return ans
}

// Reorder returns the ISL-ordered gloss of the text - the lemmas of
// all non-stop-word tokens in SOV-plus-question order. This is the
// introspection entry point; callers needing rendered signs use
// SynthesizeSigns.
func (p *Pipeline) Reorder(text string) []string {
	return reorderToISL(p.res, p.glossTokens(text))
}

// SynthesizeSigns converts the text into the final ordered sign-unit
// sequence. It is deterministic and total: empty or garbage input
// yields an empty sequence, never an error.
func (p *Pipeline) SynthesizeSigns(text string) []SignUnit {
	return synthesize(p.res, p.Reorder(text))
}
