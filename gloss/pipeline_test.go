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
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeAnnotator splits on whitespace and tags from a fixed table,
// defaulting to NN like the production tagger.
type fakeAnnotator struct {
	tags map[string]PosTag
}

func (fa *fakeAnnotator) Annotate(text string) []TaggedToken {
	var ans []TaggedToken
	for _, w := range strings.Fields(text) {
		w = strings.Trim(w, "?")
		if w == "" {
			continue
		}
		tag, ok := fa.tags[w]
		if !ok {
			tag = "NN"
		}
		ans = append(ans, TaggedToken{Word: w, Tag: tag})
	}
	return ans
}

// fakeLemmatizer reduces words via a fixed verb table, otherwise
// returns the word unchanged.
type fakeLemmatizer struct {
	verbs map[string]string
}

func (fl *fakeLemmatizer) Lemmatize(word string, mode LemmaMode) string {
	if mode == LemmaVerb {
		if lemma, ok := fl.verbs[word]; ok {
			return lemma
		}
	}
	return word
}

func testPipeline(t *testing.T, res *Resources) *Pipeline {
	if res == nil {
		var err error
		res, err = NewResources(nil)
		assert.NoError(t, err)
	}
	ann := &fakeAnnotator{
		tags: map[string]PosTag{
			"what":  "WP",
			"who":   "WP",
			"how":   "WRB",
			"is":    "VBZ",
			"am":    "VBP",
			"are":   "VBP",
			"i":     "PRP",
			"you":   "PRP",
			"me":    "PRP",
			"my":    "PRP$",
			"your":  "PRP$",
			"going": "VBG",
			"help":  "VB",
			"eat":   "VBP",
			"to":    "TO",
			"the":   "DT",
			"2":     "CD",
		},
	}
	lem := &fakeLemmatizer{
		verbs: map[string]string{
			"going": "go",
			"eats":  "eat",
		},
	}
	return NewPipeline(ann, lem, res)
}

func TestNormalizeStripsPunctuation(t *testing.T) {
	assert.Equal(t, "hello world", Normalize("  Hello, World!  "))
}

func TestNormalizeKeepsQuestionMark(t *testing.T) {
	assert.Equal(t, "what is your name?", Normalize("What is your name?"))
}

func TestNormalizeIdempotent(t *testing.T) {
	once := Normalize("What's up, Doc?")
	assert.Equal(t, once, Normalize(once))
}

// a removed trailing character must not leave trailing whitespace
// behind, otherwise a second normalization would differ from the first
func TestNormalizeIdempotentWithTrailingPunctuation(t *testing.T) {
	assert.Equal(t, "hello", Normalize("hello !"))
	once := Normalize("hello !")
	assert.Equal(t, once, Normalize(once))
}

func TestNormalizeASCIIWordCharsOnly(t *testing.T) {
	assert.Equal(t, "caf", Normalize("café"))
}

func TestNormalizeEmpty(t *testing.T) {
	assert.Equal(t, "", Normalize("   ...!!!   "))
}

func TestReorderWhQuestion(t *testing.T) {
	p := testPipeline(t, nil)
	assert.Equal(t, []string{"your", "name", "what"}, p.Reorder("What is your name?"))
}

func TestReorderVerbMovesToEnd(t *testing.T) {
	p := testPipeline(t, nil)
	assert.Equal(t, []string{"i", "school", "go"}, p.Reorder("I am going to school"))
}

func TestReorderNoVerbKeepsOrder(t *testing.T) {
	p := testPipeline(t, nil)
	assert.Equal(t, []string{"hello", "my", "friend"}, p.Reorder("Hello my friend"))
}

// A pronoun appearing after the first noun has claimed the subject
// bucket still lands in the subject bucket. This conflation of the
// two roles is intentional - downstream consumers are calibrated
// against it.
func TestReorderPronounAfterNoun(t *testing.T) {
	p := testPipeline(t, nil)
	assert.Equal(t, []string{"teacher", "me", "help"}, p.Reorder("the teacher will help me"))
}

func TestReorderEmptyInput(t *testing.T) {
	p := testPipeline(t, nil)
	assert.Equal(t, []string{}, p.Reorder(""))
	assert.Equal(t, []string{}, p.Reorder("  ...!!!  "))
}

func TestReorderSubsetLaw(t *testing.T) {
	p := testPipeline(t, nil)
	ans := p.Reorder("I am going to school")
	expected := []string{"go", "i", "school"}
	sorted := append([]string{}, ans...)
	sort.Strings(sorted)
	assert.Equal(t, expected, sorted)
}

func TestReorderDeterminism(t *testing.T) {
	p := testPipeline(t, nil)
	text := "how are you going to school"
	assert.Equal(t, p.Reorder(text), p.Reorder(text))
	assert.Equal(t, p.SynthesizeSigns(text), p.SynthesizeSigns(text))
}

func TestSynthesizeEmptyInput(t *testing.T) {
	p := testPipeline(t, nil)
	assert.Equal(t, []SignUnit{}, p.SynthesizeSigns(""))
}

func TestSynthesizeFingerspelling(t *testing.T) {
	p := testPipeline(t, nil)
	ans := p.SynthesizeSigns("hi me")
	assert.Equal(t, []SignUnit{
		{Kind: UnitLetter, Label: "H", Original: "hi"},
		{Kind: UnitLetter, Label: "I", Original: "hi"},
		{Kind: UnitSpace, Label: "SPACE", Original: " "},
		{Kind: UnitLetter, Label: "M", Original: "me"},
		{Kind: UnitLetter, Label: "E", Original: "me"},
	}, ans)
}

func TestSynthesizeNoTrailingSpace(t *testing.T) {
	p := testPipeline(t, nil)
	for _, text := range []string{"hello my friend", "what is your name?", "i am going to school"} {
		ans := p.SynthesizeSigns(text)
		assert.NotEmpty(t, ans)
		assert.NotEqual(t, UnitSpace, ans[len(ans)-1].Kind)
	}
}

func TestSynthesizeDigits(t *testing.T) {
	p := testPipeline(t, nil)
	ans := p.SynthesizeSigns("2")
	assert.Equal(t, []SignUnit{
		{Kind: UnitNumber, Label: "2", Original: "2"},
	}, ans)
}

func TestSynthesizeSkipsNonAlphanumeric(t *testing.T) {
	res, err := NewResources(nil)
	assert.NoError(t, err)
	ans := synthesize(res, []string{"a_1"})
	assert.Equal(t, []SignUnit{
		{Kind: UnitLetter, Label: "A", Original: "a_1"},
		{Kind: UnitNumber, Label: "1", Original: "a_1"},
	}, ans)
}

func TestSynthesizeNoWordSignsByDefault(t *testing.T) {
	p := testPipeline(t, nil)
	for _, unit := range p.SynthesizeSigns("hello my friend") {
		assert.NotEqual(t, UnitWord, unit.Kind)
	}
}

func TestSynthesizeWordSignLookup(t *testing.T) {
	res, err := NewResources(nil)
	assert.NoError(t, err)
	res.wordSigns["hello"] = "hello"
	ans := synthesize(res, []string{"hello", "me"})
	assert.Equal(t, SignUnit{Kind: UnitWord, Label: "hello", Original: "hello"}, ans[0])
	assert.Equal(t, SignUnit{Kind: UnitSpace, Label: "SPACE", Original: " "}, ans[1])
}

func TestReorderFallbackOnEmptyBuckets(t *testing.T) {
	res, err := NewResources(nil)
	assert.NoError(t, err)
	// bucketing never drops a token, so the fallback is exercised
	// directly on the internal function
	assert.Equal(t, []string{}, reorderToISL(res, []GlossToken{}))
}

func TestExtraStopWords(t *testing.T) {
	res, err := NewResources(&ResourcesConf{ExtraStopWords: []string{"Very"}})
	assert.NoError(t, err)
	assert.True(t, res.IsStopWord("very"))
	assert.True(t, res.IsStopWord("is"))
}

func TestTagCategories(t *testing.T) {
	assert.Equal(t, CatVerb, PosTag("VBG").Category())
	assert.Equal(t, CatNoun, PosTag("NNS").Category())
	assert.Equal(t, CatAdjective, PosTag("JJ").Category())
	assert.Equal(t, CatPronoun, PosTag("PRP").Category())
	assert.Equal(t, CatPronoun, PosTag("PRP$").Category())
	assert.Equal(t, CatOther, PosTag("DT").Category())
}

func TestLemmaModeFor(t *testing.T) {
	assert.Equal(t, LemmaVerb, LemmaModeFor("VBD"))
	assert.Equal(t, LemmaNoun, LemmaModeFor("NN"))
	assert.Equal(t, LemmaAdjective, LemmaModeFor("JJR"))
	assert.Equal(t, LemmaDefault, LemmaModeFor("WRB"))
	assert.Equal(t, LemmaDefault, LemmaModeFor("PRP"))
}
