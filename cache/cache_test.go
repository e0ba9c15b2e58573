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

package cache

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMkKeyStable(t *testing.T) {
	assert.Equal(t, mkKey("what is your name"), mkKey("what is your name"))
}

func TestMkKeyDistinguishesInputs(t *testing.T) {
	assert.NotEqual(t, mkKey("hello"), mkKey("hello "))
	assert.NotEqual(t, mkKey("hello"), mkKey("Hello"))
}

func TestMkKeyPrefix(t *testing.T) {
	assert.True(t, strings.HasPrefix(mkKey("anything"), keyPrefix))
}

func TestNilAdapterIsNoop(t *testing.T) {
	var a *Adapter
	var dst map[string]any
	assert.False(t, a.Get("some text", &dst))
	a.Set("some text", map[string]any{"x": 1})
}
