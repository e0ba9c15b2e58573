// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
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

package media

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func mkDataset(t *testing.T, root string, labels map[string][]string) {
	for label, files := range labels {
		dir := filepath.Join(root, label)
		assert.NoError(t, os.MkdirAll(dir, 0755))
		for _, name := range files {
			assert.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("img"), 0644))
		}
	}
}

func testIndex(t *testing.T) *Index {
	generalDir := t.TempDir()
	classesDir := t.TempDir()
	mkDataset(t, generalDir, map[string][]string{
		"a": {"1.png", "2.png", "3.png"},
		"b": {"b.jpg"},
	})
	mkDataset(t, classesDir, map[string][]string{
		"A": {"x.jpeg"},
		"C": {"c1.png", "c2.png"},
		"1": {"one.png"},
	})
	idx, err := NewIndex(&Conf{GeneralDir: generalDir, ClassesDir: classesDir})
	assert.NoError(t, err)
	return idx
}

func TestImagePathPrefersGeneral(t *testing.T) {
	idx := testIndex(t)
	path, ok := idx.ImagePath("a")
	assert.True(t, ok)
	// middle image of the sorted set
	assert.Equal(t, "2.png", filepath.Base(path))
}

func TestImagePathFallsBackToClasses(t *testing.T) {
	idx := testIndex(t)
	path, ok := idx.ImagePath("C")
	assert.True(t, ok)
	assert.Equal(t, "c2.png", filepath.Base(path))
}

func TestImagePathCaseInsensitive(t *testing.T) {
	idx := testIndex(t)
	_, okLower := idx.ImagePath("b")
	_, okUpper := idx.ImagePath("B")
	assert.True(t, okLower)
	assert.True(t, okUpper)
}

func TestImagePathUnknownLabel(t *testing.T) {
	idx := testIndex(t)
	_, ok := idx.ImagePath("Z")
	assert.False(t, ok)
}

func TestImagePathFromRestrictsSource(t *testing.T) {
	idx := testIndex(t)
	_, ok := idx.ImagePathFrom("C", SourceGeneral)
	assert.False(t, ok)
	_, ok = idx.ImagePathFrom("C", SourceClasses)
	assert.True(t, ok)
	path, ok := idx.ImagePathFrom("A", SourceClasses)
	assert.True(t, ok)
	assert.Equal(t, "x.jpeg", filepath.Base(path))
}

func TestLabelsUnion(t *testing.T) {
	idx := testIndex(t)
	assert.Equal(t, []string{"1", "A", "B", "C"}, idx.Labels())
	assert.Equal(t, 4, idx.Size())
}

func TestMissingDatasetTolerated(t *testing.T) {
	idx, err := NewIndex(&Conf{GeneralDir: "/nonexistent/path"})
	assert.NoError(t, err)
	assert.True(t, idx.IsEmpty())
}

func TestNilConf(t *testing.T) {
	idx, err := NewIndex(nil)
	assert.NoError(t, err)
	assert.True(t, idx.IsEmpty())
	assert.Equal(t, []string{}, idx.Labels())
}

func TestLabelDirWithoutImagesIgnored(t *testing.T) {
	root := t.TempDir()
	mkDataset(t, root, map[string][]string{"d": {"notes.txt"}})
	idx, err := NewIndex(&Conf{GeneralDir: root})
	assert.NoError(t, err)
	_, ok := idx.ImagePath("D")
	assert.False(t, ok)
}
