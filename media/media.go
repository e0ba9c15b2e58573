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

// Package media maps sign labels to representative image files.
// Labels come from dataset directory names scanned once at startup;
// the sign label is the sole join key between a synthesized sign
// unit and its image resource.
package media

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"
)

const (
	SourceAuto    = "auto"
	SourceGeneral = "general"
	SourceClasses = "classes"
)

// Conf configures the sign image datasets. GeneralDir holds one
// directory per word/letter sign (lowercase names, clearer images);
// ClassesDir holds one directory per alphanumeric class (uppercase
// names). Either may be empty, disabling the respective source.
type Conf struct {
	GeneralDir string `json:"generalDir"`
	ClassesDir string `json:"classesDir"`
}

// Index is the label-to-image mapping. It is built once by NewIndex
// and never mutated afterwards, so concurrent lookups need no
// locking.
type Index struct {
	general map[string]string
	classes map[string]string
}

// NewIndex scans the configured dataset roots and builds the label
// index. A configured root that does not exist is tolerated with a
// warning - the corresponding source just stays empty.
func NewIndex(conf *Conf) (*Index, error) {
	ans := &Index{
		general: make(map[string]string),
		classes: make(map[string]string),
	}
	if conf == nil {
		return ans, nil
	}
	if err := scanDataset(conf.GeneralDir, ans.general); err != nil {
		return nil, err
	}
	if err := scanDataset(conf.ClassesDir, ans.classes); err != nil {
		return nil, err
	}
	return ans, nil
}

// scanDataset fills dst with LABEL -> representative image path for
// every label subdirectory of root.
func scanDataset(root string, dst map[string]string) error {
	if root == "" {
		return nil
	}
	if isDir, _ := fs.IsDir(root); !isDir {
		log.Warn().Str("path", root).Msg("sign image dataset not found, skipping")
		return nil
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		img := representativeImage(filepath.Join(root, entry.Name()))
		if img == "" {
			continue
		}
		dst[strings.ToUpper(entry.Name())] = img
	}
	return nil
}

// representativeImage picks a stable representative from a label
// directory - the middle item of the sorted image files.
func representativeImage(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	var images []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".png", ".jpg", ".jpeg":
			images = append(images, entry.Name())
		}
	}
	if len(images) == 0 {
		return ""
	}
	sort.Strings(images)
	return filepath.Join(dir, images[len(images)/2])
}

// ImagePath returns the representative image for the label,
// preferring the general dataset over the alphanumeric classes.
func (idx *Index) ImagePath(label string) (string, bool) {
	return idx.ImagePathFrom(label, SourceAuto)
}

// ImagePathFrom restricts the lookup to a single dataset
// (SourceGeneral, SourceClasses) or searches both (SourceAuto).
func (idx *Index) ImagePathFrom(label, source string) (string, bool) {
	label = strings.ToUpper(label)
	if source == SourceGeneral || source == SourceAuto {
		if path, ok := idx.general[label]; ok {
			return path, true
		}
	}
	if source == SourceClasses || source == SourceAuto {
		if path, ok := idx.classes[label]; ok {
			return path, true
		}
	}
	return "", false
}

// Labels returns the sorted union of all known sign labels.
func (idx *Index) Labels() []string {
	seen := make(map[string]bool)
	ans := make([]string, 0, len(idx.general)+len(idx.classes))
	for label := range idx.general {
		seen[label] = true
		ans = append(ans, label)
	}
	for label := range idx.classes {
		if !seen[label] {
			ans = append(ans, label)
		}
	}
	sort.Strings(ans)
	return ans
}

func (idx *Index) GeneralLabels() []string {
	ans := make([]string, 0, len(idx.general))
	for label := range idx.general {
		ans = append(ans, label)
	}
	sort.Strings(ans)
	return ans
}

func (idx *Index) ClassLabels() []string {
	ans := make([]string, 0, len(idx.classes))
	for label := range idx.classes {
		ans = append(ans, label)
	}
	sort.Strings(ans)
	return ans
}

// Size returns the number of distinct labels.
func (idx *Index) Size() int {
	return len(idx.Labels())
}

// IsEmpty reports whether no dataset provided any label.
func (idx *Index) IsEmpty() bool {
	return len(idx.general) == 0 && len(idx.classes) == 0
}
