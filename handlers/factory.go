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

package handlers

import (
	"islgen/cache"
	"islgen/gloss"
	"islgen/media"
)

// Actions wires the gloss pipeline, the sign image index and the
// optional response cache into HTTP handlers.
type Actions struct {
	pipeline *gloss.Pipeline
	media    *media.Index
	cache    *cache.Adapter
}

func NewActions(
	pipeline *gloss.Pipeline,
	mediaIndex *media.Index,
	cacheAdapter *cache.Adapter,
) *Actions {
	return &Actions{
		pipeline: pipeline,
		media:    mediaIndex,
		cache:    cacheAdapter,
	}
}
