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

// UnitKind classifies a displayable sign unit.
type UnitKind string

const (
	UnitWord   UnitKind = "word"
	UnitLetter UnitKind = "letter"
	UnitNumber UnitKind = "number"
	UnitSpace  UnitKind = "space"
)

// SignUnit is one displayable element of a synthesized sign
// sequence - either a dedicated word sign, a fingerspelled letter
// or digit, or an inter-word pause. Label is the join key consumers
// use to find a matching image resource; Original is the source
// token the unit derives from.
type SignUnit struct {
	Kind     UnitKind `json:"type"`
	Label    string   `json:"label"`
	Original string   `json:"original"`
}
