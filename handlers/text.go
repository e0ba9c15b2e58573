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
	"net/http"
	"strings"

	"islgen/gloss"
	"islgen/ierror"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

type processTextRequest struct {
	Text string `json:"text"`
}

type signUnitView struct {
	Kind      gloss.UnitKind `json:"type"`
	Label     string         `json:"label"`
	Original  string         `json:"original"`
	Available bool           `json:"available"`
	ImageURL  string         `json:"imageUrl,omitempty"`
}

type processTextResponse struct {
	OriginalText string         `json:"originalText"`
	ISLTokens    []string       `json:"islTokens"`
	Signs        []signUnitView `json:"signs"`
	TotalSigns   int            `json:"totalSigns"`
}

type glossResponse struct {
	Text      string   `json:"text"`
	ISLTokens []string `json:"islTokens"`
}

// attachMedia decorates the synthesized units with image
// availability metadata. The unit order is never altered here -
// media lookup joins purely on the label.
func (a *Actions) attachMedia(units []gloss.SignUnit) []signUnitView {
	ans := make([]signUnitView, len(units))
	for i, unit := range units {
		view := signUnitView{
			Kind:     unit.Kind,
			Label:    unit.Label,
			Original: unit.Original,
		}
		if unit.Kind != gloss.UnitSpace {
			if _, ok := a.media.ImagePath(unit.Label); ok {
				view.Available = true
				view.ImageURL = "/sign-image/" + unit.Label
			}
		}
		ans[i] = view
	}
	return ans
}

// ProcessText godoc
// @Summary      ProcessText
// @Description  Convert English text to an ISL sign sequence with per-sign image availability.
// @Produce      json
// @Param        payload body processTextRequest true "The text to convert"
// @Success      200 {object} processTextResponse
// @Router       /process-text [post]
func (a *Actions) ProcessText(ctx *gin.Context) {
	var req processTextRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		uniresp.RespondWithErrorJSON(
			ctx,
			ierror.InputError{Msg: "invalid request body"},
			http.StatusBadRequest,
		)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		uniresp.RespondWithErrorJSON(
			ctx,
			ierror.InputError{Msg: "missing `text` in request body"},
			http.StatusBadRequest,
		)
		return
	}

	normText := gloss.Normalize(req.Text)
	var ans processTextResponse
	if !a.cache.Get(normText, &ans) {
		signs := a.pipeline.SynthesizeSigns(req.Text)
		ans = processTextResponse{
			ISLTokens: a.pipeline.Reorder(req.Text),
			Signs:     a.attachMedia(signs),
		}
		for _, unit := range signs {
			if unit.Kind != gloss.UnitSpace {
				ans.TotalSigns++
			}
		}
		a.cache.Set(normText, ans)
	}
	ans.OriginalText = req.Text
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

// Gloss godoc
// @Summary      Gloss
// @Description  Return just the ISL-ordered gloss tokens of the text, without sign expansion.
// @Produce      json
// @Param        text query string true "The text to gloss"
// @Success      200 {object} glossResponse
// @Router       /gloss [get]
func (a *Actions) Gloss(ctx *gin.Context) {
	text := ctx.Query("text")
	if strings.TrimSpace(text) == "" {
		uniresp.RespondWithErrorJSON(
			ctx,
			ierror.InputError{Msg: "missing `text` argument"},
			http.StatusBadRequest,
		)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, glossResponse{
		Text:      text,
		ISLTokens: a.pipeline.Reorder(text),
	})
}
