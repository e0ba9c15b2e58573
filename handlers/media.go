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
	"fmt"
	"net/http"

	"islgen/ierror"
	"islgen/media"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

var knownSources = []string{media.SourceAuto, media.SourceGeneral, media.SourceClasses}

type availableSignsResponse struct {
	Labels  []string `json:"labels"`
	Total   int      `json:"total"`
	General []string `json:"general"`
	Classes []string `json:"classes"`
}

// SignImage godoc
// @Summary      SignImage
// @Description  Serve a representative image for the given sign label.
// @Produce      png
// @Param        label path string true "The sign label (e.g. A, B, 1, 2)"
// @Param        source query string false "Dataset to search: general, classes or auto (default)"
// @Success      200 {file} binary
// @Router       /sign-image/{label} [get]
func (a *Actions) SignImage(ctx *gin.Context) {
	label := ctx.Param("label")
	source := ctx.DefaultQuery("source", media.SourceAuto)
	if !collections.SliceContains(knownSources, source) {
		uniresp.RespondWithErrorJSON(
			ctx,
			ierror.InputError{Msg: fmt.Sprintf("unknown source `%s`", source)},
			http.StatusUnprocessableEntity,
		)
		return
	}
	imgPath, ok := a.media.ImagePathFrom(label, source)
	if !ok {
		uniresp.RespondWithErrorJSON(
			ctx,
			ierror.NotFoundError{Msg: fmt.Sprintf("no image found for label `%s`", label)},
			http.StatusNotFound,
		)
		return
	}
	ctx.File(imgPath)
}

// AvailableSigns godoc
// @Summary      AvailableSigns
// @Description  List all sign labels with an available image.
// @Produce      json
// @Success      200 {object} availableSignsResponse
// @Router       /available-signs [get]
func (a *Actions) AvailableSigns(ctx *gin.Context) {
	labels := a.media.Labels()
	uniresp.WriteJSONResponse(ctx.Writer, availableSignsResponse{
		Labels:  labels,
		Total:   len(labels),
		General: a.media.GeneralLabels(),
		Classes: a.media.ClassLabels(),
	})
}
