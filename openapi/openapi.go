// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Martin Zimandl <martin.zimandl@gmail.com>
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

// Package openapi provides a hand-maintained OpenAPI 3 description
// of the public HTTP API.
package openapi

type Info struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Version     string `json:"version"`
}

type Server struct {
	URL string `json:"url"`
}

type ParamSchema struct {
	Type string `json:"type"`
}

type Parameter struct {
	Name        string      `json:"name"`
	In          string      `json:"in"`
	Description string      `json:"description"`
	Required    bool        `json:"required"`
	Schema      ParamSchema `json:"schema"`
}

type Method struct {
	Description string      `json:"description"`
	OperationID string      `json:"operationId"`
	Parameters  []Parameter `json:"parameters"`
	Deprecated  bool        `json:"deprecated"`
}

type Methods struct {
	Get    *Method `json:"get,omitempty"`
	Post   *Method `json:"post,omitempty"`
	Put    *Method `json:"put,omitempty"`
	Delete *Method `json:"delete,omitempty"`
}

type Response struct {
	OpenAPI string             `json:"openapi"`
	Info    Info               `json:"info"`
	Servers []Server           `json:"servers"`
	Paths   map[string]Methods `json:"paths"`
}

func NewResponse(ver, url string) *Response {
	paths := make(map[string]Methods)

	paths["/process-text"] = Methods{
		Post: &Method{
			Description: "Converts English text into an ISL sign sequence with per-sign image availability metadata.",
			OperationID: "ProcessText",
			Parameters: []Parameter{
				{
					Name:        "text",
					In:          "body",
					Description: "The English text to convert.",
					Required:    true,
					Schema: ParamSchema{
						Type: "string",
					},
				},
			},
		},
	}

	paths["/gloss"] = Methods{
		Get: &Method{
			Description: "Returns the ISL-ordered gloss tokens of the text, without sign expansion.",
			OperationID: "Gloss",
			Parameters: []Parameter{
				{
					Name:        "text",
					In:          "query",
					Description: "The English text to gloss.",
					Required:    true,
					Schema: ParamSchema{
						Type: "string",
					},
				},
			},
		},
	}

	paths["/sign-image/{label}"] = Methods{
		Get: &Method{
			Description: "Serves a representative image for the given sign label.",
			OperationID: "SignImage",
			Parameters: []Parameter{
				{
					Name:        "label",
					In:          "path",
					Description: "The sign label (e.g. A, B, 1, 2).",
					Required:    true,
					Schema: ParamSchema{
						Type: "string",
					},
				},
				{
					Name:        "source",
					In:          "query",
					Description: "The dataset to search: `general`, `classes` or `auto` (default).",
					Required:    false,
					Schema: ParamSchema{
						Type: "string",
					},
				},
			},
		},
	}

	paths["/available-signs"] = Methods{
		Get: &Method{
			Description: "Lists all sign labels with an available image.",
			OperationID: "AvailableSigns",
		},
	}

	return &Response{
		OpenAPI: "3.1.0",
		Info: Info{
			Title:       "ISLGEN - Indian Sign Language gloss and sign-sequence generator",
			Description: "Converts English text into ISL-ordered glosses and displayable sign sequences",
			Version:     ver,
		},
		Servers: []Server{
			{URL: url},
		},
		Paths: paths,
	}
}
