// Copyright 2021 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restx

import (
	"net/http"
	"strings"

	"github.com/gogama/restx/media"
	"github.com/gogama/restx/request"
)

// errorPayload is the wire shape of a server error. Both the lower-case
// and the capitalized XML element names are accepted.
type errorPayload struct {
	Message    string `json:"message" xml:"message" yaml:"message" msgpack:"message"`
	XMLMessage string `json:"-" xml:"Message" yaml:"-" msgpack:"-"`
}

func (p *errorPayload) message() string {
	if p.Message != "" {
		return p.Message
	}
	return p.XMLMessage
}

// mapResponse turns a received response into either a decoded value in
// v or an error.
func mapResponse(reg *media.Registry, r *request.Response, v interface{}) error {
	if !r.Success() {
		return newAPIError(reg, r)
	}

	s, err := reg.Resolve(r.MediaType)
	if err != nil {
		if len(r.Body) == 0 {
			return nil
		}
		return &APIError{
			StatusCode: http.StatusNotAcceptable,
			Message:    http.StatusText(http.StatusNotAcceptable),
			Body:       r.Body,
		}
	}
	if len(r.Body) == 0 || v == nil {
		return nil
	}
	return media.Decode(s, r.Body, v)
}

func newAPIError(reg *media.Registry, r *request.Response) *APIError {
	apiErr := &APIError{
		StatusCode: r.StatusCode,
		Body:       r.Body,
	}

	if len(r.Body) > 0 {
		if s, err := reg.Resolve(r.MediaType); err == nil {
			var payload errorPayload
			if s.Decode(r.Body, &payload) == nil {
				apiErr.Message = payload.message()
			}
			var fields map[string]interface{}
			if s.Decode(r.Body, &fields) == nil {
				for k := range fields {
					if strings.EqualFold(k, "message") {
						delete(fields, k)
					}
				}
				if len(fields) > 0 {
					apiErr.Details = fields
				}
			}
		}
	}

	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(r.StatusCode)
	}
	return apiErr
}
