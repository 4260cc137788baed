// Copyright 2021 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restx

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// An APIError reports that the server answered a call with a failure,
// or with a representation the client cannot read.
//
// StatusCode is always set. For a non-2XX response it is the response
// status code. For a 2XX response whose media type has no registered
// serializer it is 406 (Not Acceptable).
//
// Message is the message from the error payload if the response body
// could be decoded and contained one, and the standard status text for
// StatusCode otherwise. Details holds the remaining fields of the error
// payload, if it decoded into a map.
type APIError struct {
	StatusCode int
	Message    string
	Details    map[string]interface{}
	// Body is the raw response body.
	Body []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("restx: HTTP %d: %s", e.StatusCode, e.Message)
}

// StatusCode returns the status code of the APIError in err's chain, or
// 0 if there is none.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is an APIError with status code 404.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsNotAcceptable reports whether err is an APIError with status code
// 406, either because the server refused the requested media type or
// because it responded with one the client cannot read.
func IsNotAcceptable(err error) bool {
	return StatusCode(err) == http.StatusNotAcceptable
}

// IsClientError reports whether err is an APIError with a 4XX status
// code.
func IsClientError(err error) bool {
	code := StatusCode(err)
	return code >= 400 && code < 500
}

// IsServerError reports whether err is an APIError with a 5XX status
// code.
func IsServerError(err error) bool {
	return StatusCode(err) >= 500
}

// IsTransport reports whether err is a transport error, meaning the
// HTTPDoer failed to produce any HTTP response.
func IsTransport(err error) bool {
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}
