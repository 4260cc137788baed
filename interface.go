// Copyright 2021 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restx

import (
	"context"
	"net/http"

	"github.com/gogama/restx/request"
)

// Doer is the interface that wraps the basic Do method.
//
// Do executes a REST call plan, decodes a success response into v, and
// returns the final execution state (and error, if any). Client
// implements the Doer interface, and any other Doer implementation must
// behave substantially the same as Client.Do.
//
// Any Doer can be used with the typed helper functions Get, Post, Put,
// and Delete.
type Doer interface {
	Do(p *request.Plan, v interface{}) (*request.Execution, error)
}

// IdleCloser is the interface that wraps the basic CloseIdleConnections
// method.
//
// If the underlying implementation supports it, CloseIdleConnections
// closes any idle which were previously connected from previous
// requests but are now sitting idle in a "keep-alive" state. It does
// not interrupt any connections currently in use.
//
// If the underlying implementation does not support this ability,
// CloseIdleConnections does nothing.
type IdleCloser interface {
	CloseIdleConnections()
}

// Get uses the specified Doer to issue a GET to the specified URI, with
// the given query parameters appended in order, and returns the
// response body decoded as a T.
//
// If the call fails, the zero value of T is returned with the error.
func Get[T any](ctx context.Context, d Doer, uri string, params ...request.Param) (T, error) {
	return call[T](ctx, d, http.MethodGet, uri, nil, "", params)
}

// Post uses the specified Doer to issue a POST to the specified URI
// with body serialized using contentType, and returns the response body
// decoded as a T.
//
// If contentType is empty, the body is serialized using the accept
// media type.
func Post[T any](ctx context.Context, d Doer, uri string, body interface{}, contentType string) (T, error) {
	return call[T](ctx, d, http.MethodPost, uri, body, contentType, nil)
}

// Put uses the specified Doer to issue a PUT to the specified URI in
// the same manner as Post.
func Put[T any](ctx context.Context, d Doer, uri string, body interface{}, contentType string) (T, error) {
	return call[T](ctx, d, http.MethodPut, uri, body, contentType, nil)
}

// Delete uses the specified Doer to issue a DELETE to the specified URI
// in the same manner as Get.
func Delete[T any](ctx context.Context, d Doer, uri string, params ...request.Param) (T, error) {
	return call[T](ctx, d, http.MethodDelete, uri, nil, "", params)
}

func call[T any](ctx context.Context, d Doer, method, uri string, body interface{}, contentType string, params request.Params) (T, error) {
	var zero T
	p, err := request.NewPlanWithContext(ctx, method, uri, body)
	if err != nil {
		return zero, err
	}
	p.Query = params
	p.ContentType = contentType

	var v T
	if _, err = d.Do(p, &v); err != nil {
		return zero, err
	}
	return v, nil
}
