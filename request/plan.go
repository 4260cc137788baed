// Copyright 2021 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	urlpkg "net/url"
	"strings"

	"golang.org/x/net/http/httpguts"
)

var (
	template, _ = http.NewRequest("GET", "", nil)
)

const (
	nilCtxMsg = "restx/request: nil context"
)

// A Plan describes one logical REST call: which resource to access,
// with which method, which representation is wanted back, and which
// value (if any) should be sent.
//
// Unlike an http.Request, a Plan's Body is a Go value rather than a
// stream of bytes. The client serializes it using the serializer for
// ContentType just before sending, and sets the Accept header from
// Accept.
//
// Like the http.Request structure, a Plan has a context which controls
// the call and can be used to cancel it at any time.
type Plan struct {
	// Method specifies the HTTP method (GET, POST, PUT, etc.).
	// An empty string means GET.
	Method string

	// URL specifies the URL to access. If the URL is relative, the
	// client resolves it against its base URL.
	URL *urlpkg.URL

	// Query contains query parameters which are appended, in order,
	// to any query already present in URL.
	Query Params

	// Header contains additional request header fields. The Accept and
	// Content-Type headers are always overwritten by the client.
	Header http.Header

	// Body is the value to send as the request body. A nil Body means
	// no request body is sent.
	Body interface{}

	// Accept is the media type requested for the response body. If
	// empty, the client's default accept media type is used.
	Accept string

	// ContentType is the media type used to serialize Body. If empty,
	// the accept media type is used.
	ContentType string

	// ctx allows the call to be cancelled. It should only be modified
	// by copying the whole Plan using WithContext.
	ctx context.Context
}

// NewPlan wraps NewPlanWithContext using the background context.
func NewPlan(method, url string, body interface{}) (*Plan, error) {
	return NewPlanWithContext(context.Background(), method, url, body)
}

// NewPlanWithContext returns a new Plan given a method, URL, and
// optional body value.
//
// The body may be any value the serializer for the plan's content type
// can encode, or nil for no body.
func NewPlanWithContext(ctx context.Context, method, url string, body interface{}) (*Plan, error) {
	if ctx == nil {
		return nil, errors.New(nilCtxMsg)
	}
	if method == "" {
		method = "GET"
	}
	if !validMethod(method) {
		return nil, fmt.Errorf("restx/request: invalid method %q", method)
	}
	u, err := urlpkg.Parse(url)
	if err != nil {
		return nil, err
	}
	return &Plan{
		ctx:    ctx,
		Method: method,
		URL:    u,
		Header: make(http.Header),
		Body:   body,
	}, nil
}

// Context returns the plan's context. To change the context, use
// WithContext.
//
// The returned context is always non-nil; it defaults to the
// background context.
func (p *Plan) Context() context.Context {
	if p.ctx != nil {
		return p.ctx
	}
	return context.Background()
}

// WithContext returns a shallow copy of p with its context changed to
// ctx, which must be non-nil.
func (p *Plan) WithContext(ctx context.Context) *Plan {
	if ctx == nil {
		panic(nilCtxMsg)
	}
	p2 := new(Plan)
	*p2 = *p
	p2.ctx = ctx
	return p2
}

// HasBody reports whether the plan has a body value to send.
func (p *Plan) HasBody() bool {
	return p.Body != nil
}

// RawQuery returns the encoded query string the plan sends: the query
// already present in URL, followed by the encoded Query parameters.
func (p *Plan) RawQuery() string {
	var existing string
	if p.URL != nil {
		existing = p.URL.RawQuery
	}
	extra := p.Query.Encode()
	switch {
	case existing == "":
		return extra
	case extra == "":
		return existing
	default:
		return existing + "&" + extra
	}
}

// ToRequest creates the HTTP request for the plan, sending it to url
// with the given pre-serialized body. The context of the new request is
// set to the plan's context.
//
// The request's header is a copy of the plan's header, so the caller
// may set the Accept and Content-Type fields without changing the plan.
func (p *Plan) ToRequest(url *urlpkg.URL, body []byte) *http.Request {
	r := template.WithContext(p.Context())
	r.Method = p.Method
	u := *url
	u.RawQuery = p.RawQuery()
	r.URL = &u
	r.Host = u.Host
	r.Header = p.Header.Clone()
	if r.Header == nil {
		r.Header = make(http.Header)
	}
	if len(body) > 0 {
		r.Body = io.NopCloser(bytes.NewReader(body))
		r.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		}
		r.ContentLength = int64(len(body))
	}
	return r
}

func validMethod(method string) bool {
	return strings.IndexFunc(method, isNotToken) == -1
}

func isNotToken(r rune) bool {
	return !httpguts.IsTokenRune(r)
}
