// Copyright 2021 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restx

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gogama/restx/media"
	"github.com/gogama/restx/request"
)

// An HTTPDoer implements a Do method in the same manner as the GoLang
// standard library http.Client from the net/http package.
//
// The HTTPDoer is the transport collaborator of the REST client. It is
// responsible for everything concerning the connection: pooling,
// redirects, TLS, timeouts, authentication and retries if any.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	//
	// The Do method must follow the contract documented on the GoLang
	// standard library http.Client from the net/http package.
	Do(r *http.Request) (*http.Response, error)
}

var (
	emptyHandlers      = HandlerGroup{}
	defaultSerializers = media.NewRegistry(media.JSON(), media.XML())
)

// A Client is a REST client which negotiates request and response
// representations by media type, decodes success responses into
// caller-supplied values, and turns failure responses into *APIError.
// Its zero value is a valid configuration.
//
// The zero value client uses http.DefaultClient (from net/http) as the
// HTTPDoer, a serializer registry holding the JSON and XML serializers,
// requests JSON responses, and has no event handlers.
//
// Client is safe for concurrent use by multiple goroutines, provided
// its fields, including the Serializers registry and Handlers group,
// are not modified while calls are in flight. Configure the client
// fully before sharing it.
//
// A call made through a Client ends in one of three kinds of error,
// which callers can tell apart by type:
//
// • *media.NotSupportedError, a configuration error, if no serializer
// is registered for the accept or content media type. This is detected
// before anything is sent;
//
// • *APIError if the server responded with a non-2XX status code, or
// with a representation no registered serializer can read; and
//
// • *url.Error if the HTTPDoer failed to produce a response at all.
type Client struct {
	// HTTPDoer specifies the mechanics of sending HTTP requests and
	// receiving responses.
	//
	// If HTTPDoer is nil, http.DefaultClient from the standard net/http
	// package is used.
	HTTPDoer HTTPDoer
	// BaseURL is prepended to the URL of every plan whose URL is not
	// absolute. If empty, plan URLs are used as-is.
	BaseURL string
	// Accept is the media type requested for responses when a plan
	// does not specify one.
	//
	// If Accept is empty, the media type of the first serializer in
	// Serializers is used.
	Accept string
	// Header contains default request headers. Headers set on a plan
	// take precedence.
	Header http.Header
	// Serializers is the ordered registry used to negotiate request and
	// response representations.
	//
	// If Serializers is nil, a shared registry holding the JSON and XML
	// serializers, in that order, is used.
	Serializers *media.Registry
	// Handlers allows custom handler chains to be invoked when
	// designated events occur during execution of a REST call.
	//
	// If Handlers is nil, no custom handlers will be run.
	Handlers *HandlerGroup
}

// New returns a client which sends requests using doer and owns a
// fresh registry holding the JSON and XML serializers. Unlike the
// zero value client's shared registry, the new client's registry may
// be modified during configuration.
func New(doer HTTPDoer) *Client {
	return &Client{
		HTTPDoer:    doer,
		Serializers: media.NewRegistry(media.JSON(), media.XML()),
	}
}

// Do executes a REST call plan, decoding a success response body into
// the value pointed to by v. If v is nil, any success response body is
// discarded.
//
// Do first negotiates representations: it resolves a serializer for
// the accept media type and, if the plan has a body, for the content
// media type, and encodes the body. If either media type has no
// serializer, Do returns a *media.NotSupportedError without sending
// anything.
//
// Do then sends the request using the HTTPDoer, buffers the whole
// response body, and maps the response:
//
// • a 2XX response is decoded into v using the serializer for the
// response's media type. If there is no such serializer, Do returns an
// *APIError with status code 406 (Not Acceptable);
//
// • any other response produces an *APIError carrying the response
// status code. If the body can be decoded by the serializer for the
// response's media type, the APIError's Message and Details are taken
// from it.
//
// If the HTTPDoer returns an error, Do returns it as a *url.Error
// without further interpretation.
//
// The returned Execution is never nil. Its State records how the call
// ended, and its Err field references the same error Do returns.
//
// Do never retries and never sets a timeout; both are left to the
// HTTPDoer and the plan's context.
func (c *Client) Do(p *request.Plan, v interface{}) (*request.Execution, error) {
	e := request.Execution{
		Plan: p,
	}

	handlers := c.Handlers
	if handlers == nil {
		handlers = &emptyHandlers
	}
	handlers.run(BeforeExecutionStart, &e)
	e.Start = time.Now()

	c.execute(&e, v, handlers)

	e.End = time.Now()
	handlers.run(AfterExecutionEnd, &e)
	return &e, e.Err
}

func (c *Client) execute(e *request.Execution, v interface{}, handlers *HandlerGroup) {
	reg := c.serializers()
	body, err := c.negotiate(e, reg)
	if err != nil {
		fault(e, err)
		return
	}

	u, err := c.resolve(e.Plan.URL)
	if err != nil {
		fault(e, err)
		return
	}

	e.Request = e.Plan.ToRequest(u, body)
	for k, vs := range c.Header {
		if _, ok := e.Request.Header[k]; !ok {
			e.Request.Header[k] = append([]string(nil), vs...)
		}
	}
	e.Request.Header.Set("Accept", e.Accept)
	if e.ContentType != "" {
		e.Request.Header.Set("Content-Type", e.ContentType)
	}
	handlers.run(BeforeSend, e)

	e.Response, err = c.doer().Do(e.Request)
	if err != nil {
		interrupt(e, err)
		return
	}
	if err = readBody(e); err != nil {
		interrupt(e, err)
		return
	}
	e.State = request.Sent
	handlers.run(AfterReceive, e)

	err = mapResponse(reg, e.Received(), v)
	if err == nil {
		e.State = request.Succeeded
	} else if _, ok := err.(*APIError); ok {
		e.Err = err
		e.State = request.Failed
	} else {
		fault(e, err)
	}
}

// negotiate resolves the accept and content media types of the plan
// and returns the encoded request body, if any.
func (c *Client) negotiate(e *request.Execution, reg *media.Registry) ([]byte, error) {
	p := e.Plan
	accept := p.Accept
	if accept == "" {
		accept = c.Accept
	}
	if accept == "" {
		if mts := reg.MediaTypes(); len(mts) > 0 {
			accept = mts[0]
		}
	}
	s, err := reg.Resolve(accept)
	if err != nil {
		return nil, err
	}
	e.Accept = s.MediaType()

	if !p.HasBody() {
		return nil, nil
	}
	contentType := p.ContentType
	if contentType == "" {
		contentType = e.Accept
	}
	s, err = reg.Resolve(contentType)
	if err != nil {
		return nil, err
	}
	e.ContentType = s.MediaType()
	return media.Encode(s, p.Body)
}

// resolve joins a relative plan URL onto the client's base URL.
func (c *Client) resolve(u *url.URL) (*url.URL, error) {
	if u == nil {
		return nil, fmt.Errorf("restx: plan has no URL")
	}
	if c.BaseURL == "" || u.IsAbs() {
		return u, nil
	}
	ref := *u
	ref.RawQuery = ""
	ref.Fragment = ""
	joined := strings.TrimRight(c.BaseURL, "/") + "/" + strings.TrimLeft(ref.String(), "/")
	r, err := url.Parse(joined)
	if err != nil {
		return nil, fmt.Errorf("restx: invalid base URL %q: %v", c.BaseURL, err)
	}
	return r, nil
}

func readBody(e *request.Execution) error {
	defer func() {
		_ = e.Response.Body.Close()
	}()
	var err error
	e.Body, err = io.ReadAll(e.Response.Body)
	return err
}

func fault(e *request.Execution, err error) {
	e.Err = err
	e.State = request.Faulted
}

func interrupt(e *request.Execution, err error) {
	e.Response = nil
	e.Body = nil
	e.Err = urlErrorWrap(e.Request, err)
	e.State = request.Interrupted
}

// CloseIdleConnections invokes the same method on the client's
// underlying HTTPDoer.
//
// If the HTTPDoer has no CloseIdleConnections method, this method does
// nothing.
func (c *Client) CloseIdleConnections() {
	doer := c.doer()
	if ic, ok := doer.(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}

func (c *Client) doer() HTTPDoer {
	if c.HTTPDoer == nil {
		return http.DefaultClient
	}

	return c.HTTPDoer
}

func (c *Client) serializers() *media.Registry {
	if c.Serializers == nil {
		return defaultSerializers
	}

	return c.Serializers
}

func urlErrorWrap(r *http.Request, err error) error {
	if _, ok := err.(*url.Error); ok {
		return err
	}

	return &url.Error{
		Op:  urlErrorOp(r.Method),
		URL: r.URL.String(),
		Err: err,
	}
}

// urlErrorOp is lifted verbatim from net/http/client.go
func urlErrorOp(method string) string {
	if method == "" {
		return "Get"
	}
	return method[:1] + strings.ToLower(method[1:])
}
