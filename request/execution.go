// Copyright 2021 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"net/http"
	"time"

	"github.com/gogama/restx/media"
	"github.com/gogama/restx/transient"
)

// A State is the lifecycle state of a REST call execution.
//
// Every execution starts Pending. It becomes Sent once the transport
// has returned an HTTP response, and ends in exactly one of the final
// states Succeeded, Failed, Faulted, or Interrupted. A final state
// never changes.
type State int

const (
	// Pending means the request has not yet been handed to the
	// transport.
	Pending State = iota
	// Sent means an HTTP response was received and its body buffered,
	// but it has not yet been mapped to a result.
	Sent
	// Succeeded means a success response was decoded into the caller's
	// result value.
	Succeeded
	// Failed means the server reported a failure, or sent a
	// representation the client cannot read. Err is an API error.
	Failed
	// Faulted means the call failed locally, for example because no
	// serializer is registered for the requested media type. If the
	// fault was detected before sending, no network call was made.
	Faulted
	// Interrupted means the transport returned an error instead of an
	// HTTP response, for example because the connection was refused or
	// the context was cancelled.
	Interrupted
)

var stateNames = []string{
	"Pending",
	"Sent",
	"Succeeded",
	"Failed",
	"Faulted",
	"Interrupted",
}

// String returns the name of the state.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "State(?)"
	}
	return stateNames[s]
}

// Final reports whether s is a final state.
func (s State) Final() bool {
	return s >= Succeeded
}

// A Response is the buffered HTTP response to a plan, reduced to what
// is needed to map it to a result: the status code, the bare media
// type of the body, and the body itself.
type Response struct {
	StatusCode int
	MediaType  string
	Body       []byte
}

// Success reports whether the status code is in the 2XX range.
func (r *Response) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// An Execution represents the state of a single Plan execution.
//
// The client creates an Execution for each call, updates it as the
// call progresses, and returns it when the call has ended. Event
// handlers receive the same Execution, and may store their own data in
// it with SetValue. They should otherwise treat its exported fields as
// read-only, except that BeforeSend handlers may add headers to the
// outgoing Request.
type Execution struct {
	// Plan specifies the plan being executed. It is never nil.
	Plan *Plan

	// State is the current lifecycle state of the execution.
	State State

	// Start is the time the execution started.
	Start time.Time

	// End is the time the execution ended. It is the zero value until
	// the execution ends.
	End time.Time

	// Accept is the media type sent in the Accept header, once the
	// client has resolved it.
	Accept string

	// ContentType is the media type the request body was serialized
	// with. It is empty if the plan has no body.
	ContentType string

	// Request is the HTTP request sent, or about to be sent, to the
	// transport. It is nil if the execution faulted before a request
	// could be built.
	Request *http.Request

	// Response is the HTTP response received from the transport. It
	// is nil unless the State is Sent or later (but not Interrupted).
	Response *http.Response

	// Body is the complete response body. It is nil if there is no
	// HTTP response.
	Body []byte

	// Err is the error the execution ended with, if any. Once the
	// execution has ended, Err has the same value as the error value
	// returned by the client's executing method.
	Err error

	data context.Context
}

// StatusCode returns the HTTP response status code, or 0 if there is
// no HTTP response.
func (e *Execution) StatusCode() int {
	if e.Response == nil {
		return 0
	}

	return e.Response.StatusCode
}

// Header returns the HTTP response headers, or a nil header if there is
// no HTTP response.
func (e *Execution) Header() http.Header {
	if e.Response == nil {
		var nilHeader http.Header
		return nilHeader
	}

	return e.Response.Header
}

// MediaType returns the bare media type of the response body, taken
// from the response Content-Type header. It returns the empty string if
// there is no HTTP response or it has no Content-Type.
func (e *Execution) MediaType() string {
	return media.Parse(e.Header().Get("Content-Type"))
}

// Received returns the buffered HTTP response as a Response, or nil if
// there is no HTTP response.
func (e *Execution) Received() *Response {
	if e.Response == nil {
		return nil
	}

	return &Response{
		StatusCode: e.Response.StatusCode,
		MediaType:  e.MediaType(),
		Body:       e.Body,
	}
}

// Duration returns the duration of the execution: zero before it
// starts, time elapsed since Start while it is in flight, and End minus
// Start once it has ended.
func (e *Execution) Duration() time.Duration {
	if !e.Started() {
		return time.Duration(0)
	} else if !e.Ended() {
		return time.Since(e.Start)
	}

	return e.End.Sub(e.Start)
}

// Started indicates whether the execution has started.
func (e *Execution) Started() bool {
	return e.Start != (time.Time{})
}

// Ended indicates whether the execution has ended.
func (e *Execution) Ended() bool {
	return e.End != (time.Time{})
}

// Timeout indicates whether Err is a transport timeout.
func (e *Execution) Timeout() bool {
	return transient.Categorize(e.Err) == transient.Timeout
}

// SetValue allows event handlers to store arbitrary data in the
// execution. The key must follow the same rules as the key parameter
// in context.WithValue: it may not be nil, it must be comparable, and
// it should not be of a built-in type.
func (e *Execution) SetValue(key, value interface{}) {
	ctx := e.data
	if ctx == nil {
		ctx = context.Background()
	}

	e.data = context.WithValue(ctx, key, value)
}

// Value returns the data value associated with this execution for key,
// or nil if there is no value associated with key.
func (e *Execution) Value(key interface{}) interface{} {
	ctx := e.data
	if ctx == nil {
		return nil
	}

	return ctx.Value(key)
}
