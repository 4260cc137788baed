// Copyright 2021 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restx

import (
	"github.com/gogama/restx/request"
)

// A HandlerGroup holds one ordered chain of handlers per Event. Install
// it in a Client's Handlers field to observe or decorate every call the
// client makes, for example to stamp correlation headers on BeforeSend
// or to log outcomes on AfterExecutionEnd.
//
// The zero value is an empty group. Build the group fully before the
// client is shared: chains are read, never locked, while calls run.
type HandlerGroup struct {
	chains [][]Handler
}

// PushBack appends h to the chain for evt. Handlers in a chain run in
// the order they were pushed.
//
// PushBack panics if h is nil or evt is not one of the values returned
// by Events.
func (g *HandlerGroup) PushBack(evt Event, h Handler) {
	if h == nil {
		panic("restx: nil handler")
	}
	if g.chains == nil {
		g.chains = make([][]Handler, numEvents)
	}
	g.chains[evt] = append(g.chains[evt], h)
}

// Len returns the length of the chain for evt.
func (g *HandlerGroup) Len(evt Event) int {
	if i := int(evt); i >= 0 && i < len(g.chains) {
		return len(g.chains[i])
	}
	return 0
}

// run fires evt for the execution e. A group with no chain for evt does
// nothing.
func (g *HandlerGroup) run(evt Event, e *request.Execution) {
	if i := int(evt); i < len(g.chains) {
		for _, h := range g.chains[i] {
			h.Handle(evt, e)
		}
	}
}

// A Handler observes, and may decorate, a call at one point of its
// execution. Handle receives the same Execution the client will return,
// so handlers can leave data for later handlers with SetValue.
//
// Handlers run on the goroutine making the call.
type Handler interface {
	Handle(Event, *request.Execution)
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(Event, *request.Execution)

// Handle calls f(evt, e).
func (f HandlerFunc) Handle(evt Event, e *request.Execution) {
	f(evt, e)
}
