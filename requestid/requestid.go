// Copyright 2021 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package requestid provides an event handler which stamps every
// request sent by a restx.Client with a correlation identifier.
//
// The identifier is sent in the X-Request-Id header. A request which
// already carries the header, for example because the plan set it, is
// left unchanged. Either way the identifier is stored in the execution
// and can be retrieved with From.
package requestid

import (
	"github.com/gogama/restx"
	"github.com/gogama/restx/request"
	"github.com/google/uuid"
)

// Header is the name of the request header carrying the identifier.
const Header = "X-Request-Id"

type key struct{}

// Handler stamps the request with an identifier. It must be installed
// on the BeforeSend event; on any other event it does nothing.
var Handler restx.Handler = restx.HandlerFunc(stamp)

// Install adds Handler to the BeforeSend chain of g.
func Install(g *restx.HandlerGroup) {
	g.PushBack(restx.BeforeSend, Handler)
}

// From returns the identifier the request of e was sent with, or the
// empty string if none was stamped.
func From(e *request.Execution) string {
	id, _ := e.Value(key{}).(string)
	return id
}

func stamp(evt restx.Event, e *request.Execution) {
	if evt != restx.BeforeSend || e.Request == nil {
		return
	}
	id := e.Request.Header.Get(Header)
	if id == "" {
		id = uuid.New().String()
		e.Request.Header.Set(Header, id)
	}
	e.SetValue(key{}, id)
}
