// Copyright 2021 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the core types Plan (describes a REST call)
and Execution (describes the execution of a Plan), along with ordered
query parameters (Params) and the buffered Response the client maps to
a result.

Create a plan to make a REST call:

	p, err := request.NewPlanWithContext(ctx, "POST", "/api/foos", &foo)
	...
	p.ContentType = "application/xml"
	p.Query = request.Params{request.P("dryRun", "true")}
	var id int
	e, err := client.Do(p, &id)

An Execution tracks the call through its lifecycle:

	Pending -> Sent -> Succeeded | Failed | Faulted

with Interrupted as the final state when the transport returns an error
instead of a response, and Faulted reached directly from Pending when
the call fails locally before anything is sent. You will typically not
allocate Execution instances yourself, but will work with the ones
handed out by the client and passed to event handlers.
*/
package request
