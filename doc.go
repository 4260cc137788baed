// Copyright 2021 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package restx provides a REST client which negotiates representations
by media type, decodes responses into Go values, and reports failures
in a structured way, within a simple and familiar interface.

Create a Client and use the typed helpers to begin making calls.

	client := restx.New(&http.Client{})
	client.BaseURL = "https://api.example.com"

	foos, err := restx.Get[[]Foo](ctx, client, "/api/foos")
	...
	foo, err := restx.Get[Foo](ctx, client, request.FormatURI("/api/foos/{0}", 1))
	...
	id, err := restx.Post[int](ctx, client, "/api/foos", &foo, media.ApplicationXML)

Responses are requested as JSON unless the client's Accept field, or
the plan's, says otherwise. The media types the client can read and
write are those of the serializers in its registry:

	client.Serializers.Add(media.YAML())
	client.Accept = media.ApplicationYAML

A failed call returns one of three kinds of error. A
*media.NotSupportedError means no serializer is registered for a media
type the call needed; nothing was sent. An *APIError means the server
answered with a non-2XX status, or with a representation the client
cannot read (status 406). A *url.Error means no response was received.

	_, err := restx.Get[Foo](ctx, client, "/api/foos/42")
	if restx.IsNotFound(err) {
		...
	}

For control over how the client sends HTTP requests and receives HTTP
responses, use a custom HTTPDoer. Timeouts, retries, pooling and
authentication all belong to the HTTPDoer.

To hook into the details of the client's execution logic, install a
handler into the appropriate handler chain. Packages requestid and
logging provide ready-made handlers:

	handlers := &restx.HandlerGroup{}
	requestid.Install(handlers)
	logging.Install(handlers, zap.NewExample())
	client.Handlers = handlers

A Client can also be built from a configuration file using LoadConfig
and NewFromConfig.
*/
package restx
