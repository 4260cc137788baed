// Copyright 2021 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package media contains the serializers which translate between Go values
and the byte representations named by HTTP media types, and the ordered
Registry the REST client uses to negotiate which serializer handles a
request or response body.

Every Serializer declares exactly one media type. A Registry resolves a
media type to the first serializer registered for it, comparing media
types case-insensitively:

	reg := media.NewRegistry(media.JSON(), media.XML())
	s, err := reg.Resolve("application/xml")
	...
	b, err := s.Encode(&foo)

If no serializer is registered for a media type, Resolve returns a
*NotSupportedError, which wraps ErrNotSupported. There is never a
fallback to some other serializer.

The built-in serializers are JSON, XML, YAML, and MsgPack. Use As to
register an existing serializer under a vendor-specific media type:

	reg.Add(media.As("application/vnd.example+json", media.JSON()))
*/
package media
