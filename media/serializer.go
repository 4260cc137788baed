// Copyright 2021 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package media

import (
	"mime"
	"strings"
)

// Media types handled by the built-in serializers.
const (
	ApplicationJSON    = "application/json"
	ApplicationXML     = "application/xml"
	ApplicationYAML    = "application/yaml"
	ApplicationMsgPack = "application/msgpack"
)

// A Serializer encodes values to, and decodes values from, the body
// representation for a single media type.
//
// Implementations must be immutable once constructed and safe for
// concurrent use by multiple goroutines.
type Serializer interface {
	// MediaType returns the media type the serializer handles, for
	// example "application/json". It never includes parameters.
	MediaType() string

	// Encode returns the body representation of v.
	Encode(v interface{}) ([]byte, error)

	// Decode parses data and stores the result in the value pointed
	// to by v, which must be a non-nil pointer.
	Decode(data []byte, v interface{}) error
}

// As returns a serializer which behaves exactly like s but declares
// mediaType as its media type.
//
// As is useful for vendor media types whose representation is one of
// the built-in formats, for example "application/vnd.api+json".
func As(mediaType string, s Serializer) Serializer {
	if s == nil {
		panic("restx/media: nil serializer")
	}
	return alias{mediaType: Parse(mediaType), Serializer: s}
}

type alias struct {
	mediaType string
	Serializer
}

func (a alias) MediaType() string {
	return a.mediaType
}

// Builtin returns a new instance of the built-in serializer for the
// given media type, if there is one.
func Builtin(mediaType string) (Serializer, bool) {
	switch strings.ToLower(Parse(mediaType)) {
	case ApplicationJSON:
		return JSON(), true
	case ApplicationXML:
		return XML(), true
	case ApplicationYAML:
		return YAML(), true
	case ApplicationMsgPack:
		return MsgPack(), true
	default:
		return nil, false
	}
}

// Parse returns the bare media type from a Content-Type or Accept
// header value, without parameters such as charset. Parse returns the
// trimmed input unchanged if it cannot be parsed.
func Parse(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(header)
	if err != nil {
		if i := strings.IndexByte(header, ';'); i >= 0 {
			return strings.TrimSpace(header[:i])
		}
		return header
	}
	return mt
}
