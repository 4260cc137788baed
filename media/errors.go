// Copyright 2021 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package media

import (
	"errors"
	"fmt"
)

var (
	// ErrNotSupported indicates that no serializer is registered for a
	// media type. It signals client misconfiguration.
	ErrNotSupported = errors.New("restx/media: no serializer for media type")

	// ErrEncode indicates a serializer failed to encode a value.
	ErrEncode = errors.New("restx/media: encode failed")

	// ErrDecode indicates a serializer failed to decode a body.
	ErrDecode = errors.New("restx/media: decode failed")
)

// NotSupportedError is returned by Registry.Resolve when no serializer
// is registered for the requested media type. It wraps ErrNotSupported.
type NotSupportedError struct {
	MediaType string
}

func (e *NotSupportedError) Error() string {
	if e.MediaType == "" {
		return ErrNotSupported.Error() + " (none requested and registry is empty)"
	}
	return fmt.Sprintf("%s %q", ErrNotSupported.Error(), e.MediaType)
}

func (e *NotSupportedError) Unwrap() error {
	return ErrNotSupported
}

// CodecError reports an encode or decode failure. It wraps ErrEncode
// or ErrDecode.
type CodecError struct {
	Err       error // ErrEncode or ErrDecode
	MediaType string
	Cause     error // error from the underlying encoder
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Err.Error(), e.MediaType, e.Cause)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// Encode encodes v using s, wrapping any failure in a *CodecError.
func Encode(s Serializer, v interface{}) ([]byte, error) {
	b, err := s.Encode(v)
	if err != nil {
		return nil, &CodecError{Err: ErrEncode, MediaType: s.MediaType(), Cause: err}
	}
	return b, nil
}

// Decode decodes data into v using s, wrapping any failure in a
// *CodecError.
func Decode(s Serializer, data []byte, v interface{}) error {
	if err := s.Decode(data, v); err != nil {
		return &CodecError{Err: ErrDecode, MediaType: s.MediaType(), Cause: err}
	}
	return nil
}
