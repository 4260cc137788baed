// Copyright 2021 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package media

import "strings"

// A Registry is an ordered collection of serializers. Resolve returns
// the first serializer, in registration order, whose media type equals
// the requested media type.
//
// A Registry is safe for concurrent use by multiple goroutines as long
// as none of them calls a mutating method (Add or Remove). Registries
// are meant to be populated when a client is configured and left
// unchanged while requests are in flight.
//
// The zero value is an empty registry ready to use.
type Registry struct {
	serializers []Serializer
}

// NewRegistry returns a registry containing the given serializers in
// the given order.
func NewRegistry(s ...Serializer) *Registry {
	r := &Registry{}
	for _, x := range s {
		r.Add(x)
	}
	return r
}

// Add appends s to the end of the registry. If a serializer for the same
// media type is already registered, the earlier one continues to take
// precedence.
func (r *Registry) Add(s Serializer) {
	if s == nil {
		panic("restx/media: nil serializer")
	}

	r.serializers = append(r.serializers, s)
}

// Remove removes every serializer registered for mediaType. It returns
// true if at least one serializer was removed.
func (r *Registry) Remove(mediaType string) bool {
	mediaType = Parse(mediaType)
	kept := r.serializers[:0]
	for _, s := range r.serializers {
		if !strings.EqualFold(s.MediaType(), mediaType) {
			kept = append(kept, s)
		}
	}
	removed := len(kept) < len(r.serializers)
	for i := len(kept); i < len(r.serializers); i++ {
		r.serializers[i] = nil
	}
	r.serializers = kept
	return removed
}

// Resolve returns the first registered serializer whose media type
// equals mediaType, ignoring case and any media type parameters.
//
// If there is no such serializer, Resolve returns a *NotSupportedError.
func (r *Registry) Resolve(mediaType string) (Serializer, error) {
	mediaType = Parse(mediaType)
	if r != nil && mediaType != "" {
		for _, s := range r.serializers {
			if strings.EqualFold(s.MediaType(), mediaType) {
				return s, nil
			}
		}
	}

	return nil, &NotSupportedError{MediaType: mediaType}
}

// MediaTypes returns the media types of the registered serializers, in
// registration order.
func (r *Registry) MediaTypes() []string {
	if r == nil {
		return nil
	}
	mts := make([]string, len(r.serializers))
	for i, s := range r.serializers {
		mts[i] = s.MediaType()
	}
	return mts
}

// Len returns the number of registered serializers.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.serializers)
}
