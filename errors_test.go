// Copyright 2021 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restx

import (
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/gogama/restx/media"

	"github.com/stretchr/testify/assert"
)

func TestAPIError(t *testing.T) {
	err := &APIError{StatusCode: 404, Message: "foo not found"}
	assert.EqualError(t, err, "restx: HTTP 404: foo not found")
	assert.NotErrorIs(t, err, media.ErrNotSupported)
}

func TestErrorHelpers(t *testing.T) {
	wrapped := func(code int) error {
		return fmt.Errorf("calling foos: %w", &APIError{StatusCode: code})
	}
	notSupported := &media.NotSupportedError{MediaType: "application/json"}
	transport := &url.Error{Op: "Get", URL: "http://example.com", Err: errors.New("refused")}

	testCases := []struct {
		name          string
		err           error
		code          int
		notFound      bool
		notAcceptable bool
		clientErr     bool
		serverErr     bool
		transport     bool
	}{
		{name: "nil"},
		{name: "404", err: wrapped(404), code: 404, notFound: true, clientErr: true},
		{name: "406", err: wrapped(406), code: 406, notAcceptable: true, clientErr: true},
		{name: "500", err: wrapped(500), code: 500, serverErr: true},
		{name: "503", err: wrapped(503), code: 503, serverErr: true},
		{name: "not supported", err: notSupported},
		{name: "transport", err: transport, transport: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.code, StatusCode(testCase.err))
			assert.Equal(t, testCase.notFound, IsNotFound(testCase.err))
			assert.Equal(t, testCase.notAcceptable, IsNotAcceptable(testCase.err))
			assert.Equal(t, testCase.clientErr, IsClientError(testCase.err))
			assert.Equal(t, testCase.serverErr, IsServerError(testCase.err))
			assert.Equal(t, testCase.transport, IsTransport(testCase.err))
		})
	}
}
