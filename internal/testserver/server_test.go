// Copyright 2021 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package testserver

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gogama/restx/media"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer(t *testing.T) {
	s := New()
	defer s.Close()

	send := func(t *testing.T, method, path, accept, contentType, body string) (*http.Response, []byte) {
		req, err := http.NewRequest(method, s.URL+path, strings.NewReader(body))
		require.NoError(t, err)
		if accept != "" {
			req.Header.Set("Accept", accept)
		}
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		resp, err := s.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp, b
	}

	t.Run("list defaults to JSON", func(t *testing.T) {
		resp, body := send(t, "GET", "/api/foos", "", "", "")
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))
		var foos []Foo
		require.NoError(t, media.JSON().Decode(body, &foos))
		assert.Equal(t, Foos, foos)
	})
	t.Run("list YAML", func(t *testing.T) {
		resp, body := send(t, "GET", "/api/foos", media.ApplicationYAML, "", "")
		assert.Equal(t, 200, resp.StatusCode)
		var foos []Foo
		require.NoError(t, media.YAML().Decode(body, &foos))
		assert.Equal(t, Foos, foos)
	})
	t.Run("not acceptable", func(t *testing.T) {
		before := s.Requests()
		resp, _ := send(t, "GET", "/api/foos", "text/csv", "", "")
		assert.Equal(t, 406, resp.StatusCode)
		assert.Equal(t, before+1, s.Requests())
	})
	t.Run("post unsupported media type", func(t *testing.T) {
		resp, body := send(t, "POST", "/api/foos", media.ApplicationJSON, "text/csv", "a,b")
		assert.Equal(t, 415, resp.StatusCode)
		var e ErrorBody
		require.NoError(t, media.JSON().Decode(body, &e))
		assert.Equal(t, "foos", e.Resource)
	})
	t.Run("post bad body", func(t *testing.T) {
		resp, _ := send(t, "POST", "/api/foos", media.ApplicationJSON, media.ApplicationJSON, "{")
		assert.Equal(t, 400, resp.StatusCode)
	})
	t.Run("post", func(t *testing.T) {
		resp, body := send(t, "POST", "/api/foos", media.ApplicationXML, media.ApplicationJSON, `{"name":"n","description":"d"}`)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, "<int>1</int>", string(body))
		assert.Equal(t, []Foo{{Name: "n", Description: "d"}}, s.Posted())
	})
	t.Run("error", func(t *testing.T) {
		resp, body := send(t, "GET", "/api/error/oops", media.ApplicationXML, "", "")
		assert.Equal(t, 500, resp.StatusCode)
		assert.Equal(t, "<ErrorBody><message>oops</message><resource>error</resource></ErrorBody>", string(body))
	})
}
