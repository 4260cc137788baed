// Copyright 2021 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package requestid

import (
	"net/http"
	"testing"

	"github.com/gogama/restx"
	"github.com/gogama/restx/internal/testserver"
	"github.com/gogama/restx/request"
	"github.com/google/uuid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler(t *testing.T) {
	server := testserver.New()
	defer server.Close()

	handlers := &restx.HandlerGroup{}
	Install(handlers)
	c := restx.New(server.Client())
	c.BaseURL = server.URL
	c.Handlers = handlers

	t.Run("stamped", func(t *testing.T) {
		p, err := request.NewPlan("GET", "/api/foos/1", nil)
		require.NoError(t, err)
		e, err := c.Do(p, nil)

		require.NoError(t, err)
		id := From(e)
		_, err = uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, server.Last().Header.Get(Header))
		assert.Empty(t, p.Header.Get(Header))
	})
	t.Run("unique", func(t *testing.T) {
		ids := make(map[string]bool)
		for i := 0; i < 5; i++ {
			p, err := request.NewPlan("GET", "/api/foos/1", nil)
			require.NoError(t, err)
			e, err := c.Do(p, nil)
			require.NoError(t, err)
			ids[From(e)] = true
		}
		assert.Len(t, ids, 5)
	})
	t.Run("kept", func(t *testing.T) {
		p, err := request.NewPlan("GET", "/api/foos/1", nil)
		require.NoError(t, err)
		p.Header.Set(Header, "caller-id")
		e, err := c.Do(p, nil)

		require.NoError(t, err)
		assert.Equal(t, "caller-id", From(e))
		assert.Equal(t, "caller-id", server.Last().Header.Get(Header))
	})
}

func TestStamp(t *testing.T) {
	t.Run("other event", func(t *testing.T) {
		r, err := http.NewRequest("GET", "http://example.com", nil)
		require.NoError(t, err)
		e := &request.Execution{Request: r}
		Handler.Handle(restx.AfterReceive, e)
		assert.Empty(t, r.Header.Get(Header))
		assert.Empty(t, From(e))
	})
	t.Run("no request", func(t *testing.T) {
		e := &request.Execution{}
		Handler.Handle(restx.BeforeSend, e)
		assert.Empty(t, From(e))
	})
}
