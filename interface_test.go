// Copyright 2021 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restx

import (
	"context"
	"errors"
	"testing"

	"github.com/gogama/restx/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ctxKey struct{}

var testCtx = context.WithValue(context.Background(), ctxKey{}, "test")

func TestGet(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		m := newMockDoer(t)
		m.On("Do", mock.MatchedBy(func(p *request.Plan) bool {
			return p.Method == "GET" && p.URL.String() == "foo" &&
				p.RawQuery() == "a=1&b=2" && !p.HasBody() &&
				p.Context().Value(ctxKey{}) == "test"
		}), mock.AnythingOfType("*string")).
			Run(func(args mock.Arguments) {
				*args.Get(1).(*string) = "result"
			}).
			Return(&request.Execution{}, nil).
			Once()
		v, err := Get[string](testCtx, m, "foo", request.P("a", "1"), request.P("b", "2"))
		assert.NoError(t, err)
		assert.Equal(t, "result", v)
		m.AssertExpectations(t)
	})
	t.Run("error from Doer", func(t *testing.T) {
		expected := errors.New("failed")
		m := newMockDoer(t)
		m.On("Do", mock.Anything, mock.AnythingOfType("*[]int")).
			Run(func(args mock.Arguments) {
				*args.Get(1).(*[]int) = []int{1}
			}).
			Return(&request.Execution{}, expected).
			Once()
		v, err := Get[[]int](testCtx, m, "foo")
		assert.Same(t, expected, err)
		assert.Nil(t, v)
		m.AssertExpectations(t)
	})
	t.Run("error invalid URL", func(t *testing.T) {
		m := newMockDoer(t)
		_, err := Get[string](testCtx, m, ":::")
		assert.Error(t, err)
		m.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
	})
	t.Run("error nil context", func(t *testing.T) {
		m := newMockDoer(t)
		_, err := Get[string](nil, m, "foo")
		assert.EqualError(t, err, "restx/request: nil context")
		m.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
	})
}

func TestPost(t *testing.T) {
	body := map[string]string{"ham": "eggs"}
	t.Run("OK", func(t *testing.T) {
		m := newMockDoer(t)
		m.On("Do", mock.MatchedBy(func(p *request.Plan) bool {
			return p.Method == "POST" && p.URL.String() == "baz" &&
				p.ContentType == "application/xml" &&
				assert.ObjectsAreEqual(body, p.Body)
		}), mock.AnythingOfType("*int")).
			Run(func(args mock.Arguments) {
				*args.Get(1).(*int) = 1
			}).
			Return(&request.Execution{}, nil).
			Once()
		id, err := Post[int](testCtx, m, "baz", body, "application/xml")
		assert.NoError(t, err)
		assert.Equal(t, 1, id)
		m.AssertExpectations(t)
	})
	t.Run("error invalid URL", func(t *testing.T) {
		m := newMockDoer(t)
		_, err := Post[int](testCtx, m, ":::", body, "")
		assert.Error(t, err)
		m.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
	})
}

func TestPut(t *testing.T) {
	m := newMockDoer(t)
	m.On("Do", mock.MatchedBy(func(p *request.Plan) bool {
		return p.Method == "PUT" && p.URL.String() == "qux" &&
			p.ContentType == "" && p.Body == "spam"
	}), mock.AnythingOfType("*string")).
		Return(&request.Execution{}, nil).
		Once()
	v, err := Put[string](testCtx, m, "qux", "spam", "")
	assert.NoError(t, err)
	assert.Equal(t, "", v)
	m.AssertExpectations(t)
}

func TestDelete(t *testing.T) {
	m := newMockDoer(t)
	m.On("Do", mock.MatchedBy(func(p *request.Plan) bool {
		return p.Method == "DELETE" && p.URL.String() == "foos/1" &&
			p.RawQuery() == "force=true" && !p.HasBody()
	}), mock.AnythingOfType("*struct {}")).
		Return(&request.Execution{}, nil).
		Once()
	_, err := Delete[struct{}](testCtx, m, "foos/1", request.P("force", "true"))
	require.NoError(t, err)
	m.AssertExpectations(t)
}

func TestClientIsDoer(t *testing.T) {
	var d Doer = &Client{}
	_, ok := d.(IdleCloser)
	assert.True(t, ok)
}

type mockDoer struct {
	mock.Mock
}

func newMockDoer(t *testing.T) *mockDoer {
	m := &mockDoer{}
	m.Test(t)
	return m
}

func (m *mockDoer) Do(p *request.Plan, v interface{}) (*request.Execution, error) {
	args := m.Called(p, v)
	e := args.Get(0)
	err := args.Error(1)
	if e == nil {
		return nil, err
	}
	return e.(*request.Execution), err
}
