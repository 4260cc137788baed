// Copyright 2021 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_Encode(t *testing.T) {
	assert.Equal(t, "", Params(nil).Encode())
	assert.Equal(t, "", Params{}.Encode())
	assert.Equal(t, "param1=value1&param2=value2", Params{P("param1", "value1"), P("param2", "value2")}.Encode())
	assert.Equal(t, "z=1&a=2", Params{P("z", "1"), P("a", "2")}.Encode(), "order must be preserved")
	assert.Equal(t, "k=v1&k=v2", Params{P("k", "v1"), P("k", "v2")}.Encode())
	assert.Equal(t, "a+b=c%26d%3De&empty=", Params{P("a b", "c&d=e"), P("empty", "")}.Encode())

	vs, err := url.ParseQuery(Params{P("x", "1/2?"), P("y", "ü")}.Encode())
	require.NoError(t, err)
	assert.Equal(t, "1/2?", vs.Get("x"))
	assert.Equal(t, "ü", vs.Get("y"))
}

func TestParams_Get(t *testing.T) {
	ps := Params{P("a", "1"), P("b", "2"), P("a", "3")}
	assert.Equal(t, "1", ps.Get("a"))
	assert.Equal(t, "2", ps.Get("b"))
	assert.Equal(t, "", ps.Get("c"))
}

func TestFormatURI(t *testing.T) {
	testCases := []struct {
		format string
		args   []interface{}
		want   string
	}{
		{"/api/foos/{0}", []interface{}{1}, "/api/foos/1"},
		{"/api/foos/{0}/bars/{1}", []interface{}{1, "a b"}, "/api/foos/1/bars/a%20b"},
		{"/api/{1}/{0}", []interface{}{"x", "y"}, "/api/y/x"},
		{"/api/foos/{0}", []interface{}{"a/b"}, "/api/foos/a%2Fb"},
		{"/api/foos/{1}", []interface{}{1}, "/api/foos/{1}"},
		{"/api/foos/{name}", []interface{}{1}, "/api/foos/{name}"},
		{"/api/foos/{0", []interface{}{1}, "/api/foos/{0"},
		{"/api/foos", nil, "/api/foos"},
		{"{0}{0}", []interface{}{7}, "77"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.format, func(t *testing.T) {
			assert.Equal(t, testCase.want, FormatURI(testCase.format, testCase.args...))
		})
	}
}
