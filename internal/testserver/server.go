// Copyright 2021 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package testserver provides an in-process REST server with a small
// "foos" resource, used to exercise the client end to end.
//
// The server negotiates representations with the same serializers the
// client uses. It offers JSON, XML and YAML, and answers 406 to any
// other Accept media type.
package testserver

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"github.com/gogama/restx/media"
)

// Foo is the resource served under /api/foos.
type Foo struct {
	Name        string `json:"name" xml:"Name" yaml:"name"`
	Description string `json:"description" xml:"Description" yaml:"description"`
}

// ErrorBody is the payload of every error response the server sends.
type ErrorBody struct {
	Message  string `json:"message" xml:"message" yaml:"message"`
	Resource string `json:"resource" xml:"resource" yaml:"resource"`
}

// Foos are the foos listed by GET /api/foos, in order. Foo n is served
// by GET /api/foos/n.
var Foos = []Foo{
	{Name: "Foo 1", Description: "The first foo"},
	{Name: "Foo 2", Description: "The second foo"},
	{Name: "Foo 3", Description: "The third foo"},
}

const serializerKey = "serializer"

// A Server is a running test server. Close it when done.
type Server struct {
	*httptest.Server

	serializers *media.Registry
	requests    atomic.Int64

	mu     sync.Mutex
	last   *http.Request
	posted []Foo
}

// New starts and returns a new Server.
func New() *Server {
	gin.SetMode(gin.TestMode)
	s := &Server{
		serializers: media.NewRegistry(media.JSON(), media.XML(), media.YAML()),
	}

	r := gin.New()
	r.Use(s.record, s.negotiate)
	api := r.Group("/api")
	api.GET("/foos", s.listFoos)
	api.GET("/foos/:id", s.getFoo)
	api.POST("/foos", s.createFoo)
	api.PUT("/foos/:id", s.replaceFoo)
	api.DELETE("/foos/:id", s.deleteFoo)
	api.GET("/error/:message", s.fail)

	s.Server = httptest.NewServer(r)
	return s
}

// Requests returns the number of requests the server has received.
func (s *Server) Requests() int64 {
	return s.requests.Load()
}

// Last returns the last request the server received, or nil. Its body
// has already been consumed.
func (s *Server) Last() *http.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Posted returns the foos received by POST /api/foos, in order.
func (s *Server) Posted() []Foo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Foo(nil), s.posted...)
}

func (s *Server) record(c *gin.Context) {
	s.requests.Add(1)
	s.mu.Lock()
	s.last = c.Request
	s.mu.Unlock()
	c.Next()
}

func (s *Server) negotiate(c *gin.Context) {
	accept := media.Parse(c.GetHeader("Accept"))
	if accept == "" {
		accept = media.ApplicationJSON
	}
	ser, err := s.serializers.Resolve(accept)
	if err != nil {
		c.AbortWithStatus(http.StatusNotAcceptable)
		return
	}
	c.Set(serializerKey, ser)
	c.Next()
}

func (s *Server) listFoos(c *gin.Context) {
	name, description := c.Query("param1"), c.Query("param2")
	if name != "" || description != "" {
		render(c, http.StatusOK, Foo{Name: name, Description: description})
		return
	}
	render(c, http.StatusOK, Foos)
}

func (s *Server) getFoo(c *gin.Context) {
	i, ok := fooIndex(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, Foos[i])
}

func (s *Server) createFoo(c *gin.Context) {
	foo, ok := s.readFoo(c)
	if !ok {
		return
	}
	s.mu.Lock()
	s.posted = append(s.posted, foo)
	s.mu.Unlock()
	render(c, http.StatusOK, 1)
}

func (s *Server) replaceFoo(c *gin.Context) {
	if _, ok := fooIndex(c); !ok {
		return
	}
	foo, ok := s.readFoo(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, foo)
}

func (s *Server) deleteFoo(c *gin.Context) {
	if _, ok := fooIndex(c); !ok {
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) fail(c *gin.Context) {
	render(c, http.StatusInternalServerError, ErrorBody{
		Message:  c.Param("message"),
		Resource: "error",
	})
}

func (s *Server) readFoo(c *gin.Context) (Foo, bool) {
	var foo Foo
	ser, err := s.serializers.Resolve(c.ContentType())
	if err != nil {
		render(c, http.StatusUnsupportedMediaType, ErrorBody{Message: err.Error(), Resource: "foos"})
		return foo, false
	}
	data, err := c.GetRawData()
	if err == nil {
		err = ser.Decode(data, &foo)
	}
	if err != nil {
		render(c, http.StatusBadRequest, ErrorBody{Message: err.Error(), Resource: "foos"})
		return foo, false
	}
	return foo, true
}

func fooIndex(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 || id > len(Foos) {
		render(c, http.StatusNotFound, ErrorBody{Message: "foo not found", Resource: "foos"})
		return 0, false
	}
	return id - 1, true
}

func render(c *gin.Context, code int, v interface{}) {
	ser := c.MustGet(serializerKey).(media.Serializer)
	data, err := ser.Encode(v)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.Data(code, ser.MediaType()+"; charset=utf-8", data)
}
