// Copyright 2021 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package logging provides an event handler which writes structured
// logs of the calls made by a restx.Client using a zap logger.
//
// The client itself never logs. Install the handler to get one debug
// entry per request sent and one entry per call when it ends. The level
// of the final entry depends on how the call ended: Info if it
// succeeded, Warn if the server answered with an error, and Error if
// the call faulted or no response was received.
package logging

import (
	"github.com/gogama/restx"
	"github.com/gogama/restx/request"
	"github.com/gogama/restx/requestid"
	"github.com/gogama/restx/transient"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a zap logger. If dev is true, a development logger
// is built and level is ignored. Otherwise a production logger is built
// at the named level ("debug", "info", "warn" or "error"), defaulting
// to "warn".
func NewLogger(level string, dev bool) (*zap.Logger, error) {
	var cfg zap.Config

	if dev {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()

		switch level {
		case "error":
			cfg.Level.SetLevel(zap.ErrorLevel)
		case "info":
			cfg.Level.SetLevel(zap.InfoLevel)
		case "debug":
			cfg.Level.SetLevel(zap.DebugLevel)
		default:
			cfg.Level.SetLevel(zap.WarnLevel)
		}
	}

	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder

	return cfg.Build()
}

// A Handler logs execution events to a zap logger.
type Handler struct {
	l *zap.Logger
}

// NewHandler returns a Handler logging to l. If l is nil, a no-op
// logger is used.
func NewHandler(l *zap.Logger) *Handler {
	if l == nil {
		l = zap.NewNop()
	}
	return &Handler{l: l.Named("restx")}
}

// Install adds a Handler logging to l to the BeforeSend and
// AfterExecutionEnd chains of g.
func Install(g *restx.HandlerGroup, l *zap.Logger) *Handler {
	h := NewHandler(l)
	g.PushBack(restx.BeforeSend, h)
	g.PushBack(restx.AfterExecutionEnd, h)
	return h
}

// Handle logs e. Only the BeforeSend and AfterExecutionEnd events are
// logged.
func (h *Handler) Handle(evt restx.Event, e *request.Execution) {
	switch evt {
	case restx.BeforeSend:
		h.l.Debug("sending request", h.requestFields(e)...)
	case restx.AfterExecutionEnd:
		h.end(e)
	}
}

func (h *Handler) end(e *request.Execution) {
	fields := append(h.requestFields(e),
		zap.Stringer("state", e.State),
		zap.Duration("duration", e.Duration()),
	)
	if code := e.StatusCode(); code != 0 {
		fields = append(fields, zap.Int("status", code))
	}

	switch e.State {
	case request.Succeeded:
		h.l.Info("call succeeded", fields...)
	case request.Failed:
		h.l.Warn("call failed", append(fields, zap.Error(e.Err))...)
	default:
		fields = append(fields, zap.Error(e.Err))
		if e.State == request.Interrupted {
			fields = append(fields, zap.Stringer("category", transient.Categorize(e.Err)))
		}
		h.l.Error("call did not complete", fields...)
	}
}

func (h *Handler) requestFields(e *request.Execution) []zap.Field {
	fields := make([]zap.Field, 0, 8)
	if p := e.Plan; p != nil {
		fields = append(fields, zap.String("method", p.Method))
	}
	if r := e.Request; r != nil {
		fields = append(fields, zap.String("url", r.URL.String()))
	} else if e.Plan != nil && e.Plan.URL != nil {
		fields = append(fields, zap.String("url", e.Plan.URL.String()))
	}
	if e.Accept != "" {
		fields = append(fields, zap.String("accept", e.Accept))
	}
	if e.ContentType != "" {
		fields = append(fields, zap.String("content_type", e.ContentType))
	}
	if id := requestid.From(e); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	return fields
}
