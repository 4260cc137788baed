// Copyright 2021 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transient

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected Category
	}{
		{"nil", nil, Not},
		{"plain", errors.New("foo"), Not},
		{"empty chain", chain{}, Not},
		{"plain chain", chain{errors.New("bar")}, Not},
		{"ETIMEDOUT", syscall.ETIMEDOUT, Timeout},
		{"net timeout", netTimeout{timeout: true}, Timeout},
		{"transport ETIMEDOUT", &url.Error{Op: "Get", Err: syscall.ETIMEDOUT}, Timeout},
		{"transport net timeout", &url.Error{Op: "Get", Err: netTimeout{timeout: true}}, Timeout},
		{"deep timeout", chain{chain{netTimeout{timeout: true}}}, Timeout},
		{"timeout wins over reset", netTimeout{true, syscall.ECONNRESET}, Timeout},
		{"deadline", context.DeadlineExceeded, Timeout},
		{"transport deadline", &url.Error{Op: "Get", Err: context.DeadlineExceeded}, Timeout},
		{"ECONNRESET", syscall.ECONNRESET, ConnReset},
		{"chained ECONNRESET", chain{syscall.ECONNRESET}, ConnReset},
		{"non-timeout ECONNRESET", netTimeout{false, syscall.ECONNRESET}, ConnReset},
		{"ECONNREFUSED", syscall.ECONNREFUSED, ConnRefused},
		{"transport ECONNREFUSED", &url.Error{Op: "Post", Err: chain{netTimeout{false, syscall.ECONNREFUSED}}}, ConnRefused},
		{"canceled", context.Canceled, Canceled},
		{"transport canceled", &url.Error{Op: "Post", Err: chain{context.Canceled}}, Canceled},
		{"formatted canceled", fmt.Errorf("calling foos: %w", context.Canceled), Canceled},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, Categorize(testCase.err))
		})
	}
}

func TestCategory(t *testing.T) {
	testCases := []struct {
		cat       Category
		name      string
		transient bool
	}{
		{Not, "not", false},
		{Timeout, "timeout", true},
		{ConnRefused, "conn_refused", true},
		{ConnReset, "conn_reset", true},
		{Canceled, "canceled", false},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.name, testCase.cat.String())
			assert.Equal(t, testCase.transient, testCase.cat.Transient())
		})
	}
	assert.Equal(t, "unknown", Category(42).String())
}

// chain wraps the next error in a chain, if any.
type chain struct {
	next error
}

func (err chain) Error() string {
	return fmt.Sprintf("chain -> %v", err.next)
}

func (err chain) Unwrap() error {
	return err.next
}

// netTimeout mimics a net.Error, optionally wrapping a cause.
type netTimeout struct {
	timeout bool
	cause   error
}

func (err netTimeout) Error() string {
	return fmt.Sprintf("net error (timeout=%t): %v", err.timeout, err.cause)
}

func (err netTimeout) Timeout() bool {
	return err.timeout
}

func (err netTimeout) Unwrap() error {
	return err.cause
}
