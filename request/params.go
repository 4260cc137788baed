// Copyright 2021 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// A Param is a single query parameter.
type Param struct {
	Key   string
	Value string
}

// P returns the query parameter key=value.
func P(key, value string) Param {
	return Param{Key: key, Value: value}
}

// Params is an ordered list of query parameters. Unlike url.Values,
// Params preserves the order in which parameters were given.
type Params []Param

// Encode encodes the parameters in order as key=value pairs joined by
// '&', with both keys and values URL-encoded. Encoding an empty list
// produces the empty string.
func (ps Params) Encode() string {
	if len(ps) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range ps {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// Get returns the value of the first parameter with the given key, or
// the empty string if there is none.
func (ps Params) Get(key string) string {
	for _, p := range ps {
		if p.Key == key {
			return p.Value
		}
	}
	return ""
}

// FormatURI replaces each positional placeholder {0}, {1}, ... in
// format with the corresponding argument, formatted with fmt.Sprint and
// escaped as a URL path segment.
//
// Placeholders whose index is out of range, and braces which do not
// enclose a decimal index, are left unchanged.
//
//	request.FormatURI("/api/foos/{0}/bars/{1}", 1, "a b") // "/api/foos/1/bars/a%20b"
func FormatURI(format string, args ...interface{}) string {
	var b strings.Builder
	for {
		open := strings.IndexByte(format, '{')
		if open < 0 {
			break
		}
		end := strings.IndexByte(format[open:], '}')
		if end < 0 {
			break
		}
		end += open
		b.WriteString(format[:open])
		i, err := strconv.Atoi(format[open+1 : end])
		if err != nil || i < 0 || i >= len(args) {
			b.WriteString(format[open : end+1])
		} else {
			b.WriteString(url.PathEscape(fmt.Sprint(args[i])))
		}
		format = format[end+1:]
	}
	b.WriteString(format)
	return b.String()
}
