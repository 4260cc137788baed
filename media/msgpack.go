// Copyright 2021 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package media

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"
)

type msgpackSerializer struct{}

// MsgPack returns a serializer for application/msgpack.
//
// Struct fields are keyed by their msgpack tag, falling back to the
// json tag, and then to the Go field name.
func MsgPack() Serializer {
	return msgpackSerializer{}
}

func (msgpackSerializer) MediaType() string {
	return ApplicationMsgPack
}

func (msgpackSerializer) Encode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (msgpackSerializer) Decode(data []byte, v interface{}) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	return dec.Decode(v)
}
