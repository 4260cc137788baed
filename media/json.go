// Copyright 2021 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package media

import "encoding/json"

type jsonSerializer struct{}

// JSON returns a serializer for application/json.
func JSON() Serializer {
	return jsonSerializer{}
}

func (jsonSerializer) MediaType() string {
	return ApplicationJSON
}

func (jsonSerializer) Encode(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonSerializer) Decode(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
