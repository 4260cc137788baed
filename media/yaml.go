// Copyright 2021 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package media

import "gopkg.in/yaml.v3"

type yamlSerializer struct{}

// YAML returns a serializer for application/yaml.
func YAML() Serializer {
	return yamlSerializer{}
}

func (yamlSerializer) MediaType() string {
	return ApplicationYAML
}

func (yamlSerializer) Encode(v interface{}) ([]byte, error) {
	return yaml.Marshal(v)
}

func (yamlSerializer) Decode(data []byte, v interface{}) error {
	return yaml.Unmarshal(data, v)
}
