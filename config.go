// Copyright 2021 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restx

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gogama/restx/media"
	"github.com/spf13/viper"
)

// DefaultTimeout is the transport timeout used by NewFromConfig when
// the configuration does not specify one.
const DefaultTimeout = 30 * time.Second

// Config describes a Client in a form that can be loaded from a file.
//
// A Config is turned into a Client by NewFromConfig. Only the built-in
// serializers can be named in MediaTypes; a Client needing a custom
// serializer must be configured in code.
type Config struct {
	// BaseURL is the client's base URL. Optional.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"omitempty,url"`
	// Accept is the client's default accept media type. If set, it must
	// be one of MediaTypes.
	Accept string `yaml:"accept" mapstructure:"accept"`
	// MediaTypes lists the built-in serializers to register, in order.
	// Defaults to JSON then XML.
	MediaTypes []string `yaml:"media_types" mapstructure:"media_types" validate:"dive,required"`
	// Timeout is the timeout of the underlying http.Client. Defaults
	// to DefaultTimeout.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"gte=0"`
	// Headers are default request headers sent on every call.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`
}

// ApplyDefaults fills unset fields with their default values.
func (c *Config) ApplyDefaults() {
	if len(c.MediaTypes) == 0 {
		c.MediaTypes = []string{media.ApplicationJSON, media.ApplicationXML}
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// Validate reports whether the configuration describes a usable
// Client.
func (c *Config) Validate() error {
	if err := getValidator().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("restx: invalid config: %w", err)
		}
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
		}
		return fmt.Errorf("restx: invalid config: %s", strings.Join(msgs, "; "))
	}

	for _, mt := range c.MediaTypes {
		if _, ok := media.Builtin(mt); !ok {
			return fmt.Errorf("restx: invalid config: %w", &media.NotSupportedError{MediaType: mt})
		}
	}

	if c.Accept != "" {
		for _, mt := range c.MediaTypes {
			if strings.EqualFold(media.Parse(mt), media.Parse(c.Accept)) {
				return nil
			}
		}
		return fmt.Errorf("restx: invalid config: accept media type %q is not in media_types", c.Accept)
	}

	return nil
}

// LoadConfig reads a Config from the file at path. The file format is
// taken from the file extension (YAML, JSON and TOML are among those
// understood). Defaults are applied, and the result is validated.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("restx: failed to read config file %s: %w", path, err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("restx: failed to unmarshal config file %s: %w", path, err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// NewFromConfig returns a Client built from cfg, after applying
// defaults and validating it.
//
// The client sends requests using a new http.Client whose timeout is
// cfg.Timeout.
func NewFromConfig(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	reg := media.NewRegistry()
	for _, mt := range cfg.MediaTypes {
		s, _ := media.Builtin(mt)
		reg.Add(s)
	}

	var header http.Header
	if len(cfg.Headers) > 0 {
		header = make(http.Header, len(cfg.Headers))
		for k, v := range cfg.Headers {
			header.Set(k, v)
		}
	}

	return &Client{
		HTTPDoer:    &http.Client{Timeout: cfg.Timeout},
		BaseURL:     cfg.BaseURL,
		Accept:      cfg.Accept,
		Header:      header,
		Serializers: reg,
	}, nil
}
