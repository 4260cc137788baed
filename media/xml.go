// Copyright 2021 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package media

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"reflect"
	"strings"
)

// arrayPrefix prefixes the root element name of an XML collection, as
// in <ArrayOfFoo><Foo>...</Foo><Foo>...</Foo></ArrayOfFoo>.
const arrayPrefix = "ArrayOf"

type xmlSerializer struct{}

// XML returns a serializer for application/xml.
//
// Values other than slices and arrays are encoded and decoded exactly
// as by the encoding/xml package. A slice or array, which has no
// natural root element in XML, is encoded inside a collection element
// named "ArrayOf" followed by the element type's name. When decoding
// into a slice, the serializer accepts either a collection element,
// meaning any root element not named like the slice's element type, or
// a plain sequence of top-level elements named like the element type,
// appending one slice element per XML element.
func XML() Serializer {
	return xmlSerializer{}
}

func (xmlSerializer) MediaType() string {
	return ApplicationXML
}

func (xmlSerializer) Encode(v interface{}) ([]byte, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr && !rv.IsNil() {
		rv = rv.Elem()
	}
	if !rv.IsValid() || !isCollection(rv.Type()) {
		return xml.Marshal(v)
	}

	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	start := xml.StartElement{Name: xml.Name{Local: arrayPrefix + elemName(rv.Type().Elem())}}
	if err := enc.EncodeToken(start); err != nil {
		return nil, err
	}
	for i := 0; i < rv.Len(); i++ {
		if err := enc.Encode(rv.Index(i).Interface()); err != nil {
			return nil, err
		}
	}
	if err := enc.EncodeToken(start.End()); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (xmlSerializer) Decode(data []byte, v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.New("restx/media: xml decode target must be a non-nil pointer")
	}
	target := rv.Elem()
	if target.Kind() != reflect.Slice || !isCollection(target.Type()) {
		return xml.Unmarshal(data, v)
	}

	target.Set(reflect.MakeSlice(target.Type(), 0, 0))
	d := xml.NewDecoder(bytes.NewReader(data))
	name := xmlName(target.Type().Elem())
	first := true
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if first {
			first = false
			if strings.HasPrefix(se.Name.Local, arrayPrefix) || se.Name.Local != name {
				continue
			}
		}
		elem := reflect.New(target.Type().Elem())
		if err = d.DecodeElement(elem.Interface(), &se); err != nil {
			return err
		}
		target.Set(reflect.Append(target, elem.Elem()))
	}
}

// isCollection reports whether t is a slice or array other than a
// byte slice, which encoding/xml treats as character data.
func isCollection(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return t.Elem().Kind() != reflect.Uint8
	default:
		return false
	}
}

// xmlName returns the local element name encoding/xml gives a value
// of type t: the name in an XMLName field tag if there is one, and the
// type name otherwise.
func xmlName(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() == reflect.Struct {
		if f, ok := t.FieldByName("XMLName"); ok {
			tag := strings.Split(f.Tag.Get("xml"), ",")[0]
			if i := strings.LastIndex(tag, " "); i >= 0 {
				tag = tag[i+1:]
			}
			if tag != "" {
				return tag
			}
		}
	}
	return elemName(t)
}

func elemName(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Name() != "" {
		return t.Name()
	}
	return "anyType"
}
