// Package api declares the contract shared by API argument and response types
// and the descriptor that pairs them with an invocation function.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Object is a decoded generic JSON object
type Object = map[string]any

// Encodable is implemented by values that can render themselves as a decoded object
type Encodable interface {
	// ToObject returns a JSON-serializable representation of the value
	ToObject() Object
}

// Decoder builds a T from a decoded generic value
type Decoder[T any] func(obj any) (T, error)

// DecodeObject parses JSON text into a generic value
func DecodeObject(data []byte) (any, error) {
	var obj any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	return obj, nil
}

// Decode parses JSON text and builds a T from it
func Decode[T any](data []byte, decode Decoder[T]) (T, error) {
	obj, err := DecodeObject(data)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode(obj)
}

// Encode renders v as JSON text. HTML characters are written as-is.
func Encode(v Encodable) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v.ToObject()); err != nil {
		return nil, fmt.Errorf("failed to encode object: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// AsObject asserts that obj is a JSON object
func AsObject(typeName string, obj any) (Object, error) {
	m, ok := obj.(map[string]any)
	if !ok {
		return nil, &DecodeError{Type: typeName, Reason: ReasonNotObject}
	}
	return m, nil
}

// RequiredString reads a required string field from a decoded object.
// Empty strings are valid values.
func RequiredString(typeName string, m Object, key string) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", &DecodeError{Type: typeName, Field: key, Reason: ReasonMissingField}
	}
	s, ok := v.(string)
	if !ok {
		return "", &DecodeError{Type: typeName, Field: key, Reason: ReasonWrongType}
	}
	return s, nil
}
