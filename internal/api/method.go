package api

import (
	"fmt"
	"reflect"
	"strings"
)

// Method models a single API method: its argument type, its response type
// and the function that maps one to the other.
type Method[A Encodable, R Encodable] struct {
	name   string
	decode Decoder[A]
	invoke func(A) (R, error)
}

// NewMethod defines a new API method. Inputs are stored as given.
func NewMethod[A Encodable, R Encodable](name string, decode Decoder[A], invoke func(A) (R, error)) Method[A, R] {
	return Method[A, R]{
		name:   name,
		decode: decode,
		invoke: invoke,
	}
}

// Name returns the method name
func (m Method[A, R]) Name() string {
	return m.name
}

// ArgsType returns the type label of the method arguments
func (m Method[A, R]) ArgsType() reflect.Type {
	return reflect.TypeOf((*A)(nil)).Elem()
}

// ResponseType returns the type label of the method response
func (m Method[A, R]) ResponseType() reflect.Type {
	return reflect.TypeOf((*R)(nil)).Elem()
}

// DecodeArgs builds the argument value from a decoded generic object
func (m Method[A, R]) DecodeArgs(obj any) (A, error) {
	return m.decode(obj)
}

// Invoke applies the stored function. Errors are returned unchanged.
func (m Method[A, R]) Invoke(args A) (R, error) {
	return m.invoke(args)
}

// Call decodes raw JSON arguments, invokes the method and encodes the response
func (m Method[A, R]) Call(raw []byte) ([]byte, error) {
	args, err := Decode(raw, m.decode)
	if err != nil {
		return nil, err
	}

	resp, err := m.Invoke(args)
	if err != nil {
		return nil, err
	}

	return Encode(resp)
}

// Describe returns the introspection view of the method
func (m Method[A, R]) Describe() Descriptor {
	return Descriptor{
		Name:     m.name,
		Args:     typeInfo(m.ArgsType()),
		Response: typeInfo(m.ResponseType()),
	}
}

// Descriptor is the documentation view of a method
type Descriptor struct {
	Name     string   `json:"name"`
	Args     TypeInfo `json:"args"`
	Response TypeInfo `json:"response"`
}

// TypeInfo describes an argument or response type
type TypeInfo struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// Field describes one JSON field of a type
type Field struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

func typeInfo(t reflect.Type) TypeInfo {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	info := TypeInfo{
		Name:   t.Name(),
		Fields: []Field{},
	}
	if t.Kind() != reflect.Struct {
		return info
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		name, opts, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}

		info.Fields = append(info.Fields, Field{
			Name:     name,
			Type:     fieldType(f.Type),
			Required: !strings.Contains(opts, "omitempty") && f.Type.Kind() != reflect.Pointer,
		})
	}

	return info
}

func fieldType(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Pointer:
		return fieldType(t.Elem())
	case reflect.Slice, reflect.Array:
		return "[" + fieldType(t.Elem()) + "]"
	case reflect.String:
		return "String"
	case reflect.Bool:
		return "Boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "Int"
	case reflect.Float32, reflect.Float64:
		return "Float"
	case reflect.Struct:
		return t.Name()
	default:
		return fmt.Sprintf("Any(%s)", t.Kind())
	}
}
