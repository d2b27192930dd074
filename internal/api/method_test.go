package api

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echo(args GreetArgs) (GreetResponse, error) {
	return GreetResponse{Greeting: "echo " + args.Name}, nil
}

func TestMethod_StoresInputs(t *testing.T) {
	// Test: Construction keeps the name and the type labels
	m := NewMethod("echo", GreetArgsFromObject, echo)

	assert.Equal(t, "echo", m.Name())
	assert.Equal(t, reflect.TypeOf(GreetArgs{}), m.ArgsType())
	assert.Equal(t, reflect.TypeOf(GreetResponse{}), m.ResponseType())
}

func TestMethod_InvokeMatchesDirectCall(t *testing.T) {
	// Test: Invoke returns exactly what the wrapped function returns
	m := NewMethod("echo", GreetArgsFromObject, echo)

	args := GreetArgs{Name: "World"}
	direct, directErr := echo(args)
	viaMethod, err := m.Invoke(args)

	assert.Equal(t, directErr, err)
	assert.Equal(t, direct, viaMethod)
}

func TestMethod_InvokePropagatesError(t *testing.T) {
	// Test: Errors from the wrapped function are not translated
	boom := errors.New("boom")
	m := NewMethod("fail", GreetArgsFromObject, func(GreetArgs) (GreetResponse, error) {
		return GreetResponse{}, boom
	})

	_, err := m.Invoke(GreetArgs{})
	assert.Same(t, boom, err)

	_, err = m.Call([]byte(`{"name": "x"}`))
	assert.Same(t, boom, err)
}

func TestMethod_Call(t *testing.T) {
	m := NewMethod("echo", GreetArgsFromObject, echo)

	t.Run("success", func(t *testing.T) {
		out, err := m.Call([]byte(`{"name": "World"}`))
		require.NoError(t, err)
		assert.JSONEq(t, `{"greeting": "echo World"}`, string(out))
	})

	t.Run("malformed json", func(t *testing.T) {
		out, err := m.Call([]byte(`not json`))
		assert.ErrorIs(t, err, ErrMalformedJSON)
		assert.Nil(t, out)
	})

	t.Run("shape mismatch", func(t *testing.T) {
		out, err := m.Call([]byte(`{"nom": "World"}`))
		assert.ErrorIs(t, err, ErrDecode)
		assert.Nil(t, out)
	})
}

func TestMethod_DecodeArgs(t *testing.T) {
	m := NewMethod("echo", GreetArgsFromObject, echo)

	args, err := m.DecodeArgs(map[string]any{"name": "Ada"})
	require.NoError(t, err)
	assert.Equal(t, GreetArgs{Name: "Ada"}, args)
}

type profile struct {
	ID       string   `json:"id"`
	Nickname *string  `json:"nickname"`
	Tags     []string `json:"tags,omitempty"`
	Age      int      `json:"age"`
	Score    float64
	Active   bool `json:"active"`
	Internal string `json:"-"`
	hidden   string
}

func (p profile) ToObject() Object { return Object{"id": p.ID} }

func TestMethod_Describe(t *testing.T) {
	// Test: Descriptor lists type names and JSON fields
	m := NewMethod("echo", GreetArgsFromObject, echo)

	d := m.Describe()
	assert.Equal(t, "echo", d.Name)
	assert.Equal(t, TypeInfo{
		Name:   "GreetArgs",
		Fields: []Field{{Name: "name", Type: "String", Required: true}},
	}, d.Args)
	assert.Equal(t, TypeInfo{
		Name:   "GreetResponse",
		Fields: []Field{{Name: "greeting", Type: "String", Required: true}},
	}, d.Response)
}

func TestTypeInfo_Fields(t *testing.T) {
	// Test: Optional, list and untagged fields are described
	info := typeInfo(reflect.TypeOf(&profile{}))

	assert.Equal(t, "profile", info.Name)
	assert.Equal(t, []Field{
		{Name: "id", Type: "String", Required: true},
		{Name: "nickname", Type: "String", Required: false},
		{Name: "tags", Type: "[String]", Required: false},
		{Name: "age", Type: "Int", Required: true},
		{Name: "Score", Type: "Float", Required: true},
		{Name: "active", Type: "Boolean", Required: true},
	}, info.Fields)
}
