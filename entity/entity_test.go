package entity_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metadata-mapper/entity"
)

func ExampleEntityObject() {
	obj := entity.NewEntityObject("com.example.issue", "1.0")
	obj.AddContent("title", "hello")
	obj.AddContent("active", true)
	obj.AddContent("title", "world") // overwrite keeps position

	out, _ := json.Marshal(obj)
	fmt.Println(string(out))
	// Output:
	// {"type":"com.example.issue","version":"1.0","title":"world","active":true}
}

func TestAddContent(t *testing.T) {
	obj := entity.NewEntityObject("", "")

	obj.AddContent("a", "1")
	obj.AddContent("b", false)
	obj.AddContent("a", "2")

	assert.Equal(t, 2, obj.Len())
	assert.Equal(t, []string{"a", "b"}, obj.Keys())

	v, ok := obj.Content("a")
	require.True(t, ok)
	assert.Equal(t, "2", v)

	_, ok = obj.Content("missing")
	assert.False(t, ok)
}

func TestMarshalOmitsEmptyEnvelope(t *testing.T) {
	obj := entity.NewEntityObject("", "")
	obj.AddContent("k", "")

	out, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.JSONEq(t, `{"k":""}`, string(out))
}

func TestMarshalNested(t *testing.T) {
	inner := entity.NewEntityObject("com.example.user", "1.0")
	inner.AddContent("name", "rsanchez")

	obj := entity.NewEntityObject("com.example.issue", "1.0")
	obj.AddContent("assignee", inner)

	out, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"type":"com.example.issue","version":"1.0","assignee":{"type":"com.example.user","version":"1.0","name":"rsanchez"}}`,
		string(out))
}
