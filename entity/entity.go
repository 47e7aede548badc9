// Package entity provides the output container that accumulates extracted
// content. An EntityObject is a flat key/value store with overwrite-on-repeat
// semantics and deterministic serialization order.
package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// EntityObject accumulates named content across a single extraction pass.
// Repeated writes to the same key overwrite; insertion order of first writes
// is preserved for serialization. Not safe for concurrent writers: use one
// instance per payload.
type EntityObject struct {
	objType string
	version string
	keys    []string
	content map[string]any
}

// NewEntityObject creates an empty entity with the given type and version
// envelope attributes. Either may be empty, in which case it is omitted from
// the serialized form.
func NewEntityObject(objType, version string) *EntityObject {
	return &EntityObject{
		objType: objType,
		version: version,
		content: make(map[string]any),
	}
}

// AddContent records value under key. A later write for the same key replaces
// the earlier one without changing its position.
func (e *EntityObject) AddContent(key string, value any) {
	if _, ok := e.content[key]; !ok {
		e.keys = append(e.keys, key)
	}

	e.content[key] = value
}

// Content returns the value recorded under key.
func (e *EntityObject) Content(key string) (any, bool) {
	v, ok := e.content[key]
	return v, ok
}

// Len returns the number of distinct keys recorded.
func (e *EntityObject) Len() int {
	return len(e.keys)
}

// Keys returns the recorded keys in first-insertion order.
func (e *EntityObject) Keys() []string {
	out := make([]string, len(e.keys))
	copy(out, e.keys)
	return out
}

// Type returns the entity type attribute.
func (e *EntityObject) Type() string {
	return e.objType
}

// Version returns the entity version attribute.
func (e *EntityObject) Version() string {
	return e.version
}

// MarshalJSON serializes the envelope attributes followed by the content keys
// in insertion order.
func (e *EntityObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	first := true
	writeMember := func(key string, value any) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')

		v, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to marshal content %q: %w", key, err)
		}
		buf.Write(v)

		return nil
	}

	if e.objType != "" {
		if err := writeMember("type", e.objType); err != nil {
			return nil, err
		}
	}

	if e.version != "" {
		if err := writeMember("version", e.version); err != nil {
			return nil, err
		}
	}

	for _, key := range e.keys {
		if err := writeMember(key, e.content[key]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
