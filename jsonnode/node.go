// Package jsonnode provides a read-only view over a decoded JSON document.
//
// The central type is Node, an immutable handle on one position in the
// document tree. Addressing a member that does not exist yields the Missing
// node rather than an error, and every operation on Missing is well-defined:
// descending stays Missing, coercion returns the supplied default. Callers
// can therefore walk arbitrarily deep paths against arbitrarily shaped
// payloads without null checks.
package jsonnode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Missing is the node returned when addressing a non-existent member.
// It is the zero value of Node; descending into it stays Missing.
var Missing = Node{}

// Node is an immutable read-only handle on a position in a JSON document.
// The zero value is the Missing node.
type Node struct {
	kind KindEnum
	val  any
}

// Parse decodes a JSON document into a Node. Numbers are kept in their
// literal form so that textual coercion reproduces the source text.
func Parse(data []byte) (Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return Missing, fmt.Errorf("failed to parse JSON document: %w", err)
	}

	return FromAny(v), nil
}

// FromAny wraps an already-decoded JSON value (the shapes produced by
// encoding/json into an `any`). Values outside those shapes are treated
// as missing.
func FromAny(v any) Node {
	switch v.(type) {
	case nil:
		return Node{kind: KindNull}
	case bool:
		return Node{kind: KindBool, val: v}
	case json.Number, float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return Node{kind: KindNumber, val: v}
	case string:
		return Node{kind: KindString, val: v}
	case []any:
		return Node{kind: KindArray, val: v}
	case map[string]any:
		return Node{kind: KindObject, val: v}
	default:
		return Missing
	}
}

// Kind returns the JSON kind of the node.
func (n Node) Kind() KindEnum {
	return n.kind
}

// IsMissing reports whether the node is the Missing sentinel.
func (n Node) IsMissing() bool {
	return n.kind == KindMissing
}

// Has reports whether the node is an object containing the named member.
func (n Node) Has(name string) bool {
	obj, ok := n.val.(map[string]any)
	if !ok {
		return false
	}

	_, ok = obj[name]

	return ok
}

// Get returns the named member of an object node. Addressing a member of a
// missing node, a non-object node, or an absent member yields Missing.
func (n Node) Get(name string) Node {
	obj, ok := n.val.(map[string]any)
	if !ok {
		return Missing
	}

	child, ok := obj[name]
	if !ok {
		return Missing
	}

	return FromAny(child)
}

// AsBool coerces the node to a boolean. Booleans map directly, the strings
// "true"/"false" (any case) parse, and numbers read as zero/non-zero.
// Anything else, including Missing, yields def.
func (n Node) AsBool(def bool) bool {
	switch n.kind {
	default:
		return def

	case KindBool:
		return n.val.(bool)

	case KindString:
		s := n.val.(string)
		switch {
		default:
			return def
		case strings.EqualFold(s, "true"):
			return true
		case strings.EqualFold(s, "false"):
			return false
		}

	case KindNumber:
		f, err := strconv.ParseFloat(n.numberText(), 64)
		if err != nil {
			return def
		}
		return f != 0
	}
}

// AsText coerces the node to its textual representation. Strings are
// themselves, booleans render "true"/"false", numbers render their literal
// text. Null, containers and Missing yield def.
func (n Node) AsText(def string) string {
	switch n.kind {
	default:
		return def

	case KindString:
		return n.val.(string)

	case KindBool:
		return strconv.FormatBool(n.val.(bool))

	case KindNumber:
		return n.numberText()
	}
}

func (n Node) numberText() string {
	switch v := n.val.(type) {
	default:
		// non-Number numeric kinds only appear via FromAny on caller-built trees
		return fmt.Sprintf("%v", v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}
