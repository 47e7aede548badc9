// Package metadata implements declarative field extraction: a FieldDescriptor
// names a key, a dot-notation path into a JSON payload, a coercion type, and
// a keep-if-blank flag, and Process extracts at most one value per descriptor
// into an entity object.
//
// Descriptors are immutable configuration, built once (typically from a
// mapping file, see internal/mapping) and applied to many payloads. The JSON
// tree and the entity sink are per-payload.
package metadata

import (
	"fmt"
	"strings"

	"metadata-mapper/entity"
	"metadata-mapper/jsonnode"
)

// FieldDescriptor describes one field to extract from a payload.
//
// Example mapping entry:
//
//	- key: title
//	  path: content.header
type FieldDescriptor struct {
	// Key the extracted value is stored under. Repeats across descriptors are
	// allowed; the last write for a key wins in the sink.
	Key string

	// Path locates the source node using dot notation, e.g. "content.header".
	// Segments are literal member names only.
	Path string

	// Type selects the coercion applied to the resolved node.
	Type TypeEnum

	// Blank keeps an extracted value whose textual rendering is empty.
	// When false such values are suppressed.
	Blank bool
}

// Process resolves the descriptor's path against root, coerces the resolved
// node, and writes the result into sink under the descriptor's key.
//
// Missing path segments and type-mismatched nodes are not errors: coercion
// degrades to the type's default (false for TypeBoolean, "" for TypeText).
// The only error condition is an unrecognized coercion type, which raises a
// ConfigurationError before any write.
//
// At most one sink write happens per call: the coerced value is written iff
// its textual rendering is non-empty or Blank is set. A false boolean renders
// "false" and is therefore always written.
func (f FieldDescriptor) Process(root jsonnode.Node, sink *entity.EntityObject) error {
	node := resolveNode(root, f.Path)

	var value any

	switch f.Type {
	default:
		return &ConfigurationError{
			Component: Component,
			Reason:    fmt.Errorf("%w: %s", ErrInvalidMetadataType, f.Type),
		}

	case TypeBoolean:
		value = node.AsBool(false)

	case TypeText:
		value = node.AsText("")
	}

	if fmt.Sprintf("%v", value) != "" || f.Blank {
		sink.AddContent(f.Key, value)
	}

	return nil
}

// ProcessAll applies descriptors in order against the same payload and sink.
// The first configuration error halts the pass; writes made by earlier
// descriptors remain in the sink.
func ProcessAll(fields []FieldDescriptor, root jsonnode.Node, sink *entity.EntityObject) error {
	for _, f := range fields {
		if err := f.Process(root, sink); err != nil {
			return err
		}
	}

	return nil
}

// resolveNode walks the dot-notation path from root. The empty path resolves
// to root itself. A segment that does not exist yields the missing node, and
// every later segment stays missing.
func resolveNode(root jsonnode.Node, path string) jsonnode.Node {
	if path == "" {
		return root
	}

	node := root
	for _, segment := range strings.Split(path, ".") {
		node = node.Get(segment)
	}

	return node
}
