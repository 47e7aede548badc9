// Package mapping provides YAML schema definitions, parsing, validation,
// and compilation for declarative webhook field mappings.
//
// A mapping file is the human-reviewed configuration that turns an
// integration's webhook payloads into a normalized entity without
// per-integration parsing code.
//
// # Schema Overview
//
// The mapping file has the following structure:
//
//	version: "1"
//	entity:
//	  type: com.example.issue
//	  version: "1.0"
//	fields:
//	  - key: title
//	    path: content.header
//	  - key: active
//	    path: flag
//	    type: boolean
//	  - key: subtitle
//	    path: content.sub
//	    blank: true
//
// Each field names the output key, the dot-notation path into the payload,
// an optional coercion type (text is the default), and an optional blank
// flag that keeps empty extracted values.
//
// # Path Syntax
//
// Paths are dot-separated literal member names, e.g. "content.header".
// Array indexing and wildcards are not supported and are rejected by
// Validate.
//
// # Lifecycle
//
// LoadFile → Validate → Compile produces immutable field descriptors that
// are applied to many payloads. Watch adds a reload loop for long-running
// processes that want mapping edits picked up without a restart.
package mapping
