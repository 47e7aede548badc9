// Package diagnostic provides structured errors and warnings produced while
// validating mapping definitions.
//
// Key capabilities:
//   - Broken descriptor errors (empty key, empty path, unknown type)
//   - Suspicious-but-legal warnings (duplicate keys, empty mappings)
//   - Stable codes for tooling, human-readable messages for people
package diagnostic
