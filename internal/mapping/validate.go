package mapping

import (
	"fmt"
	"strings"

	"metadata-mapper/internal/common"
	"metadata-mapper/internal/diagnostic"
	"metadata-mapper/metadata"
)

// Validate validates a mapping definition. This is a structural check of the
// file itself; it proves nothing about payloads, which by design may lack any
// of the referenced paths at runtime.
func Validate(mf *MappingFile) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if mf == nil {
		res.AddError("mapping_is_nil", "mapping file is nil", "", "")
		return res
	}

	if common.IsEmpty(mf.Fields) {
		res.AddWarning("no_fields", "mapping defines no fields; entities will be empty", "", "")
	}

	seenKeys := map[string]struct{}{}

	for i := range mf.Fields {
		fd := &mf.Fields[i]

		if fd.Key == "" {
			res.AddError("missing_key", fmt.Sprintf("field %d has no key", i), "", fd.Path)
		}

		if _, ok := seenKeys[fd.Key]; ok && fd.Key != "" {
			// legal (last write wins) but usually a copy-paste mistake
			res.AddWarning("duplicate_key", fmt.Sprintf("key %q appears more than once", fd.Key), fd.Key, fd.Path)
		}

		seenKeys[fd.Key] = struct{}{}

		if fd.Path == "" {
			res.AddWarning("empty_path", "empty path resolves to the document root", fd.Key, "")
		} else if err := validatePath(fd.Path); err != nil {
			res.AddError("invalid_path", fmt.Sprintf("invalid path: %v", err), fd.Key, fd.Path)
		}

		if _, err := metadata.ParseType(fd.Type); err != nil {
			res.AddError("invalid_type", fmt.Sprintf("invalid type: %v", err), fd.Key, fd.Path)
		}
	}

	return res
}

// validatePath checks dot-notation path syntax. Segments are literal member
// names; array indexing and wildcards are not part of the language.
func validatePath(path string) error {
	for _, segment := range strings.Split(path, ".") {
		if segment == "" {
			return fmt.Errorf("path %q: empty segment", path)
		}

		if strings.ContainsAny(segment, "[]*") {
			return fmt.Errorf("path %q: array indexing and wildcards are not supported", path)
		}
	}

	return nil
}
