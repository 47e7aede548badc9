package mapping

import (
	"fmt"

	"metadata-mapper/entity"
	"metadata-mapper/metadata"
)

// MappingFile represents the root of a YAML mapping definition file.
// This is the authoritative, human-reviewed mapping configuration.
type MappingFile struct {
	// Version of the mapping schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Entity describes the envelope of the produced entity object.
	Entity EntityDef `yaml:"entity,omitempty"`

	// Fields lists the field descriptors applied, in order, to each payload.
	Fields []FieldDef `yaml:"fields"`
}

// EntityDef describes the type/version envelope attributes of the entity
// produced from one payload.
type EntityDef struct {
	Type    string `yaml:"type,omitempty"`
	Version string `yaml:"version,omitempty"`
}

// FieldDef is the file form of one field descriptor.
type FieldDef struct {
	// Key the extracted value is stored under.
	Key string `yaml:"key"`

	// Path locates the source node using dot notation (e.g. "content.header").
	Path string `yaml:"path"`

	// Type is the coercion kind: "text" (default) or "boolean".
	Type string `yaml:"type,omitempty"`

	// Blank keeps empty extracted values instead of suppressing them.
	Blank bool `yaml:"blank,omitempty"`
}

// NewEntity creates an empty entity object carrying the mapping's envelope
// attributes, ready to accumulate one payload's content.
func (mf *MappingFile) NewEntity() *entity.EntityObject {
	return entity.NewEntityObject(mf.Entity.Type, mf.Entity.Version)
}

// Compile turns the file form into immutable field descriptors. An unknown
// type string fails compilation; run Validate first for a full structural
// report instead of a first-error stop.
func Compile(mf *MappingFile) ([]metadata.FieldDescriptor, error) {
	fields := make([]metadata.FieldDescriptor, 0, len(mf.Fields))

	for _, fd := range mf.Fields {
		typ, err := metadata.ParseType(fd.Type)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", fd.Key, err)
		}

		fields = append(fields, metadata.FieldDescriptor{
			Key:   fd.Key,
			Path:  fd.Path,
			Type:  typ,
			Blank: fd.Blank,
		})
	}

	return fields, nil
}
