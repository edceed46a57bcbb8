package forms

import (
	"encoding/json"
	"fmt"

	"github.com/qri-io/jsonschema"
)

// Kind is the JSON type a field must have.
type Kind string

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindInteger Kind = "integer"
)

// Field describes one body field.
type Field struct {
	Name      string
	Kind      Kind
	Required  bool
	Format    string
	MaxLength int
	Min       *float64
	Max       *float64
}

// Schema is an ordered field list compiled into a JSON Schema document.
type Schema struct {
	name     string
	fields   []Field
	byName   map[string]Field
	compiled *jsonschema.Schema
}

// NewSchema compiles fields into a validator.
func NewSchema(name string, fields ...Field) (*Schema, error) {
	s := &Schema{
		name:   name,
		fields: fields,
		byName: make(map[string]Field, len(fields)),
	}
	for _, f := range fields {
		if _, dup := s.byName[f.Name]; dup {
			return nil, fmt.Errorf("schema %s: duplicate field %q", name, f.Name)
		}
		switch f.Kind {
		case KindString, KindNumber, KindInteger:
		default:
			return nil, fmt.Errorf("schema %s: field %q has unknown kind %q", name, f.Name, f.Kind)
		}
		s.byName[f.Name] = f
	}

	doc, err := json.Marshal(s.document())
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", name, err)
	}

	rs := &jsonschema.Schema{}
	if err := json.Unmarshal(doc, rs); err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}
	s.compiled = rs

	return s, nil
}

// MustSchema is NewSchema for package-level schemas; it panics on error.
func MustSchema(name string, fields ...Field) *Schema {
	s, err := NewSchema(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the schema name used in logs.
func (s *Schema) Name() string {
	return s.name
}

func (s *Schema) document() map[string]any {
	props := make(map[string]any, len(s.fields))
	required := []string{}

	for _, f := range s.fields {
		p := map[string]any{}

		// Optional fields may be sent as null and are stored as NULL
		if f.Required {
			p["type"] = string(f.Kind)
			required = append(required, f.Name)
		} else {
			p["type"] = []string{string(f.Kind), "null"}
		}

		if f.Kind == KindString {
			if f.Required {
				p["minLength"] = 1
				p["pattern"] = `\S`
			}
			if f.MaxLength > 0 {
				p["maxLength"] = f.MaxLength
			}
			if f.Format != "" {
				p["format"] = f.Format
			}
		}
		if f.Min != nil {
			p["minimum"] = *f.Min
		}
		if f.Max != nil {
			p["maximum"] = *f.Max
		}

		props[f.Name] = p
	}

	return map[string]any{
		"title":      s.name,
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}

func bound(v float64) *float64 {
	return &v
}
