package jsonschema

// Schema is a JSON Schema document used for export. Field order fixes the
// serialized key order. Minimum/Maximum are `any` so that full-width 64-bit
// bounds survive marshaling without float rounding.
type Schema struct {
	// Core
	SchemaURI string `json:"$schema,omitempty" yaml:"$schema,omitempty"`
	Type      string `json:"type,omitempty" yaml:"type,omitempty"`
	Format    string `json:"format,omitempty" yaml:"format,omitempty"`
	Default   any    `json:"default,omitempty" yaml:"default,omitempty"`

	// Number
	Minimum          any `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum          any `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	ExclusiveMinimum any `json:"exclusiveMinimum,omitempty" yaml:"exclusiveMinimum,omitempty"`
	ExclusiveMaximum any `json:"exclusiveMaximum,omitempty" yaml:"exclusiveMaximum,omitempty"`

	// String
	MinLength *int   `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty" yaml:"pattern,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required             []string           `json:"required,omitempty" yaml:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`

	// Array
	Items    *Schema `json:"items,omitempty" yaml:"items,omitempty"`
	MinItems *int    `json:"minItems,omitempty" yaml:"minItems,omitempty"`
	MaxItems *int    `json:"maxItems,omitempty" yaml:"maxItems,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty" yaml:"oneOf,omitempty"`
}
