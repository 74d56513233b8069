package jsonschema

import (
	"errors"
	"fmt"
	"math"

	eng "github.com/stdschema/valgo/internal/engine"
)

// ErrUnsupportedKind is returned when no generator exists for a kind.
var ErrUnsupportedKind = errors.New("jsonschema: unsupported kind")

// generator produces the dialect-specific document body for one kind.
// The $schema URI is stamped by For, not by individual entries.
type generator func(Target) *Schema

// generators is the dispatch table keyed by primitive kind. Target branching
// happens inside each entry so the kind x target matrix stays mechanical to
// extend and to test.
var generators = map[eng.Kind]generator{
	eng.KindString: func(Target) *Schema { return &Schema{Type: "string"} },
	eng.KindBool:   func(Target) *Schema { return &Schema{Type: "boolean"} },
	eng.KindI32: func(t Target) *Schema {
		if t == TargetOpenAPI30 {
			return &Schema{Type: "integer", Format: "int32"}
		}
		return &Schema{Type: "integer", Minimum: int64(math.MinInt32), Maximum: int64(math.MaxInt32)}
	},
	eng.KindI64: func(t Target) *Schema {
		if t == TargetOpenAPI30 {
			return &Schema{Type: "integer", Format: "int64"}
		}
		return &Schema{Type: "integer", Minimum: int64(math.MinInt64), Maximum: int64(math.MaxInt64)}
	},
	eng.KindU32: func(t Target) *Schema {
		if t == TargetOpenAPI30 {
			return &Schema{Type: "integer", Format: "int64", Minimum: int64(0)}
		}
		return &Schema{Type: "integer", Minimum: int64(0), Maximum: uint64(math.MaxUint32)}
	},
	eng.KindU64: func(t Target) *Schema {
		if t == TargetOpenAPI30 {
			return &Schema{Type: "integer", Format: "int64", Minimum: int64(0)}
		}
		return &Schema{Type: "integer", Minimum: int64(0), Maximum: uint64(math.MaxUint64)}
	},
	eng.KindF32: func(t Target) *Schema {
		if t == TargetOpenAPI30 {
			return &Schema{Type: "number", Format: "float"}
		}
		return &Schema{Type: "number"}
	},
	eng.KindF64: func(t Target) *Schema {
		if t == TargetOpenAPI30 {
			return &Schema{Type: "number", Format: "double"}
		}
		return &Schema{Type: "number"}
	},
}

// For generates the document describing one primitive kind under the given
// target. Unknown kinds and targets fail; there is no default dialect.
func For(kind eng.Kind, target Target) (*Schema, error) {
	if !target.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedTarget, int(target))
	}
	g, ok := generators[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedKind, int(kind))
	}
	s := g(target)
	s.SchemaURI = target.SchemaURI()
	return s, nil
}

// Array wraps an item document under "items". The item keeps whatever shape
// the caller built, except that a nested $schema is dropped: only the
// top-level document of a dialect carries the URI.
func Array(item *Schema, target Target) (*Schema, error) {
	if !target.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedTarget, int(target))
	}
	if item != nil && item.SchemaURI != "" {
		inner := *item
		inner.SchemaURI = ""
		item = &inner
	}
	return &Schema{SchemaURI: target.SchemaURI(), Type: "array", Items: item}, nil
}
