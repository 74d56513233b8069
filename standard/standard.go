// Package standard wraps valgo validators in the vendor-neutral interop
// envelope: a versioned record carrying the vendor name, a validate function
// and the input/output schema documents. Envelopes can be constructed before
// the engine is loaded; they resolve the engine per call and surface
// valgo.ErrNotInitialized on the error channel, never as an issue.
package standard

import (
	"github.com/stdschema/valgo"
	"github.com/stdschema/valgo/jsonschema"
)

// Version is the interop contract version every envelope reports.
const Version = 1

// Vendor identifies this implementation inside envelopes.
const Vendor = "valgo"

// JSONSchemaPair exposes the input and output documents of a schema. The
// validators here do not transform, so input and output are identical.
type JSONSchemaPair struct {
	Input  func(target jsonschema.Target) (*jsonschema.Schema, error)
	Output func(target jsonschema.Target) (*jsonschema.Schema, error)
}

// Schema is the interop envelope for one validator.
type Schema[T any] struct {
	vendor     string
	validate   func(v any) (valgo.Result[T], error)
	jsonSchema JSONSchemaPair
}

// Version reports the interop contract version.
func (s Schema[T]) Version() int { return Version }

// Vendor reports the implementing vendor.
func (s Schema[T]) Vendor() string { return s.vendor }

// Validate runs the validator. The error return carries hard faults only,
// such as an unloaded engine; invalid input comes back inside the result.
func (s Schema[T]) Validate(v any) (valgo.Result[T], error) { return s.validate(v) }

// JSONSchema returns the schema document pair.
func (s Schema[T]) JSONSchema() JSONSchemaPair { return s.jsonSchema }

func resolve(l *valgo.Loader) (*valgo.Engine, error) {
	if l == nil {
		return valgo.Handle()
	}
	return l.Handle()
}

func primitive[T any](l *valgo.Loader, kind valgo.Kind, fn func(*valgo.Engine, any) valgo.Result[T]) Schema[T] {
	gen := func(t jsonschema.Target) (*jsonschema.Schema, error) {
		e, err := resolve(l)
		if err != nil {
			return nil, err
		}
		return e.JSONSchema(kind, t)
	}
	return Schema[T]{
		vendor: Vendor,
		validate: func(v any) (valgo.Result[T], error) {
			e, err := resolve(l)
			if err != nil {
				return valgo.Result[T]{}, err
			}
			return fn(e, v), nil
		},
		jsonSchema: JSONSchemaPair{Input: gen, Output: gen},
	}
}

// String returns the envelope for the string validator. A nil loader selects
// the package default loader; the same holds for every factory below.
func String(l *valgo.Loader) Schema[string] {
	return primitive(l, valgo.KindString, (*valgo.Engine).ValidateString)
}

// Bool returns the envelope for the bool validator.
func Bool(l *valgo.Loader) Schema[bool] {
	return primitive(l, valgo.KindBool, (*valgo.Engine).ValidateBool)
}

// I32 returns the envelope for the i32 validator.
func I32(l *valgo.Loader) Schema[int32] {
	return primitive(l, valgo.KindI32, (*valgo.Engine).ValidateI32)
}

// I64 returns the envelope for the i64 validator.
func I64(l *valgo.Loader) Schema[int64] {
	return primitive(l, valgo.KindI64, (*valgo.Engine).ValidateI64)
}

// U32 returns the envelope for the u32 validator.
func U32(l *valgo.Loader) Schema[uint32] {
	return primitive(l, valgo.KindU32, (*valgo.Engine).ValidateU32)
}

// U64 returns the envelope for the u64 validator.
func U64(l *valgo.Loader) Schema[uint64] {
	return primitive(l, valgo.KindU64, (*valgo.Engine).ValidateU64)
}

// F32 returns the envelope for the f32 validator.
func F32(l *valgo.Loader) Schema[float32] {
	return primitive(l, valgo.KindF32, (*valgo.Engine).ValidateF32)
}

// F64 returns the envelope for the f64 validator.
func F64(l *valgo.Loader) Schema[float64] {
	return primitive(l, valgo.KindF64, (*valgo.Engine).ValidateF64)
}

// Array composes an envelope that validates arrays of item-validated
// elements. Issues from an element are re-rooted under its index; the array
// document wraps the item's input document under "items".
func Array[T any](l *valgo.Loader, item Schema[T]) Schema[[]any] {
	gen := func(t jsonschema.Target) (*jsonschema.Schema, error) {
		e, err := resolve(l)
		if err != nil {
			return nil, err
		}
		is, err := item.jsonSchema.Input(t)
		if err != nil {
			return nil, err
		}
		return e.ArrayJSONSchema(is, t)
	}
	return Schema[[]any]{
		vendor: Vendor,
		validate: func(v any) (valgo.Result[[]any], error) {
			e, err := resolve(l)
			if err != nil {
				return valgo.Result[[]any]{}, err
			}
			var hard error
			r := e.ValidateArray(v, func(el any) valgo.Result[any] {
				ir, err := item.validate(el)
				if err != nil {
					hard = err
					return valgo.Fail[any]()
				}
				if val, ok := ir.Value(); ok {
					return valgo.OK[any](val)
				}
				return valgo.Fail[any](ir.Issues()...)
			})
			if hard != nil {
				return valgo.Result[[]any]{}, hard
			}
			return r, nil
		},
		jsonSchema: JSONSchemaPair{Input: gen, Output: gen},
	}
}
