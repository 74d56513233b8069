package valgo

import (
	"errors"
	"math"

	"github.com/stdschema/valgo/i18n"
	eng "github.com/stdschema/valgo/internal/engine"
	js "github.com/stdschema/valgo/jsonschema"
)

// Kind enumerates the primitive kinds the engine validates and describes.
// The alias and constants mirror the internal engine kinds so subpackages
// and callers share one enumeration.
type Kind = eng.Kind

const (
	KindString Kind = eng.KindString
	KindBool   Kind = eng.KindBool
	KindI32    Kind = eng.KindI32
	KindI64    Kind = eng.KindI64
	KindU32    Kind = eng.KindU32
	KindU64    Kind = eng.KindU64
	KindF32    Kind = eng.KindF32
	KindF64    Kind = eng.KindF64
)

// ParseKind resolves the textual name of a kind ("i32", "string", ...).
func ParseKind(s string) (Kind, bool) { return eng.ParseKind(s) }

// Kinds returns all kinds in declaration order.
func Kinds() []Kind { return eng.Kinds() }

// Target re-exports the JSON Schema dialect selector for call-site
// convenience.
type Target = js.Target

const (
	TargetDraft202012 Target = js.TargetDraft202012
	TargetDraft07     Target = js.TargetDraft07
	TargetOpenAPI30   Target = js.TargetOpenAPI30
)

// ErrUnsupportedKind is returned by the kind-dispatching entry points for a
// kind outside the supported set.
var ErrUnsupportedKind = errors.New("valgo: unsupported kind")

// Options configures the engine at load time.
type Options struct {
	// AllowNaN permits NaN and ±Inf for the float kinds. The default policy
	// rejects non-finite values.
	AllowNaN bool
}

// Engine is the loaded validation engine. It is created only by a Loader,
// read-only after construction, and safe for concurrent use: every validator
// and generator is a pure function of its inputs plus the engine options.
type Engine struct {
	opt Options
}

// Options returns the options the engine was loaded with.
func (e *Engine) Options() Options { return e.opt }

// ValidateString checks that v is a string.
func (e *Engine) ValidateString(v any) Result[string] {
	s, ok := v.(string)
	if !ok {
		return Fail[string](issueExpected("string"))
	}
	return OK(s)
}

// ValidateBool checks that v is a bool.
func (e *Engine) ValidateBool(v any) Result[bool] {
	b, ok := v.(bool)
	if !ok {
		return Fail[bool](issueExpected("bool"))
	}
	return OK(b)
}

// ValidateI32 checks that v is an integer in [-2^31, 2^31-1].
func (e *Engine) ValidateI32(v any) Result[int32] {
	i, st := eng.Int(v, 32)
	if st != eng.NumOK {
		return Fail[int32](intIssue(KindI32, st, int64(math.MinInt32), int64(math.MaxInt32)))
	}
	return OK(int32(i))
}

// ValidateI64 checks that v is an integer in [-2^63, 2^63-1].
func (e *Engine) ValidateI64(v any) Result[int64] {
	i, st := eng.Int(v, 64)
	if st != eng.NumOK {
		return Fail[int64](intIssue(KindI64, st, int64(math.MinInt64), int64(math.MaxInt64)))
	}
	return OK(i)
}

// ValidateU32 checks that v is an integer in [0, 2^32-1].
func (e *Engine) ValidateU32(v any) Result[uint32] {
	u, st := eng.Uint(v, 32)
	if st != eng.NumOK {
		return Fail[uint32](intIssue(KindU32, st, uint64(0), uint64(math.MaxUint32)))
	}
	return OK(uint32(u))
}

// ValidateU64 checks that v is an integer in [0, 2^64-1].
func (e *Engine) ValidateU64(v any) Result[uint64] {
	u, st := eng.Uint(v, 64)
	if st != eng.NumOK {
		return Fail[uint64](intIssue(KindU64, st, uint64(0), uint64(math.MaxUint64)))
	}
	return OK(u)
}

// ValidateF32 checks that v is a finite number within the float32 range.
// Non-finite input is accepted only under Options.AllowNaN.
func (e *Engine) ValidateF32(v any) Result[float32] {
	f, st := eng.Float(v, 32)
	switch st {
	case eng.NumOK:
		return OK(float32(f))
	case eng.NumNotFinite:
		if e.opt.AllowNaN {
			return OK(float32(f))
		}
		return Fail[float32](issueNotFinite(KindF32))
	case eng.NumOverflow:
		return Fail[float32](issueOverflow(KindF32, -math.MaxFloat32, math.MaxFloat32))
	default:
		return Fail[float32](issueExpected(KindF32.String()))
	}
}

// ValidateF64 checks that v is a finite number. Non-finite input is accepted
// only under Options.AllowNaN.
func (e *Engine) ValidateF64(v any) Result[float64] {
	f, st := eng.Float(v, 64)
	switch st {
	case eng.NumOK:
		return OK(f)
	case eng.NumNotFinite:
		if e.opt.AllowNaN {
			return OK(f)
		}
		return Fail[float64](issueNotFinite(KindF64))
	default:
		return Fail[float64](issueExpected(KindF64.String()))
	}
}

// Validate dispatches to the typed validator for kind, widening the result.
// This is the entry point used by the envelope layer and the CLI, where the
// kind arrives as data.
func (e *Engine) Validate(kind Kind, v any) (Result[any], error) {
	switch kind {
	case KindString:
		return anyResult(e.ValidateString(v)), nil
	case KindBool:
		return anyResult(e.ValidateBool(v)), nil
	case KindI32:
		return anyResult(e.ValidateI32(v)), nil
	case KindI64:
		return anyResult(e.ValidateI64(v)), nil
	case KindU32:
		return anyResult(e.ValidateU32(v)), nil
	case KindU64:
		return anyResult(e.ValidateU64(v)), nil
	case KindF32:
		return anyResult(e.ValidateF32(v)), nil
	case KindF64:
		return anyResult(e.ValidateF64(v)), nil
	default:
		return Result[any]{}, ErrUnsupportedKind
	}
}

// ItemValidatorFor returns the kind's validator in ItemValidator form, for
// composing with ValidateArray.
func (e *Engine) ItemValidatorFor(kind Kind) (ItemValidator, error) {
	if _, err := e.Validate(kind, nil); err != nil && errors.Is(err, ErrUnsupportedKind) {
		return nil, err
	}
	return func(v any) Result[any] {
		r, _ := e.Validate(kind, v)
		return r
	}, nil
}

// JSONSchema generates the document describing one primitive kind under the
// given target.
func (e *Engine) JSONSchema(kind Kind, target Target) (*js.Schema, error) {
	return js.For(kind, target)
}

// ArrayJSONSchema wraps an item document under an array document for the
// given target.
func (e *Engine) ArrayJSONSchema(item *js.Schema, target Target) (*js.Schema, error) {
	return js.Array(item, target)
}

func issueExpected(expected string) Issue {
	return Issue{
		Code:    CodeInvalidType,
		Message: i18n.T(CodeInvalidType, map[string]string{"expected": expected}),
		Params:  map[string]any{"expected": expected},
	}
}

func issueOverflow(kind Kind, min, max any) Issue {
	return Issue{
		Code:    CodeOverflow,
		Message: i18n.T(CodeOverflow, map[string]string{"kind": kind.String()}),
		Params:  map[string]any{"kind": kind.String(), "min": min, "max": max},
	}
}

func issueNotFinite(kind Kind) Issue {
	return Issue{
		Code:    CodeNotFinite,
		Message: i18n.T(CodeNotFinite, nil),
		Params:  map[string]any{"kind": kind.String()},
	}
}

func intIssue(kind Kind, st eng.NumStatus, min, max any) Issue {
	switch st {
	case eng.NumOverflow:
		return issueOverflow(kind, min, max)
	case eng.NumFraction:
		return Issue{
			Code:    CodeInvalidType,
			Message: "fractional part not allowed for " + kind.String(),
			Params:  map[string]any{"kind": kind.String()},
		}
	default:
		// Wrong type and non-finite both mean "this is not a <kind>".
		return issueExpected(kind.String())
	}
}
