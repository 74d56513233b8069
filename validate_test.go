package valgo_test

import (
	"context"
	"math"
	"testing"

	json "github.com/goccy/go-json"

	valgo "github.com/stdschema/valgo"
)

func newEngine(t *testing.T, opt valgo.Options) *valgo.Engine {
	t.Helper()
	l := valgo.NewLoader()
	if err := l.Init(context.Background(), opt); err != nil {
		t.Fatalf("init: %v", err)
	}
	e, err := l.Handle()
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	return e
}

func TestValidateString(t *testing.T) {
	e := newEngine(t, valgo.Options{})
	if _, ok := e.ValidateString("hello").Value(); !ok {
		t.Fatalf("expected success for string input")
	}
	r := e.ValidateString(42)
	if r.IsSuccess() {
		t.Fatalf("expected failure for non-string input")
	}
	if got := r.Issues()[0].Code; got != valgo.CodeInvalidType {
		t.Fatalf("expected invalid_type, got %q", got)
	}
}

func TestValidateBool(t *testing.T) {
	e := newEngine(t, valgo.Options{})
	if v, ok := e.ValidateBool(true).Value(); !ok || !v {
		t.Fatalf("expected true to pass through")
	}
	if e.ValidateBool("true").IsSuccess() {
		t.Fatalf("expected failure for string input")
	}
	if e.ValidateBool(1).IsSuccess() {
		t.Fatalf("expected failure for numeric input; no truthiness coercion")
	}
}

func TestValidateU32(t *testing.T) {
	e := newEngine(t, valgo.Options{})
	cases := []struct {
		name string
		in   any
		ok   bool
		code string
	}{
		{"in range", 42, true, ""},
		{"zero", 0, true, ""},
		{"max", uint64(math.MaxUint32), true, ""},
		{"negative", -1, false, valgo.CodeOverflow},
		{"above max", int64(math.MaxUint32) + 1, false, valgo.CodeOverflow},
		{"float whole", float64(42), true, ""},
		{"float fraction", 1.5, false, valgo.CodeInvalidType},
		{"string", "42", false, valgo.CodeInvalidType},
		{"json number", json.Number("4294967295"), true, ""},
		{"json number overflow", json.Number("4294967296"), false, valgo.CodeOverflow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := e.ValidateU32(tc.in)
			if tc.ok != r.IsSuccess() {
				t.Fatalf("success=%v, want %v (issues: %v)", r.IsSuccess(), tc.ok, r.Issues())
			}
			if !tc.ok {
				if got := r.Issues()[0].Code; got != tc.code {
					t.Fatalf("code=%q, want %q", got, tc.code)
				}
			}
		})
	}
}

func TestValidateI32_Bounds(t *testing.T) {
	e := newEngine(t, valgo.Options{})
	if _, ok := e.ValidateI32(int64(math.MinInt32)).Value(); !ok {
		t.Fatalf("expected MinInt32 to pass")
	}
	if _, ok := e.ValidateI32(int64(math.MaxInt32)).Value(); !ok {
		t.Fatalf("expected MaxInt32 to pass")
	}
	if e.ValidateI32(int64(math.MaxInt32) + 1).IsSuccess() {
		t.Fatalf("expected overflow above MaxInt32")
	}
	if e.ValidateI32(int64(math.MinInt32) - 1).IsSuccess() {
		t.Fatalf("expected overflow below MinInt32")
	}
}

func TestValidateI64_FullWidth(t *testing.T) {
	e := newEngine(t, valgo.Options{})
	// json.Number keeps 64-bit integers exact; float64 would round them.
	if v, ok := e.ValidateI64(json.Number("9223372036854775807")).Value(); !ok || v != math.MaxInt64 {
		t.Fatalf("expected MaxInt64 exact, got %v ok=%v", v, ok)
	}
	if e.ValidateI64(json.Number("9223372036854775808")).IsSuccess() {
		t.Fatalf("expected overflow above MaxInt64")
	}
}

func TestValidateU64_FullWidth(t *testing.T) {
	e := newEngine(t, valgo.Options{})
	if v, ok := e.ValidateU64(json.Number("18446744073709551615")).Value(); !ok || v != math.MaxUint64 {
		t.Fatalf("expected MaxUint64 exact, got %v ok=%v", v, ok)
	}
	if e.ValidateU64(json.Number("18446744073709551616")).IsSuccess() {
		t.Fatalf("expected overflow above MaxUint64")
	}
	if e.ValidateU64(-1).IsSuccess() {
		t.Fatalf("expected overflow for negative input")
	}
}

func TestValidateF64_NonFinite(t *testing.T) {
	e := newEngine(t, valgo.Options{})
	if _, ok := e.ValidateF64(3.14).Value(); !ok {
		t.Fatalf("expected finite float to pass")
	}
	for _, in := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		r := e.ValidateF64(in)
		if r.IsSuccess() {
			t.Fatalf("expected %v to fail by default", in)
		}
		if got := r.Issues()[0].Code; got != valgo.CodeNotFinite {
			t.Fatalf("code=%q, want not_finite", got)
		}
	}
}

func TestValidateF64_AllowNaN(t *testing.T) {
	e := newEngine(t, valgo.Options{AllowNaN: true})
	if v, ok := e.ValidateF64(math.NaN()).Value(); !ok || !math.IsNaN(v) {
		t.Fatalf("expected NaN to pass under AllowNaN")
	}
	if v, ok := e.ValidateF64(math.Inf(1)).Value(); !ok || !math.IsInf(v, 1) {
		t.Fatalf("expected +Inf to pass under AllowNaN")
	}
	// AllowNaN loosens finiteness only, not typing.
	if e.ValidateF64("NaN").IsSuccess() {
		t.Fatalf("expected string input to keep failing")
	}
}

func TestValidateF32_Range(t *testing.T) {
	e := newEngine(t, valgo.Options{})
	if _, ok := e.ValidateF32(1.5).Value(); !ok {
		t.Fatalf("expected small float to pass")
	}
	r := e.ValidateF32(1e39)
	if r.IsSuccess() {
		t.Fatalf("expected overflow beyond float32 range")
	}
	if got := r.Issues()[0].Code; got != valgo.CodeOverflow {
		t.Fatalf("code=%q, want overflow", got)
	}
	if e.ValidateF32(math.NaN()).IsSuccess() {
		t.Fatalf("expected NaN to fail by default")
	}
}

func TestValidate_Dispatch(t *testing.T) {
	e := newEngine(t, valgo.Options{})
	for _, k := range valgo.Kinds() {
		if _, err := e.Validate(k, nil); err != nil {
			t.Fatalf("kind %v: unexpected hard error %v", k, err)
		}
	}
	if _, err := e.Validate(valgo.Kind(99), 1); err == nil {
		t.Fatalf("expected ErrUnsupportedKind for unknown kind")
	}
}

func TestJSONSchema_RootTargets(t *testing.T) {
	e := newEngine(t, valgo.Options{})
	targets := []valgo.Target{valgo.TargetDraft202012, valgo.TargetDraft07, valgo.TargetOpenAPI30}
	for _, k := range valgo.Kinds() {
		for _, target := range targets {
			s, err := e.JSONSchema(k, target)
			if err != nil {
				t.Fatalf("JSONSchema(%v, %v): %v", k, target, err)
			}
			if s.Type == "" {
				t.Fatalf("JSONSchema(%v, %v): empty type", k, target)
			}
		}
	}
	item, err := e.JSONSchema(valgo.KindString, valgo.TargetDraft202012)
	if err != nil {
		t.Fatalf("JSONSchema: %v", err)
	}
	arr, err := e.ArrayJSONSchema(item, valgo.TargetDraft202012)
	if err != nil {
		t.Fatalf("ArrayJSONSchema: %v", err)
	}
	if arr.Type != "array" || arr.Items == nil || arr.Items.Type != "string" {
		t.Fatalf("array document=%+v", arr)
	}
}

func TestIssueMessage_NamesExpectedKind(t *testing.T) {
	e := newEngine(t, valgo.Options{})
	r := e.ValidateI32("x")
	if got := r.Issues()[0].Message; got != "expected i32" {
		t.Fatalf("message=%q, want %q", got, "expected i32")
	}
}
