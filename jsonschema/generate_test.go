package jsonschema_test

import (
	"math"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	eng "github.com/stdschema/valgo/internal/engine"
	js "github.com/stdschema/valgo/jsonschema"
)

func TestFor_String(t *testing.T) {
	s, err := js.For(eng.KindString, js.TargetDraft202012)
	if err != nil {
		t.Fatalf("For: %v", err)
	}
	if s.Type != "string" {
		t.Fatalf("type=%q", s.Type)
	}
	if s.SchemaURI != "https://json-schema.org/draft/2020-12/schema" {
		t.Fatalf("$schema=%q", s.SchemaURI)
	}
}

func TestFor_Draft07URI(t *testing.T) {
	s, err := js.For(eng.KindBool, js.TargetDraft07)
	if err != nil {
		t.Fatalf("For: %v", err)
	}
	if s.SchemaURI != "http://json-schema.org/draft-07/schema#" {
		t.Fatalf("$schema=%q", s.SchemaURI)
	}
	if s.Type != "boolean" {
		t.Fatalf("type=%q", s.Type)
	}
}

func TestFor_OpenAPIOmitsSchemaURI(t *testing.T) {
	for _, k := range eng.Kinds() {
		s, err := js.For(k, js.TargetOpenAPI30)
		if err != nil {
			t.Fatalf("For(%v): %v", k, err)
		}
		if s.SchemaURI != "" {
			t.Fatalf("kind %v: openapi document must not carry $schema, got %q", k, s.SchemaURI)
		}
	}
}

func TestFor_IntegerBounds(t *testing.T) {
	cases := []struct {
		kind     eng.Kind
		min, max any
	}{
		{eng.KindI32, int64(math.MinInt32), int64(math.MaxInt32)},
		{eng.KindI64, int64(math.MinInt64), int64(math.MaxInt64)},
		{eng.KindU32, int64(0), uint64(math.MaxUint32)},
		{eng.KindU64, int64(0), uint64(math.MaxUint64)},
	}
	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			s, err := js.For(tc.kind, js.TargetDraft202012)
			if err != nil {
				t.Fatalf("For: %v", err)
			}
			if s.Type != "integer" {
				t.Fatalf("type=%q", s.Type)
			}
			if s.Minimum != tc.min || s.Maximum != tc.max {
				t.Fatalf("bounds=[%v, %v], want [%v, %v]", s.Minimum, s.Maximum, tc.min, tc.max)
			}
			if s.Format != "" {
				t.Fatalf("draft documents carry bounds, not formats; got %q", s.Format)
			}
		})
	}
}

func TestFor_OpenAPIFormats(t *testing.T) {
	cases := []struct {
		kind   eng.Kind
		typ    string
		format string
	}{
		{eng.KindI32, "integer", "int32"},
		{eng.KindI64, "integer", "int64"},
		{eng.KindU32, "integer", "int64"},
		{eng.KindU64, "integer", "int64"},
		{eng.KindF32, "number", "float"},
		{eng.KindF64, "number", "double"},
	}
	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			s, err := js.For(tc.kind, js.TargetOpenAPI30)
			if err != nil {
				t.Fatalf("For: %v", err)
			}
			if s.Type != tc.typ || s.Format != tc.format {
				t.Fatalf("got type=%q format=%q, want %q/%q", s.Type, s.Format, tc.typ, tc.format)
			}
		})
	}
}

func TestFor_UnsignedMinimumZero(t *testing.T) {
	for _, k := range []eng.Kind{eng.KindU32, eng.KindU64} {
		s, err := js.For(k, js.TargetOpenAPI30)
		if err != nil {
			t.Fatalf("For(%v): %v", k, err)
		}
		if s.Minimum != int64(0) {
			t.Fatalf("kind %v: minimum=%v, want 0", k, s.Minimum)
		}
	}
}

func TestFor_U64MaximumExactOnWire(t *testing.T) {
	s, err := js.For(eng.KindU64, js.TargetDraft202012)
	if err != nil {
		t.Fatalf("For: %v", err)
	}
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	// The full 64-bit maximum must not round through float64.
	want := `"maximum":18446744073709551615`
	if !strings.Contains(string(b), want) {
		t.Fatalf("wire=%s, want substring %s", b, want)
	}
}

func TestFor_UnknownTargetAndKind(t *testing.T) {
	if _, err := js.For(eng.KindString, js.Target(99)); err == nil {
		t.Fatalf("expected ErrUnsupportedTarget")
	}
	if _, err := js.For(eng.Kind(99), js.TargetDraft07); err == nil {
		t.Fatalf("expected ErrUnsupportedKind")
	}
}

func TestArray_WrapsItemAndStripsNestedURI(t *testing.T) {
	item, err := js.For(eng.KindI32, js.TargetDraft202012)
	if err != nil {
		t.Fatalf("For: %v", err)
	}
	arr, err := js.Array(item, js.TargetDraft202012)
	if err != nil {
		t.Fatalf("Array: %v", err)
	}
	if arr.Type != "array" {
		t.Fatalf("type=%q", arr.Type)
	}
	if arr.SchemaURI == "" {
		t.Fatalf("array document must carry $schema at the top level")
	}
	if arr.Items == nil || arr.Items.Type != "integer" {
		t.Fatalf("items=%v", arr.Items)
	}
	if arr.Items.SchemaURI != "" {
		t.Fatalf("nested $schema must be stripped, got %q", arr.Items.SchemaURI)
	}
	// The input item is untouched.
	if item.SchemaURI == "" {
		t.Fatalf("caller's item document was mutated")
	}
}

func TestParseTarget(t *testing.T) {
	for in, want := range map[string]js.Target{
		"draft-2020-12": js.TargetDraft202012,
		"2020-12":       js.TargetDraft202012,
		"draft-07":      js.TargetDraft07,
		"DRAFT-07":      js.TargetDraft07,
		"openapi-3.0":   js.TargetOpenAPI30,
		"openapi":       js.TargetOpenAPI30,
	} {
		got, err := js.ParseTarget(in)
		if err != nil || got != want {
			t.Fatalf("ParseTarget(%q)=%v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := js.ParseTarget("draft-04"); err == nil {
		t.Fatalf("expected error for unsupported dialect")
	}
}
