package registry

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"unicode/utf8"

	"github.com/stdschema/valgo"
	"github.com/stdschema/valgo/i18n"
	eng "github.com/stdschema/valgo/internal/engine"
	"github.com/stdschema/valgo/jsonschema"
)

// checkFunc reports issues for v, empty for a match. Paths inside the
// returned issues are relative to v.
type checkFunc func(v any) valgo.Issues

func compile(doc *jsonschema.Schema) (checkFunc, error) {
	if doc.Type == "" {
		if len(doc.OneOf) > 0 {
			return compileOneOf(doc.OneOf)
		}
		return nil, fmt.Errorf("schema has neither type nor oneOf")
	}
	switch doc.Type {
	case "string":
		return compileString(doc)
	case "boolean":
		return compileBool(), nil
	case "integer":
		return compileNumber(doc, true)
	case "number":
		return compileNumber(doc, false)
	case "object":
		return compileObject(doc)
	case "array":
		return compileArray(doc)
	default:
		return nil, fmt.Errorf("unsupported type %q", doc.Type)
	}
}

func issue(code string, data map[string]string) valgo.Issue {
	return valgo.Issue{Code: code, Message: i18n.T(code, data)}
}

func expected(what string) valgo.Issues {
	return valgo.Issues{issue(valgo.CodeInvalidType, map[string]string{"expected": what})}
}

func compileString(doc *jsonschema.Schema) (checkFunc, error) {
	var re *regexp.Regexp
	if doc.Pattern != "" {
		var err error
		re, err = regexp.Compile(doc.Pattern)
		if err != nil {
			return nil, fmt.Errorf("pattern: %w", err)
		}
	}
	minLen, maxLen := doc.MinLength, doc.MaxLength
	return func(v any) valgo.Issues {
		s, ok := v.(string)
		if !ok {
			return expected("string")
		}
		var iss valgo.Issues
		n := utf8.RuneCountInString(s)
		if minLen != nil && n < *minLen {
			iss = append(iss, issue(valgo.CodeTooShort, nil))
		}
		if maxLen != nil && n > *maxLen {
			iss = append(iss, issue(valgo.CodeTooLong, nil))
		}
		if re != nil && !re.MatchString(s) {
			iss = append(iss, issue(valgo.CodePattern, nil))
		}
		return iss
	}, nil
}

func compileBool() checkFunc {
	return func(v any) valgo.Issues {
		if _, ok := v.(bool); !ok {
			return expected("bool")
		}
		return nil
	}
}

// bound resolves a numeric bound from the document, where JSON decoding may
// have produced any numeric Go type.
func bound(v any) (float64, bool, error) {
	if v == nil {
		return 0, false, nil
	}
	f, ok := eng.AsFloat(v)
	if !ok {
		return 0, false, fmt.Errorf("non-numeric bound %v", v)
	}
	return f, true, nil
}

func compileNumber(doc *jsonschema.Schema, integer bool) (checkFunc, error) {
	min, hasMin, err := bound(doc.Minimum)
	if err != nil {
		return nil, err
	}
	max, hasMax, err := bound(doc.Maximum)
	if err != nil {
		return nil, err
	}
	exclMin, hasExclMin, err := bound(doc.ExclusiveMinimum)
	if err != nil {
		return nil, err
	}
	exclMax, hasExclMax, err := bound(doc.ExclusiveMaximum)
	if err != nil {
		return nil, err
	}
	what := "number"
	if integer {
		what = "integer"
	}
	return func(v any) valgo.Issues {
		f, st := eng.Float(v, 64)
		if st != eng.NumOK {
			return expected(what)
		}
		if integer && math.Trunc(f) != f {
			return expected(what)
		}
		var iss valgo.Issues
		if hasMin && f < min {
			iss = append(iss, issue(valgo.CodeTooSmall, nil))
		}
		if hasExclMin && f <= exclMin {
			iss = append(iss, issue(valgo.CodeTooSmall, nil))
		}
		if hasMax && f > max {
			iss = append(iss, issue(valgo.CodeTooBig, nil))
		}
		if hasExclMax && f >= exclMax {
			iss = append(iss, issue(valgo.CodeTooBig, nil))
		}
		return iss
	}, nil
}

func compileObject(doc *jsonschema.Schema) (checkFunc, error) {
	props := make(map[string]checkFunc, len(doc.Properties))
	for k, p := range doc.Properties {
		if p == nil {
			return nil, fmt.Errorf("property %q: nil schema", k)
		}
		chk, err := compile(p)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", k, err)
		}
		props[k] = chk
	}
	required := doc.Required
	allowExtra := true
	if b, ok := doc.AdditionalProperties.(bool); ok && !b {
		allowExtra = false
	}
	return func(v any) valgo.Issues {
		m, ok := v.(map[string]any)
		if !ok {
			return expected("object")
		}
		var iss valgo.Issues
		for _, k := range required {
			if _, present := m[k]; !present {
				it := issue(valgo.CodeRequired, nil)
				it.Path = valgo.Path{valgo.Key(k)}
				iss = append(iss, it)
			}
		}
		// Sorted key order keeps issue order stable across runs.
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			chk, known := props[k]
			if !known {
				if !allowExtra {
					it := issue(valgo.CodeUnknownKey, nil)
					it.Path = valgo.Path{valgo.Key(k)}
					iss = append(iss, it)
				}
				continue
			}
			for _, it := range chk(m[k]) {
				it.Path = it.Path.Prepend(valgo.Key(k))
				iss = append(iss, it)
			}
		}
		return iss
	}, nil
}

func compileArray(doc *jsonschema.Schema) (checkFunc, error) {
	var itemChk checkFunc
	if doc.Items != nil {
		var err error
		itemChk, err = compile(doc.Items)
		if err != nil {
			return nil, fmt.Errorf("items: %w", err)
		}
	}
	minItems, maxItems := doc.MinItems, doc.MaxItems
	return func(v any) valgo.Issues {
		arr, ok := v.([]any)
		if !ok {
			return expected("array")
		}
		var iss valgo.Issues
		if minItems != nil && len(arr) < *minItems {
			iss = append(iss, issue(valgo.CodeTooShort, nil))
		}
		if maxItems != nil && len(arr) > *maxItems {
			iss = append(iss, issue(valgo.CodeTooLong, nil))
		}
		if itemChk != nil {
			for i, el := range arr {
				for _, it := range itemChk(el) {
					it.Path = it.Path.Prepend(valgo.Index(i))
					iss = append(iss, it)
				}
			}
		}
		return iss
	}, nil
}

func compileOneOf(branches []*jsonschema.Schema) (checkFunc, error) {
	checks := make([]checkFunc, 0, len(branches))
	for i, b := range branches {
		if b == nil {
			return nil, fmt.Errorf("oneOf[%d]: nil schema", i)
		}
		chk, err := compile(b)
		if err != nil {
			return nil, fmt.Errorf("oneOf[%d]: %w", i, err)
		}
		checks = append(checks, chk)
	}
	return func(v any) valgo.Issues {
		matched := 0
		for _, chk := range checks {
			if len(chk(v)) == 0 {
				matched++
			}
		}
		if matched == 1 {
			return nil
		}
		return valgo.Issues{issue(valgo.CodeInvalidType, map[string]string{"expected": "exactly one matching schema"})}
	}, nil
}
