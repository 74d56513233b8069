package jsonschema

import (
	"errors"
	"fmt"
	"strings"
)

// Target selects the JSON Schema dialect a document is generated for.
type Target int

const (
	TargetDraft202012 Target = iota // JSON Schema Draft 2020-12
	TargetDraft07                   // JSON Schema Draft 07
	TargetOpenAPI30                 // OpenAPI 3.0 compatible schema
)

// ErrUnsupportedTarget is returned for target selectors outside the three
// supported dialects. Generators never substitute a default dialect.
var ErrUnsupportedTarget = errors.New("jsonschema: unsupported target")

func (t Target) String() string {
	switch t {
	case TargetDraft202012:
		return "draft-2020-12"
	case TargetDraft07:
		return "draft-07"
	case TargetOpenAPI30:
		return "openapi-3.0"
	default:
		return "unknown"
	}
}

// SchemaURI returns the $schema URI for the target. OpenAPI documents do not
// carry $schema, so the URI is empty for TargetOpenAPI30.
func (t Target) SchemaURI() string {
	switch t {
	case TargetDraft202012:
		return "https://json-schema.org/draft/2020-12/schema"
	case TargetDraft07:
		return "http://json-schema.org/draft-07/schema#"
	default:
		return ""
	}
}

// Valid reports whether t is one of the supported dialects.
func (t Target) Valid() bool {
	switch t {
	case TargetDraft202012, TargetDraft07, TargetOpenAPI30:
		return true
	}
	return false
}

// ParseTarget resolves a target selector string. The canonical spellings are
// "draft-2020-12", "draft-07" and "openapi-3.0"; a few common aliases are
// accepted. Anything else is an ErrUnsupportedTarget.
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(s) {
	case "draft-2020-12", "draft2020-12", "2020-12":
		return TargetDraft202012, nil
	case "draft-07", "draft07", "07":
		return TargetDraft07, nil
	case "openapi-3.0", "openapi30", "openapi":
		return TargetOpenAPI30, nil
	default:
		return 0, fmt.Errorf("%w: %q (supported: draft-2020-12, draft-07, openapi-3.0)", ErrUnsupportedTarget, s)
	}
}
