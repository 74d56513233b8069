package valgo

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType = "invalid_type"
	CodeOverflow    = "overflow"
	CodeNotFinite   = "not_finite"
	CodeRequired    = "required"
	CodeTooSmall    = "too_small"
	CodeTooBig      = "too_big"
	CodeTooShort    = "too_short"
	CodeTooLong     = "too_long"
	CodeUnknownKey  = "unknown_key"
	CodePattern     = "pattern"
	CodeParseError  = "parse_error"
)

// ErrNotInitialized is returned by Handle (and everything routed through it)
// when the engine has not been loaded yet. It signals a usage bug, not bad
// input, and is deliberately distinct from validation issues.
var ErrNotInitialized = errors.New("valgo: engine not initialized; call Init first")

// Issue represents a single validation entry.
type Issue struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	// Path locates the offending sub-value, rooted at the validated value.
	// Empty for scalar-level failures.
	Path Path `json:"path,omitempty"`
	// Params carries structured parameters (e.g., {"min":0, "max":4294967295})
	// for i18n and observability. Not serialized on the wire.
	Params map[string]any `json:"-"`
}

// Issues is a collection of validation entries that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /1
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
