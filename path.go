package valgo

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Seg is one step in an issue path: either an object key or a zero-based
// array index. On the wire a key serializes as a JSON string and an index as
// a JSON number, matching the Standard Schema issue shape.
type Seg struct {
	key   string
	index int
	isKey bool
}

// Key returns a key segment.
func Key(k string) Seg { return Seg{key: k, isKey: true} }

// Index returns an index segment.
func Index(i int) Seg { return Seg{index: i} }

// IsKey reports whether the segment is an object key.
func (s Seg) IsKey() bool { return s.isKey }

// Key returns the object key ("" for index segments).
func (s Seg) Key() (string, bool) { return s.key, s.isKey }

// Index returns the array index (0, false for key segments).
func (s Seg) Index() (int, bool) { return s.index, !s.isKey }

func (s Seg) String() string {
	if s.isKey {
		return s.key
	}
	return strconv.Itoa(s.index)
}

// MarshalJSON renders the segment as a bare string or number.
func (s Seg) MarshalJSON() ([]byte, error) {
	if s.isKey {
		return json.Marshal(s.key)
	}
	return json.Marshal(s.index)
}

// UnmarshalJSON accepts a JSON string (key) or number (index). Fractional
// numbers are rejected; indexes are whole by construction.
func (s *Seg) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case string:
		*s = Key(t)
		return nil
	case float64:
		i := int(t)
		if float64(i) != t {
			return fmt.Errorf("valgo: fractional path index %v", t)
		}
		*s = Index(i)
		return nil
	default:
		return fmt.Errorf("valgo: invalid path segment %T", v)
	}
}

// Path is an ordered sequence of segments locating a sub-value.
type Path []Seg

// Prepend returns a new Path with seg placed in front. The receiver is not
// modified; issues are immutable once produced.
func (p Path) Prepend(seg Seg) Path {
	np := make(Path, 0, len(p)+1)
	np = append(np, seg)
	np = append(np, p...)
	return np
}

// String renders the path as a JSON-Pointer-like string, e.g. /items/2.
// The empty path renders as "/".
func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, seg := range p {
		b.WriteByte('/')
		b.WriteString(seg.String())
	}
	return b.String()
}
