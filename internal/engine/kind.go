package engine

// Kind enumerates the primitive kinds the engine can validate and describe.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindI32
	KindI64
	KindU32
	KindU64
	KindF32
	KindF64
)

var kindNames = map[Kind]string{
	KindString: "string",
	KindBool:   "bool",
	KindI32:    "i32",
	KindI64:    "i64",
	KindU32:    "u32",
	KindU64:    "u64",
	KindF32:    "f32",
	KindF64:    "f64",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseKind resolves the textual name of a kind ("i32", "string", ...).
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

// Kinds returns all kinds in declaration order.
func Kinds() []Kind {
	return []Kind{KindString, KindBool, KindI32, KindI64, KindU32, KindU64, KindF32, KindF64}
}
