package engine

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
)

// NumStatus classifies a numeric extraction. WrongType, Fraction, Overflow
// and NotFinite are kept distinct so callers can report out-of-range input
// separately from non-numeric input.
type NumStatus int

const (
	NumOK NumStatus = iota
	NumWrongType
	NumFraction
	NumOverflow
	NumNotFinite
)

// Int extracts a signed integer of the given width (32 or 64 bits) from an
// unknown value. Accepted inputs are Go integers, float64/float32 with a zero
// fractional part, and json.Number.
func Int(v any, bits int) (int64, NumStatus) {
	switch t := v.(type) {
	case int:
		return clampInt(int64(t), bits)
	case int8:
		return clampInt(int64(t), bits)
	case int16:
		return clampInt(int64(t), bits)
	case int32:
		return clampInt(int64(t), bits)
	case int64:
		return clampInt(t, bits)
	case uint:
		return clampIntFromUint(uint64(t), bits)
	case uint8:
		return clampInt(int64(t), bits)
	case uint16:
		return clampInt(int64(t), bits)
	case uint32:
		return clampInt(int64(t), bits)
	case uint64:
		return clampIntFromUint(t, bits)
	case float32:
		return intFromFloat(float64(t), bits)
	case float64:
		return intFromFloat(t, bits)
	case json.Number:
		if i, err := strconv.ParseInt(t.String(), 10, 64); err == nil {
			return clampInt(i, bits)
		} else if errors.Is(err, strconv.ErrRange) {
			return 0, NumOverflow
		}
		f, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			return 0, NumWrongType
		}
		return intFromFloat(f, bits)
	default:
		return 0, NumWrongType
	}
}

// Uint extracts an unsigned integer of the given width (32 or 64 bits) from
// an unknown value. Negative input reports NumOverflow, not NumWrongType:
// it is numeric, just out of range.
func Uint(v any, bits int) (uint64, NumStatus) {
	switch t := v.(type) {
	case int:
		return clampUintFromInt(int64(t), bits)
	case int8:
		return clampUintFromInt(int64(t), bits)
	case int16:
		return clampUintFromInt(int64(t), bits)
	case int32:
		return clampUintFromInt(int64(t), bits)
	case int64:
		return clampUintFromInt(t, bits)
	case uint:
		return clampUint(uint64(t), bits)
	case uint8:
		return clampUint(uint64(t), bits)
	case uint16:
		return clampUint(uint64(t), bits)
	case uint32:
		return clampUint(uint64(t), bits)
	case uint64:
		return clampUint(t, bits)
	case float32:
		return uintFromFloat(float64(t), bits)
	case float64:
		return uintFromFloat(t, bits)
	case json.Number:
		if u, err := strconv.ParseUint(t.String(), 10, 64); err == nil {
			return clampUint(u, bits)
		}
		if i, err := strconv.ParseInt(t.String(), 10, 64); err == nil {
			// Parsed as signed but not unsigned: negative.
			return clampUintFromInt(i, bits)
		} else if errors.Is(err, strconv.ErrRange) {
			return 0, NumOverflow
		}
		f, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			return 0, NumWrongType
		}
		return uintFromFloat(f, bits)
	default:
		return 0, NumWrongType
	}
}

// Float extracts a floating-point number of the given width (32 or 64 bits)
// from an unknown value. NaN and ±Inf report NumNotFinite; the caller decides
// whether policy allows them. For 32-bit width, finite values beyond the f32
// range report NumOverflow.
func Float(v any, bits int) (float64, NumStatus) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int8:
		f = float64(t)
	case int16:
		f = float64(t)
	case int32:
		f = float64(t)
	case int64:
		f = float64(t)
	case uint:
		f = float64(t)
	case uint8:
		f = float64(t)
	case uint16:
		f = float64(t)
	case uint32:
		f = float64(t)
	case uint64:
		f = float64(t)
	case json.Number:
		var err error
		f, err = strconv.ParseFloat(t.String(), 64)
		if err != nil {
			return 0, NumWrongType
		}
	default:
		return 0, NumWrongType
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f, NumNotFinite
	}
	if bits == 32 && math.Abs(f) > math.MaxFloat32 {
		return f, NumOverflow
	}
	return f, NumOK
}

// AsFloat widens any accepted numeric representation to float64, with no
// finiteness or range policy applied.
func AsFloat(v any) (float64, bool) {
	f, st := Float(v, 64)
	return f, st == NumOK || st == NumNotFinite
}

func clampInt(i int64, bits int) (int64, NumStatus) {
	if bits == 32 && (i < math.MinInt32 || i > math.MaxInt32) {
		return 0, NumOverflow
	}
	return i, NumOK
}

func clampIntFromUint(u uint64, bits int) (int64, NumStatus) {
	if u > math.MaxInt64 {
		return 0, NumOverflow
	}
	return clampInt(int64(u), bits)
}

func clampUint(u uint64, bits int) (uint64, NumStatus) {
	if bits == 32 && u > math.MaxUint32 {
		return 0, NumOverflow
	}
	return u, NumOK
}

func clampUintFromInt(i int64, bits int) (uint64, NumStatus) {
	if i < 0 {
		return 0, NumOverflow
	}
	return clampUint(uint64(i), bits)
}

func intFromFloat(f float64, bits int) (int64, NumStatus) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, NumNotFinite
	}
	if math.Trunc(f) != f {
		return 0, NumFraction
	}
	// Beyond ±2^63 every float is out of range for any signed width.
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, NumOverflow
	}
	return clampInt(int64(f), bits)
}

func uintFromFloat(f float64, bits int) (uint64, NumStatus) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, NumNotFinite
	}
	if math.Trunc(f) != f {
		return 0, NumFraction
	}
	if f < 0 || f >= math.MaxUint64 {
		return 0, NumOverflow
	}
	return clampUint(uint64(f), bits)
}
