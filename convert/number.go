// Package convert implements PHP's numeric string detection and the
// number formatting rules shared by the value engine.
//
// The scanner is a single left-to-right pass that computes a long and a
// double interpretation of a string prefix at the same time, together
// with flags describing how much of the input was numeric.
package convert

import (
	"math"
	"strconv"
)

// NumberInfo describes the outcome of a numeric conversion.
type NumberInfo uint8

const (
	// LongInteger is set when the long interpretation is exact.
	LongInteger NumberInfo = 1 << iota
	// Double is set when the value needs the double interpretation
	// (fraction, exponent, or long overflow).
	Double
	// IsNumber is set when the whole input (up to the scan limit) was numeric.
	IsNumber
	// IsHexadecimal is set for 0x-prefixed input.
	IsHexadecimal
	// IsPhpArray marks a conversion whose operand was an array.
	IsPhpArray

	// None means no digits were found.
	None NumberInfo = 0
)

// Has reports whether all bits of f are set in info.
func (info NumberInfo) Has(f NumberInfo) bool {
	return info&f == f
}

// Result is the outcome of Scan.
type Result struct {
	Info   NumberInfo
	Long   int64
	Double float64
	// End is the offset of the first byte that was not consumed.
	End int
}

// IsDouble reports whether the double interpretation should be used.
func (r Result) IsDouble() bool {
	return r.Info&Double != 0
}

// IsNumeric reports whether the scanned input was fully numeric.
func (r Result) IsNumeric() bool {
	return r.Info&IsNumber != 0
}

// isWhite matches the whitespace PHP skips around numeric strings.
func isWhite(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func hexValue(c byte) (uint64, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint64(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint64(c-'A') + 10, true
	}
	return 0, false
}

// Scan parses s[:limit] as a number. A negative limit, or one past the
// end of s, scans the whole string.
//
// Leading whitespace is skipped. An optional sign is followed either by a
// 0x-prefixed hexadecimal integer or by decimal digits with an optional
// fraction and exponent. Whitespace after a complete number is accepted.
// The value found so far is returned even when the input is not fully
// numeric; only the IsNumber flag tells the two cases apart.
func Scan(s string, limit int) Result {
	if limit < 0 || limit > len(s) {
		limit = len(s)
	}

	i := 0
	for i < limit && isWhite(s[i]) {
		i++
	}
	start := i

	neg := false
	if i < limit && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	if i+2 < limit && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') {
		if _, ok := hexValue(s[i+2]); ok {
			return scanHex(s, i+2, limit, neg)
		}
	}

	// Integer part. Accumulate the magnitude unsigned so that MinInt64
	// is representable.
	bound := uint64(math.MaxInt64)
	if neg {
		bound++
	}
	var mag uint64
	overflow := false
	digits := 0
	for i < limit && isDigit(s[i]) {
		d := uint64(s[i] - '0')
		if !overflow {
			if mag > (bound-d)/10 {
				overflow = true
			} else {
				mag = mag*10 + d
			}
		}
		digits++
		i++
	}

	info := None
	if overflow {
		info |= Double
	}

	// Fraction.
	fracDigits := 0
	if i < limit && s[i] == '.' {
		j := i + 1
		for j < limit && isDigit(s[j]) {
			fracDigits++
			j++
		}
		if digits > 0 || fracDigits > 0 {
			info |= Double
			i = j
		}
	}

	if digits == 0 && fracDigits == 0 {
		return Result{Info: None}
	}

	// Exponent: needs a preceding digit and at least one exponent digit.
	if i < limit && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < limit && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < limit && isDigit(s[j]) {
			for j < limit && isDigit(s[j]) {
				j++
			}
			info |= Double
			i = j
		}
	}

	var r Result
	if info&Double != 0 {
		// ParseFloat rounds correctly; the consumed text is always valid
		// float syntax here. Out of range exponents yield ±Inf, which is
		// what PHP produces as well.
		d, _ := strconv.ParseFloat(s[start:i], 64)
		r.Double = d
		r.Long = DoubleToLongCap(d)
	} else {
		info |= LongInteger
		if neg {
			r.Long = -int64(mag)
		} else {
			r.Long = int64(mag)
		}
		r.Double = float64(r.Long)
	}

	r.Info, r.End = finish(s, i, limit, info)
	return r
}

// scanHex continues Scan after a 0x prefix. Accumulation switches to
// double once the value no longer fits a long.
func scanHex(s string, i, limit int, neg bool) Result {
	var mag uint64
	var d float64
	overflow := false
	for i < limit {
		h, ok := hexValue(s[i])
		if !ok {
			break
		}
		if !overflow {
			if mag > (math.MaxInt64-h)>>4 {
				overflow = true
				d = float64(mag)*16 + float64(h)
			} else {
				mag = mag<<4 | h
			}
		} else {
			d = d*16 + float64(h)
		}
		i++
	}

	info := IsHexadecimal
	var r Result
	if overflow {
		info |= Double
		if neg {
			d = -d
		}
		r.Double = d
		r.Long = DoubleToLongCap(d)
	} else {
		info |= LongInteger
		r.Long = int64(mag)
		if neg {
			r.Long = -r.Long
		}
		r.Double = float64(r.Long)
	}
	r.Info, r.End = finish(s, i, limit, info)
	return r
}

// finish consumes trailing whitespace and sets IsNumber when the limit
// was reached.
func finish(s string, i, limit int, info NumberInfo) (NumberInfo, int) {
	j := i
	for j < limit && isWhite(s[j]) {
		j++
	}
	if j == limit {
		return info | IsNumber, j
	}
	return info, i
}

// StringToNumber scans the whole of s.
func StringToNumber(s string) Result {
	return Scan(s, -1)
}

// IsNumberString reports whether s is a numeric string.
func IsNumberString(s string) bool {
	return Scan(s, -1).Info&IsNumber != 0
}

// IsNumeric classifies s and returns both interpretations.
func IsNumeric(s string) (info NumberInfo, l int64, d float64) {
	r := Scan(s, -1)
	return r.Info, r.Long, r.Double
}

// StringToLong performs an explicit (int) cast of s: the numeric prefix
// is used and doubles saturate at the long range.
func StringToLong(s string) int64 {
	return Scan(s, -1).Long
}

// StringToDouble performs an explicit (float) cast of s.
func StringToDouble(s string) float64 {
	r := Scan(s, -1)
	if r.Info&Double != 0 {
		return r.Double
	}
	return float64(r.Long)
}
