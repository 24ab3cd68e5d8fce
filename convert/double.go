package convert

import (
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultPrecision is PHP's "precision" setting, used for string conversion.
	DefaultPrecision = 14
	// ShortestPrecision requests the shortest round-tripping representation
	// (PHP's serialize_precision = -1).
	ShortestPrecision = -1

	maxPrecision = 40
	// roundTripDigits is the digit budget of the shortest mode.
	roundTripDigits = 17

	two63 = 9223372036854775808.0
	two64 = 18446744073709551616.0
)

// FormatDouble converts d the way PHP prints floats.
//
// precision is the number of significant digits; ShortestPrecision picks
// the shortest representation that reads back to d. Exponential notation
// is used when the decimal exponent is below -4 or above the digit budget,
// and always carries a fractional part and an explicit sign (1.0E+25).
func FormatDouble(d float64, precision int) string {
	switch {
	case math.IsNaN(d):
		return "NAN"
	case math.IsInf(d, 1):
		return "INF"
	case math.IsInf(d, -1):
		return "-INF"
	}

	neg := math.Signbit(d)
	if neg {
		d = -d
	}

	var digits string
	var decpt, ndigit int
	if precision < 0 {
		digits, decpt = decompose(strconv.FormatFloat(d, 'e', -1, 64))
		ndigit = roundTripDigits
	} else {
		if precision == 0 {
			precision = 1
		} else if precision > maxPrecision {
			precision = maxPrecision
		}
		digits, decpt = decompose(strconv.FormatFloat(d, 'e', precision-1, 64))
		ndigit = precision
	}

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}

	exponential := decpt > ndigit
	if decpt < 0 {
		exponential = decpt < -3
	}

	switch {
	case exponential:
		exp := decpt - 1
		sb.WriteByte(digits[0])
		sb.WriteByte('.')
		if len(digits) == 1 {
			sb.WriteByte('0')
		} else {
			sb.WriteString(digits[1:])
		}
		sb.WriteByte('E')
		if exp < 0 {
			sb.WriteByte('-')
			exp = -exp
		} else {
			sb.WriteByte('+')
		}
		sb.WriteString(strconv.Itoa(exp))
	case decpt <= 0:
		sb.WriteString("0.")
		for i := decpt; i < 0; i++ {
			sb.WriteByte('0')
		}
		sb.WriteString(digits)
	default:
		if len(digits) <= decpt {
			sb.WriteString(digits)
			for i := len(digits); i < decpt; i++ {
				sb.WriteByte('0')
			}
		} else {
			sb.WriteString(digits[:decpt])
			sb.WriteByte('.')
			sb.WriteString(digits[decpt:])
		}
	}
	return sb.String()
}

// decompose splits strconv's 'e' output ("d.ddde±xx") into significant
// digits without trailing zeros and the position of the decimal point
// relative to those digits.
func decompose(e string) (string, int) {
	mant, exp, _ := strings.Cut(e, "e")
	x, _ := strconv.Atoi(exp)
	digits := strings.Replace(mant, ".", "", 1)
	digits = strings.TrimRight(digits, "0")
	if digits == "" {
		// Zero: one digit, decimal point after it.
		return "0", 1
	}
	return digits, x + 1
}

// DoubleToLong converts d to a long with PHP's modular semantics:
// NaN and infinities become 0, out of range values wrap around 2^64.
func DoubleToLong(d float64) int64 {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0
	}
	if d >= -two63 && d < two63 {
		return int64(d)
	}
	dmod := math.Mod(d, two64)
	if dmod < 0 {
		dmod += two64
	}
	return int64(uint64(dmod))
}

// DoubleToLongCap converts d to a long, saturating at the long range.
// NaN and infinities become 0.
func DoubleToLongCap(d float64) int64 {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0
	}
	if d >= two63 {
		return math.MaxInt64
	}
	if d < -two63 {
		return math.MinInt64
	}
	return int64(d)
}

// FitsLong reports whether d is integral and representable as a long.
func FitsLong(d float64) bool {
	return d >= -two63 && d < two63 && d == math.Trunc(d)
}
