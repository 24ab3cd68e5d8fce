package convert

import "strconv"

// maxKeyLen is the length of "-9223372036854775808".
const maxKeyLen = 20

// StringToArrayKey decides whether s is a canonical integer array key.
//
// Only the decimal form that strconv.FormatInt would produce qualifies:
// "0", or an optional '-' followed by a non-zero digit and more digits,
// within the int64 range. "00", "-0", "+1", " 1" and overflowing digit
// strings stay string keys.
func StringToArrayKey(s string) (int64, bool) {
	n := len(s)
	if n == 0 || n > maxKeyLen {
		return 0, false
	}

	i := 0
	if s[0] == '-' {
		if n == 1 {
			return 0, false
		}
		i = 1
	}

	if s[i] == '0' {
		// Only a bare "0" is canonical.
		return 0, n == 1
	}

	for j := i; j < n; j++ {
		if !isDigit(s[j]) {
			return 0, false
		}
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
