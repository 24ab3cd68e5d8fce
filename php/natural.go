package php

// NaturalCompare orders strings the way people read them: runs of digits
// compare by numeric value ("img2" < "img12"), leading zeros are
// skipped at the start, runs of whitespace are ignored and a run that
// starts with '0' compares left-aligned as a fraction. This is
// strnatcmp.
func NaturalCompare(a, b string, caseInsensitive bool) int {
	if len(a) == 0 || len(b) == 0 {
		return cmpInt(len(a), len(b))
	}
	ai, bi := 0, 0
	leading := true
	for {
		ca, cb := byteAt(a, ai), byteAt(b, bi)

		if leading {
			for ca == '0' && ai+1 < len(a) && isDigit(a[ai+1]) {
				ai++
				ca = a[ai]
			}
			for cb == '0' && bi+1 < len(b) && isDigit(b[bi+1]) {
				bi++
				cb = b[bi]
			}
			leading = false
		}

		for isSpace(ca) {
			ai++
			ca = byteAt(a, ai)
		}
		for isSpace(cb) {
			bi++
			cb = byteAt(b, bi)
		}

		if isDigit(ca) && isDigit(cb) {
			var r int
			if ca == '0' || cb == '0' {
				r, ai, bi = compareLeft(a, ai, b, bi)
			} else {
				r, ai, bi = compareRight(a, ai, b, bi)
			}
			switch {
			case r != 0:
				return r
			case ai == len(a) && bi == len(b):
				return 0
			case ai == len(a):
				return -1
			case bi == len(b):
				return 1
			}
			ca, cb = a[ai], b[bi]
		}

		if caseInsensitive {
			ca, cb = toUpper(ca), toUpper(cb)
		}
		switch {
		case ca < cb:
			return -1
		case ca > cb:
			return 1
		}

		ai++
		bi++
		switch {
		case ai >= len(a) && bi >= len(b):
			return 0
		case ai >= len(a):
			return -1
		case bi >= len(b):
			return 1
		}
	}
}

// compareRight compares right-aligned digit runs: the longer run wins,
// otherwise the first differing digit.
func compareRight(a string, ai int, b string, bi int) (int, int, int) {
	bias := 0
	for ; ; ai, bi = ai+1, bi+1 {
		da, db := isDigit(byteAt(a, ai)), isDigit(byteAt(b, bi))
		switch {
		case !da && !db:
			return bias, ai, bi
		case !da:
			return -1, ai, bi
		case !db:
			return 1, ai, bi
		}
		if bias == 0 {
			bias = cmpInt(int(a[ai]), int(b[bi]))
		}
	}
}

// compareLeft compares left-aligned digit runs: the first differing
// digit wins.
func compareLeft(a string, ai int, b string, bi int) (int, int, int) {
	for ; ; ai, bi = ai+1, bi+1 {
		da, db := isDigit(byteAt(a, ai)), isDigit(byteAt(b, bi))
		switch {
		case !da && !db:
			return 0, ai, bi
		case !da:
			return -1, ai, bi
		case !db:
			return 1, ai, bi
		}
		if c := cmpInt(int(a[ai]), int(b[bi])); c != 0 {
			return c, ai, bi
		}
	}
}

func byteAt(s string, i int) byte {
	if i < len(s) {
		return s[i]
	}
	return 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
