package parser

import (
	"strings"
)

// builtInDateNumFmts lists the built-in number format ids that render dates
// or times, including the East Asian locale variants.
var builtInDateNumFmts = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 32: true, 33: true, 34: true, 35: true, 36: true,
	45: true, 46: true, 47: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
}

// IsDateNumFmt reports whether a number format renders a date or time.
// id is the number format id; code is the custom format code, if any.
func IsDateNumFmt(id int, code string) bool {
	if builtInDateNumFmts[id] {
		return true
	}
	if code == "" {
		return false
	}
	return isDateFormatCode(code)
}

// isDateFormatCode looks for date or time tokens in the first section of a
// format code, ignoring quoted literals, escapes and bracketed modifiers.
func isDateFormatCode(code string) bool {
	if section, _, found := strings.Cut(code, ";"); found {
		code = section
	}
	if strings.EqualFold(code, "general") {
		return false
	}

	for i := 0; i < len(code); i++ {
		c := code[i]
		switch c {
		case '"':
			end := strings.IndexByte(code[i+1:], '"')
			if end < 0 {
				return false
			}
			i += end + 1
		case '\\', '_', '*':
			i++
		case '[':
			end := strings.IndexByte(code[i+1:], ']')
			if end < 0 {
				return false
			}
			if isElapsedToken(code[i+1 : i+1+end]) {
				return true
			}
			i += end + 1
		default:
			switch c | 0x20 {
			case 'd', 'm', 'y', 'h', 's':
				return true
			}
		}
	}
	return false
}

// isElapsedToken reports whether a bracketed token is an elapsed time unit such as [h] or [mm].
func isElapsedToken(token string) bool {
	if token == "" {
		return false
	}
	first := token[0] | 0x20
	if first != 'h' && first != 'm' && first != 's' {
		return false
	}
	for i := 1; i < len(token); i++ {
		if token[i]|0x20 != first {
			return false
		}
	}
	return true
}
