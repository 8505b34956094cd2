package gclp

import (
	"strings"
	"unicode"
)

const (
	dash        = '-'
	escapeChar  = '\\'
	singleQuote = '\''
	doubleQuote = '"'
	streamDelim = " "
)

// SplitWords splits a command line into words.
//
// Words are separated by white space. A span quoted with ' or " is part of
// the current word, white space included, and the quote characters are
// dropped. A backslash makes the next character literal. Malformed input
// never fails: an unterminated quote runs to the end of s.
func SplitWords(s string) []string {
	words := []string{}
	var (
		word    strings.Builder
		inWord  bool
		quote   rune // 0 outside quoted span
		escaped bool
	)
	flush := func() {
		if inWord {
			words = append(words, word.String())
			word.Reset()
			inWord = false
		}
	}
	for _, r := range s {
		switch {
		case escaped:
			escaped = false
			word.WriteRune(r)
			inWord = true
		case r == escapeChar:
			escaped = true
		case quote != 0:
			if r == quote {
				quote = 0
				continue
			}
			word.WriteRune(r)
			inWord = true
		case r == singleQuote || r == doubleQuote:
			quote = r
		case unicode.IsSpace(r):
			flush()
		default:
			word.WriteRune(r)
			inWord = true
		}
	}
	flush()
	return words
}

// flattenArgs joins argv-style arguments the same way a shell hands them over
// as one line, so that ParseArgs and Parse see identical words.
func flattenArgs(args []string) string {
	return strings.Join(args, streamDelim)
}

// isKey reports whether w looks like a key. Note the long form inspects the
// third character: "-x-" is not a key.
func isKey(w string) bool {
	rs := []rune(w)
	switch {
	case len(rs) <= 1:
		return false
	case len(rs) == 2:
		return rs[0] == dash && rs[1] != dash
	default:
		return rs[0] == dash && rs[2] != dash
	}
}

func isSingleDashed(w string) bool {
	rs := []rune(w)
	return len(rs) > 1 && rs[0] == dash && rs[1] != dash
}

// isComplexKey reports whether w packs several short keys, like -abc.
func isComplexKey(w string) bool {
	return isSingleDashed(w) && len([]rune(w)) > 2
}

func isShortKey(w string) bool {
	return isKey(w) && isSingleDashed(w) && !isComplexKey(w)
}

func isLongKey(w string) bool {
	return isKey(w) && !isSingleDashed(w)
}

func removeDash(w string) string {
	return strings.TrimLeft(w, string(dash))
}
