package argfile

import (
	"strings"
	"unicode"
)

// posixSplitter implements GNU-style response file tokenization: arguments
// separated by whitespace, single or double quotes preserve internal
// whitespace and are stripped, and a backslash escapes the next character
// everywhere, including inside quotes.
type posixSplitter struct{}

func (posixSplitter) Split(contents string) ([]string, error) {
	var out []string
	rs := []rune(contents)
	i := 0
	for i < len(rs) {
		switch c := rs[i]; {
		case unicode.IsSpace(c):
			i++
		case c == '"' || c == '\'':
			i++
			var part strings.Builder
			for i < len(rs) && rs[i] != c {
				i = appendEscaped(&part, rs, i)
			}
			if i < len(rs) {
				i++ // closing quote
			}
			out = append(out, part.String())
		default:
			var part strings.Builder
			i = appendEscaped(&part, rs, i)
			for i < len(rs) && !unicode.IsSpace(rs[i]) {
				i = appendEscaped(&part, rs, i)
			}
			out = append(out, part.String())
		}
	}
	return out, nil
}

// appendEscaped copies one logical character: a backslash takes the
// following character literally, even when that character is whitespace
// or a quote. A trailing lone backslash stays a backslash.
func appendEscaped(b *strings.Builder, rs []rune, i int) int {
	if rs[i] == '\\' && i+1 < len(rs) {
		b.WriteRune(rs[i+1])
		return i + 2
	}
	b.WriteRune(rs[i])
	return i + 1
}
