package cli

import (
	"strings"
)

type argKind int

const (
	argValue argKind = iota // bare value, e.g. an object file
	argShort                // one character of a -abc cluster
	argLong                 // --name, any attached =value held back
)

type arg struct {
	kind  argKind
	value string // bare value text
	short rune
	long  string
}

// tokenizer is a low-level argument lexer. It yields bare values, short
// flags and long flags one at a time and leaves value consumption to the
// caller, which is what lets wasm-ld's stateful, order-sensitive options
// interleave with this tool's own. Raw access at token boundaries exists
// for the non-standard single-dash long flags that never tokenize.
type tokenizer struct {
	args      []string
	i         int
	cluster   []rune  // unconsumed shorts of the current argument
	attached  *string // =value of the current long flag
	allValues bool    // a lone "--" was seen
}

func newTokenizer(args []string) *tokenizer {
	return &tokenizer{args: args}
}

// rawPeek returns the next whole argument verbatim. It reports false in
// the middle of a short cluster or while an attached value is pending.
func (t *tokenizer) rawPeek() (string, bool) {
	if len(t.cluster) > 0 || t.attached != nil || t.allValues {
		return "", false
	}
	if t.i >= len(t.args) {
		return "", false
	}
	return t.args[t.i], true
}

// rawNext consumes the argument rawPeek reported.
func (t *tokenizer) rawNext() (string, bool) {
	raw, ok := t.rawPeek()
	if ok {
		t.i++
	}
	return raw, ok
}

func (t *tokenizer) next() (arg, bool) {
	t.attached = nil
	if len(t.cluster) > 0 {
		c := t.cluster[0]
		t.cluster = t.cluster[1:]
		return arg{kind: argShort, short: c}, true
	}
	if t.i >= len(t.args) {
		return arg{}, false
	}
	a := t.args[t.i]
	t.i++
	switch {
	case t.allValues || a == "" || a == "-":
		return arg{kind: argValue, value: a}, true
	case a == "--":
		t.allValues = true
		return t.next()
	case strings.HasPrefix(a, "--"):
		name := a[2:]
		if eq := strings.IndexByte(name, '='); eq >= 0 {
			v := name[eq+1:]
			t.attached = &v
			name = name[:eq]
		}
		return arg{kind: argLong, long: name}, true
	case strings.HasPrefix(a, "-"):
		t.cluster = []rune(a[1:])
		c := t.cluster[0]
		t.cluster = t.cluster[1:]
		return arg{kind: argShort, short: c}, true
	default:
		return arg{kind: argValue, value: a}, true
	}
}

// hasAttached reports whether the just-yielded long flag carried =value.
func (t *tokenizer) hasAttached() bool {
	return t.attached != nil
}

// value consumes the value for the just-yielded flag: the attached =value
// of a long flag, the glued remainder of a short cluster (so -Lfoo and
// -O2 work), or failing those the next whole argument.
func (t *tokenizer) value() (string, bool) {
	if t.attached != nil {
		v := *t.attached
		t.attached = nil
		return v, true
	}
	if len(t.cluster) > 0 {
		v := string(t.cluster)
		t.cluster = nil
		// -o=foo means -o foo
		v = strings.TrimPrefix(v, "=")
		return v, true
	}
	if t.i < len(t.args) {
		v := t.args[t.i]
		t.i++
		return v, true
	}
	return "", false
}

// optionalValue consumes a value only when one is attached with `=`.
// A following bare argument is never taken.
func (t *tokenizer) optionalValue() (string, bool) {
	if t.attached != nil {
		v := *t.attached
		t.attached = nil
		return v, true
	}
	return "", false
}
