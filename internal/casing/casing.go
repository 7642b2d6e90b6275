// Package casing converts CloudFormation logical identifiers (PascalCase,
// e.g. "MyBucket") into the casing convention each emitter needs:
// PascalCase for exported symbols, camelCase for locals, snake_case for
// module/file symbols. Every emitter in internal/emit calls into this one
// small library rather than carrying its own casing rules, per the
// "identifier converters should be a single small library" design note.
package casing

import (
	"strings"
	"unicode"
)

// words splits an identifier into its component words. It treats runs of
// non-alphanumeric characters as separators and also splits on
// lower-to-upper transitions ("MyBucket" -> ["My", "Bucket"]) and on
// upper-run-to-titlecase boundaries ("HTTPServer" -> ["HTTP", "Server"]).
func words(s string) []string {
	var out []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			out = append(out, string(cur))
			cur = nil
		}
	}
	runes := []rune(s)
	for i, r := range runes {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if i > 0 {
				prev := runes[i-1]
				if unicode.IsLower(prev) && unicode.IsUpper(r) {
					flush()
				} else if unicode.IsUpper(prev) && unicode.IsUpper(r) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
					flush()
				} else if (unicode.IsLetter(prev) && unicode.IsDigit(r)) || (unicode.IsDigit(prev) && unicode.IsLetter(r)) {
					flush()
				}
			}
			cur = append(cur, r)
		default:
			flush()
		}
	}
	flush()
	return out
}

// Pascal renders "MyBucket", "my_bucket", and "my-bucket" all as
// "MyBucket".
func Pascal(s string) string {
	var b strings.Builder
	for _, w := range words(s) {
		b.WriteString(titleWord(w))
	}
	return b.String()
}

// Camel renders an identifier as camelCase ("myBucket").
func Camel(s string) string {
	ws := words(s)
	var b strings.Builder
	for i, w := range ws {
		if i == 0 {
			b.WriteString(strings.ToLower(w))
		} else {
			b.WriteString(titleWord(w))
		}
	}
	return b.String()
}

// Snake renders an identifier as snake_case ("my_bucket"), used for module
// and file symbols.
func Snake(s string) string {
	ws := words(s)
	for i, w := range ws {
		ws[i] = strings.ToLower(w)
	}
	return strings.Join(ws, "_")
}

func titleWord(w string) string {
	if w == "" {
		return w
	}
	r := []rune(strings.ToLower(w))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
