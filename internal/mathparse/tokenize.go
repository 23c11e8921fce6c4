package mathparse

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// structural tokens understood by the converter besides registered symbols.
var structural = []string{"(", ")", ","}

// tokenize splits a raw expression string into atomic tokens. Registered and
// structural tokens are matched greedily, longest first, so 'cos(pi+2)'
// yields cos ( pi + 2 ) even with no whitespace in the input and a token can
// never split a longer token that contains it. Leftover runs that are not
// numeric literals are emitted one character at a time, deferring the
// unknown-token failure to the converter.
func (e *Evaluator) tokenize(expr string) []string {
	known := append(e.tokens(), structural...)

	var out []string
	for _, chunk := range strings.Fields(expr) {
		out = splitChunk(out, chunk, known)
	}
	return out
}

// splitChunk appends the tokens of a whitespace-free chunk to out.
func splitChunk(out []string, chunk string, known []string) []string {
	pending := ""
	flush := func() {
		if pending == "" {
			return
		}
		if isNumeric(pending) {
			out = append(out, pending)
		} else {
			for _, r := range pending {
				out = append(out, string(r))
			}
		}
		pending = ""
	}

	for len(chunk) > 0 {
		if token := matchToken(chunk, known); token != "" {
			flush()
			out = append(out, token)
			chunk = chunk[len(token):]
			continue
		}
		_, size := utf8.DecodeRuneInString(chunk)
		pending += chunk[:size]
		chunk = chunk[size:]
	}
	flush()
	return out
}

// matchToken returns the first known token that prefixes chunk. Known is
// ordered longest first, so the longest candidate wins.
func matchToken(chunk string, known []string) string {
	for _, token := range known {
		if strings.HasPrefix(chunk, token) {
			return token
		}
	}
	return ""
}

// isNumeric reports whether a token parses as a floating point literal.
// This single test governs tokenizer classification and operand handling in
// the postfix evaluator.
func isNumeric(token string) bool {
	_, err := strconv.ParseFloat(token, 64)
	return err == nil
}
