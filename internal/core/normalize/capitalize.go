package normalize

import (
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"bulletpoints/internal/core/rulepack"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// casers are stateful, so each call borrows one
var lowerPool = sync.Pool{
	New: func() any { return cases.Lower(language.Und) },
}

// sentenceStart matches the first word char of a sentence and any word char after
// sentence punctuation inside it
var sentenceStart = regexp.MustCompile(`^` + rulepack.Space + `*\w|[.!?]` + rulepack.Space + `*\w`)

// leadingWord matches optional leading whitespace plus the first word char
var leadingWord = regexp.MustCompile(`^` + rulepack.Space + `*\w`)

// Capitalize lower cases s, strips one filler word per sentence, upper cases sentence
// starts and finally restores the uppercase unit tokens
func (n *Normalizer) Capitalize(s string) string {
	s = lower(s)

	sentences := splitSentences(s)
	for i, sentence := range sentences {
		sentence = n.StripFiller(sentence)
		sentences[i] = sentenceStart.ReplaceAllStringFunc(sentence, strings.ToUpper)
	}
	out := strings.Join(sentences, " ")

	return n.pack.Units.ReplaceAllStringFunc(out, n.pack.Upper)
}

// StripFiller removes at most one leading filler word and the whitespace after it,
// then upper cases the first word char
func (n *Normalizer) StripFiller(s string) string {
	if loc := n.pack.Filler.FindStringIndex(s); loc != nil {
		s = s[loc[1]:]
	}
	return leadingWord.ReplaceAllStringFunc(s, strings.ToUpper)
}

func lower(s string) string {
	if s == "" {
		return s
	}
	c := lowerPool.Get().(cases.Caser)
	out := c.String(s)
	c.Reset()
	lowerPool.Put(c)
	return out
}

// splitSentences cuts s at every whitespace run that directly follows . ! or ?
// The punctuation stays with the left sentence and the run is dropped
// An empty input yields a single empty sentence
func splitSentences(s string) []string {
	out := make([]string, 0, 4)
	start := 0
	var prev rune
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if isSpace(r) && isTerminal(prev) {
			out = append(out, s[start:i])
			j := i + size
			for j < len(s) {
				r2, sz := utf8.DecodeRuneInString(s[j:])
				if !isSpace(r2) {
					break
				}
				j += sz
			}
			start, i, prev = j, j, r
			continue
		}
		prev = r
		i += size
	}
	return append(out, s[start:])
}

func isTerminal(r rune) bool { return r == '.' || r == '!' || r == '?' }

// isSpace mirrors rulepack.Space
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		0x00a0, 0x1680, 0x2028, 0x2029, 0x202f, 0x205f, 0x3000, 0xfeff:
		return true
	}
	return r >= 0x2000 && r <= 0x200a
}
