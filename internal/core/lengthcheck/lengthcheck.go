// Package lengthcheck reports whether a normalized bullet is over the length limit
package lengthcheck

import "unicode/utf8"

const (
	// Limit is the longest result that passes without a warning. Warning quotes it, so it is fixed
	Limit = 550

	// Warning is shown for any result longer than Limit
	Warning = "This content exceeds 550 characters. Kindly have a look at it."
)

// Report is the outcome of a length check
type Report struct {
	Length   int    `json:"length"   example:"42"`
	Limit    int    `json:"limit"    example:"550"`
	Exceeded bool   `json:"exceeded" example:"false"`
	Warning  string `json:"warning,omitempty"`
}

// Check measures text against Limit
func Check(text string) Report {
	r := Report{Length: Length(text), Limit: Limit}
	if r.Length > r.Limit {
		r.Exceeded = true
		r.Warning = Warning
	}
	return r
}

// Length counts UTF-16 code units, the unit a browser textarea counts in.
// Runes outside the BMP take two units; invalid bytes take one each
func Length(s string) int {
	n := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r > 0xffff {
			n += 2
		} else {
			n++
		}
		i += size
	}
	return n
}
