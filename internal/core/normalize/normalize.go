// Package normalize provides the deterministic bullet point text normalizer
// Pipeline order
// 1 & -> and, whole word number names -> digits
// 2 unit rules from the rule pack, applied one after another
// 3 punctuation: .!? -> comma, strip $ # *, quote marks after digits -> in. / ft.
// 4 capitalization: lower case, per sentence filler strip and capitalize, units back to upper
package normalize

import (
	"regexp"
	"strings"
	"sync"

	"bulletpoints/internal/core/rulepack"
)

// Normalizer is read-only after construction and safe for concurrent use
type Normalizer struct {
	pack *rulepack.Pack
}

// Option configures a Normalizer
type Option func(*Normalizer)

// WithPack swaps the rule pack, mostly for tests
func WithPack(p *rulepack.Pack) Option {
	return func(n *Normalizer) {
		if p != nil {
			n.pack = p
		}
	}
}

// New constructs a Normalizer over the embedded rule pack
func New(opts ...Option) *Normalizer {
	n := &Normalizer{}
	for _, o := range opts {
		o(n)
	}
	if n.pack == nil {
		n.pack = rulepack.Default()
	}
	return n
}

// Pack returns the rule pack the normalizer runs with
func (n *Normalizer) Pack() *rulepack.Pack { return n.pack }

var def = sync.OnceValue(func() *Normalizer { return New() })

// Normalize runs s through the default normalizer
func Normalize(s string) string { return def().Normalize(s) }

// Normalize returns s rewritten by every stage in order. It never fails
func (n *Normalizer) Normalize(s string) string {
	s = n.Substitute(s)
	s = n.Annotate(s)
	s = Punctuate(s)
	return n.Capitalize(s)
}

// Substitute replaces & with "and" and whole word number names with digits
func (n *Normalizer) Substitute(s string) string {
	s = strings.ReplaceAll(s, "&", "and")
	for _, w := range n.pack.NumberWords {
		s = w.Apply(s)
	}
	return s
}

// Annotate applies the unit rules sequentially; later rules see earlier output
func (n *Normalizer) Annotate(s string) string {
	for _, u := range n.pack.UnitRules {
		s = u.Apply(s)
	}
	return s
}

var (
	// each pass is its own replacer so the passes stay sequential
	sentenceToComma = strings.NewReplacer(".", ",", "!", ",", "?", ",")
	bangToPeriod    = strings.NewReplacer("!", ".", "?", ".")
	dropDollarHash  = strings.NewReplacer("$", "", "#", "")
	dropDollarStar  = strings.NewReplacer("$", "", "*", "")

	digitsInches = regexp.MustCompile(`(\d+)` + rulepack.Space + `*"`)
	digitsFeet   = regexp.MustCompile(`(\d+)` + rulepack.Space + `*'`)
)

// Punctuate collapses sentence punctuation to commas, strips $ # * and expands
// quote mark shorthands after digits;
// the !? -> . pass runs after every !? is already a comma, so it never fires
func Punctuate(s string) string {
	s = sentenceToComma.Replace(s)
	s = bangToPeriod.Replace(s)
	s = dropDollarHash.Replace(s)
	s = dropDollarStar.Replace(s)
	s = digitsInches.ReplaceAllString(s, "${1} in.")
	s = digitsFeet.ReplaceAllString(s, "${1} ft.")
	return s
}
