// Package rulepack loads and compiles the rewrite tables from the embedded rules.json.
// It prepares the number word, unit, filler and uppercase unit regexes for the normalizer
package rulepack

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
)

//go:embed rules.json
var embedded []byte

// Space is the whitespace class matched by \s in rule patterns.
// It follows the ECMAScript definition rather than RE2's ASCII-only \s
const Space = `[\t\n\v\f\r \x{a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}]`

type rawNumberWord struct {
	Word   string `json:"word"`
	Digits string `json:"digits"`
}

type rawUnitRule struct {
	ID          string `json:"id"`
	Pattern     string `json:"pattern"`
	Replacement string `json:"replacement"`
}

type rawPack struct {
	Version     int             `json:"version"`
	Meta        map[string]any  `json:"meta"`
	NumberWords []rawNumberWord `json:"number_words"`
	UnitRules   []rawUnitRule   `json:"unit_rules"`
	UpperUnits  []string        `json:"upper_units"`
	Fillers     []string        `json:"fillers"`
}

// NumberWord is a compiled whole word, case insensitive number name rule
type NumberWord struct {
	Word   string
	Digits string
	re     *regexp.Regexp
}

// Apply replaces every whole word occurrence of the number name with its digits
func (w NumberWord) Apply(s string) string { return w.re.ReplaceAllLiteralString(s, w.Digits) }

// UnitRule is a compiled case insensitive unit abbreviation rule.
// Replacement uses regexp template syntax (${1})
type UnitRule struct {
	ID          string
	Pattern     string
	Replacement string
	re          *regexp.Regexp
}

// Apply runs the rule once over s, globally
func (u UnitRule) Apply(s string) string { return u.re.ReplaceAllString(s, u.Replacement) }

// Pack is the compiled, read-only rule set
type Pack struct {
	Version int
	Meta    map[string]any

	// ordered; the normalizer applies them in slice order
	NumberWords []NumberWord
	UnitRules   []UnitRule

	UpperUnits []string
	Fillers    []string

	// Filler matches one leading filler word plus the whitespace after it
	Filler *regexp.Regexp
	// Units matches any uppercase unit token as a whole token, case insensitive
	Units *regexp.Regexp

	upper map[string]string // lowercased token -> canonical upper form
}

// Load returns the compiled pack from the embedded rules.json
func Load() (*Pack, error) {
	return Parse(embedded)
}

var (
	defOnce sync.Once
	defPack *Pack
	defErr  error
)

// Default returns the process-wide pack compiled from the embedded rules.json.
// It panics when the embedded tables are broken, which tests catch before release
func Default() *Pack {
	if err := Err(); err != nil {
		panic(err)
	}
	return defPack
}

// Err reports the outcome of the process-wide load without panicking
func Err() error {
	defOnce.Do(func() { defPack, defErr = Load() })
	return defErr
}

// Parse compiles a pack from raw rules.json bytes
func Parse(b []byte) (*Pack, error) {
	var rp rawPack
	if err := json.Unmarshal(b, &rp); err != nil {
		return nil, fmt.Errorf("rulepack: parse rules.json: %w", err)
	}
	if rp.Version != 1 {
		return nil, fmt.Errorf("rulepack: unsupported rules.json version %d (want 1)", rp.Version)
	}

	p := &Pack{
		Version: rp.Version,
		Meta:    rp.Meta,
		upper:   make(map[string]string, len(rp.UpperUnits)),
	}

	seen := make(map[string]struct{}, len(rp.NumberWords))
	for _, nw := range rp.NumberWords {
		word := strings.ToLower(strings.TrimSpace(nw.Word))
		if word == "" || nw.Digits == "" {
			return nil, fmt.Errorf("rulepack: empty number word entry %+v", nw)
		}
		if _, dup := seen[word]; dup {
			return nil, fmt.Errorf("rulepack: duplicate number word %q", word)
		}
		seen[word] = struct{}{}
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
		if err != nil {
			return nil, fmt.Errorf("rulepack: compile number word %q: %w", word, err)
		}
		p.NumberWords = append(p.NumberWords, NumberWord{Word: word, Digits: nw.Digits, re: re})
	}

	for _, u := range rp.UnitRules {
		exp := expandSpace(u.Pattern)
		re, err := regexp.Compile(`(?i)` + exp)
		if err != nil {
			return nil, fmt.Errorf("rulepack: compile unit rule %q: %w", u.ID, err)
		}
		p.UnitRules = append(p.UnitRules, UnitRule{
			ID:          u.ID,
			Pattern:     u.Pattern,
			Replacement: u.Replacement,
			re:          re,
		})
	}

	if len(rp.Fillers) == 0 {
		return nil, fmt.Errorf("rulepack: no filler words")
	}
	alts := make([]string, 0, len(rp.Fillers))
	for _, f := range rp.Fillers {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		p.Fillers = append(p.Fillers, f)
		alts = append(alts, regexp.QuoteMeta(f))
	}
	// alternation order is kept as authored: leftmost-first falls through The -> These
	filler, err := regexp.Compile(`(?i)^` + Space + `*(?:` + strings.Join(alts, "|") + `)` + Space + `+`)
	if err != nil {
		return nil, fmt.Errorf("rulepack: compile fillers: %w", err)
	}
	p.Filler = filler

	units, err := compileUnits(rp.UpperUnits, p.upper)
	if err != nil {
		return nil, err
	}
	p.Units = units
	for _, u := range rp.UpperUnits {
		if u = strings.TrimSpace(u); u != "" {
			p.UpperUnits = append(p.UpperUnits, u)
		}
	}

	return p, nil
}

// Upper returns the canonical uppercase form of a unit token matched by Units
func (p *Pack) Upper(tok string) string {
	if v, ok := p.upper[strings.ToLower(tok)]; ok {
		return v
	}
	return strings.ToUpper(tok)
}

// compileUnits builds the whole-token matcher for the uppercase unit set.
// A token ending in a word char needs a boundary on both sides; one ending in '.'
// only in front, since a boundary can never follow '.' before a space
func compileUnits(tokens []string, upper map[string]string) (*regexp.Regexp, error) {
	clean := make([]string, 0, len(tokens))
	for _, t := range tokens {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		clean = append(clean, t)
		upper[strings.ToLower(t)] = strings.ToUpper(t)
	}
	if len(clean) == 0 {
		return nil, fmt.Errorf("rulepack: no uppercase units")
	}
	// longest first keeps GPM ahead of any shorter prefix
	sort.SliceStable(clean, func(i, j int) bool { return len(clean[i]) > len(clean[j]) })

	alts := make([]string, 0, len(clean))
	for _, t := range clean {
		q := regexp.QuoteMeta(t)
		if isWordByte(t[0]) {
			q = `\b` + q
		}
		if isWordByte(t[len(t)-1]) {
			q += `\b`
		}
		alts = append(alts, q)
	}
	re, err := regexp.Compile(`(?i)(?:` + strings.Join(alts, "|") + `)`)
	if err != nil {
		return nil, fmt.Errorf("rulepack: compile uppercase units: %w", err)
	}
	return re, nil
}

// expandSpace rewrites \s outside of escapes into the Space class.
// Patterns must not use \s inside a bracket expression
func expandSpace(pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern) + 64)
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '\\' || i+1 >= len(pattern) {
			b.WriteByte(c)
			continue
		}
		next := pattern[i+1]
		if next == 's' {
			b.WriteString(Space)
		} else {
			b.WriteByte(c)
			b.WriteByte(next)
		}
		i++
	}
	return b.String()
}

func isWordByte(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Tables is the JSON view of the raw tables, safe to hand out
type Tables struct {
	Version     int             `json:"version"`
	NumberWords []NumberWordRow `json:"number_words"`
	UnitRules   []UnitRuleRow   `json:"unit_rules"`
	UpperUnits  []string        `json:"upper_units"`
	Fillers     []string        `json:"fillers"`
}

// NumberWordRow is one number word table entry
type NumberWordRow struct {
	Word   string `json:"word"   example:"three"`
	Digits string `json:"digits" example:"3"`
}

// UnitRuleRow is one unit rule table entry
type UnitRuleRow struct {
	ID          string `json:"id"          example:"width"`
	Pattern     string `json:"pattern"     example:"(\\d+)\\s*width"`
	Replacement string `json:"replacement" example:"${1} W"`
}

// Tables returns a copy of the tables in application order
func (p *Pack) Tables() Tables {
	t := Tables{
		Version:     p.Version,
		NumberWords: make([]NumberWordRow, 0, len(p.NumberWords)),
		UnitRules:   make([]UnitRuleRow, 0, len(p.UnitRules)),
		UpperUnits:  append([]string(nil), p.UpperUnits...),
		Fillers:     append([]string(nil), p.Fillers...),
	}
	for _, w := range p.NumberWords {
		t.NumberWords = append(t.NumberWords, NumberWordRow{Word: w.Word, Digits: w.Digits})
	}
	for _, u := range p.UnitRules {
		t.UnitRules = append(t.UnitRules, UnitRuleRow{ID: u.ID, Pattern: u.Pattern, Replacement: u.Replacement})
	}
	return t
}
