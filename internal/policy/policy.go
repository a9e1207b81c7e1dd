package policy

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Rule is a single prohibited-word rule. Matching is case-insensitive and
// whole-word: the word must not be part of a larger word.
type Rule struct {
	// Word is the prohibited word.
	Word string `json:"word"`
	// Source is the regexp source text reported in diagnostics.
	Source string `json:"pattern"`

	re *regexp.Regexp
}

// Matches reports whether the rule matches anywhere in msg.
func (r Rule) Matches(msg string) bool {
	return r.re.MatchString(msg)
}

// wordRule builds a whole-word, case-insensitive rule for word.
func wordRule(word string) Rule {
	source := `\b` + word + `\b`
	return Rule{
		Word:   word,
		Source: source,
		re:     regexp.MustCompile(`(?i)` + source),
	}
}

// rules is the fixed rule list. Order matters: FirstMatch reports the
// earliest rule in this list that matches, regardless of where the words
// appear in the message.
var rules = []Rule{
	wordRule("anthropic"),
	wordRule("claude"),
}

// Rules returns a copy of the built-in rules in evaluation order.
func Rules() []Rule {
	return slices.Clone(rules)
}

// FirstMatch scans msg against the rules in order and returns the first
// rule that matches anywhere in msg.
func FirstMatch(msg string) (Rule, bool) {
	for _, r := range rules {
		if r.Matches(msg) {
			return r, true
		}
	}
	return Rule{}, false
}

// Remediation returns the advice line printed after a match. It is derived
// from the rule words so it cannot drift from the rule list.
func Remediation() string {
	words := make([]string, len(rules))
	for i, r := range rules {
		words[i] = fmt.Sprintf("'%s'", r.Word)
	}
	return fmt.Sprintf("Please remove references to %s from your commit message.", strings.Join(words, " or "))
}
