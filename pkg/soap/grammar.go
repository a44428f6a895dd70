package soap

import (
	"regexp"
	"strings"
)

type grammarRule struct {
	pattern     *regexp.Regexp
	replacement string
}

func rule(phrase, replacement string) grammarRule {
	return grammarRule{
		pattern:     regexp.MustCompile(`(?i)\b` + strings.ReplaceAll(regexp.QuoteMeta(phrase), ` `, `\s+`) + `\b`),
		replacement: replacement,
	}
}

var grammarRules = []grammarRule{
	rule("should of", "should have"),
	rule("could of", "could have"),
	rule("would of", "would have"),
	rule("must of", "must have"),
	rule("might of", "might have"),
	rule("me and him", "he and I"),
	rule("me and her", "she and I"),
	rule("him and me", "he and I"),
	rule("her and me", "she and I"),
	rule("alot", "a lot"),
	rule("irregardless", "regardless"),
	rule("could care less", "couldn't care less"),
	rule("for all intensive purposes", "for all intents and purposes"),
	rule("each others", "each other's"),
	rule("supposably", "supposedly"),
	rule("the the", "the"),
}

// CheckGrammar returns the number of common grammar slips found in text.
func CheckGrammar(text string) int {
	n := 0
	for _, r := range grammarRules {
		n += len(r.pattern.FindAllStringIndex(text, -1))
	}
	return n
}

// CorrectGrammar fixes the slips counted by CheckGrammar. A capitalized slip
// gets a capitalized correction.
func CorrectGrammar(text string) string {
	for _, r := range grammarRules {
		text = r.pattern.ReplaceAllStringFunc(text, func(match string) string {
			if isUpper(match[0]) {
				return capitalize(r.replacement)
			}
			return r.replacement
		})
	}
	return text
}
