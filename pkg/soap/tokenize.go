package soap

import "strings"

// run is a maximal stretch of either whitespace or non-whitespace bytes.
type run struct {
	text  string
	space bool
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isLetter(c byte) bool { return c|0x20 >= 'a' && c|0x20 <= 'z' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

// isWordByte treats bytes of multi-byte UTF-8 sequences as word content so
// non-ASCII words are never split apart.
func isWordByte(c byte) bool { return isLetter(c) || isDigit(c) || c >= 0x80 }

func isLeet(c byte) bool { return leetMap[c] != 0 }

// splitRuns splits text into alternating whitespace and token runs.
// Concatenating the runs reproduces text exactly.
func splitRuns(text string) []run {
	var runs []run
	for i := 0; i < len(text); {
		space := isSpace(text[i])
		j := i + 1
		for j < len(text) && isSpace(text[j]) == space {
			j++
		}
		runs = append(runs, run{text: text[i:j], space: space})
		i = j
	}
	return runs
}

// splitAffixes divides a token into leading punctuation, core and trailing
// punctuation. The core starts at the first letter or digit and may end in a
// leetspeak symbol ("a$$"). Tokens without letters or digits have no core.
func splitAffixes(tok string) (prefix, core, suffix string) {
	start := -1
	for i := 0; i < len(tok); i++ {
		if isWordByte(tok[i]) {
			start = i
			break
		}
	}
	if start < 0 {
		return tok, "", ""
	}

	end := start
	for i := len(tok) - 1; i > start; i-- {
		if isWordByte(tok[i]) || isLeet(tok[i]) {
			end = i
			break
		}
	}
	return tok[:start], tok[start : end+1], tok[end+1:]
}

// lookupKeys returns the keys tried against the table, most literal first:
// the lowercased core, its leetspeak normalization, and the latter without
// internal punctuation.
func lookupKeys(core string) []string {
	lower := strings.ToLower(core)
	keys := []string{lower}

	leet := []byte(lower)
	for i, c := range leet {
		if l := leetMap[c]; l != 0 {
			leet[i] = l
		}
	}
	if k := string(leet); k != lower {
		keys = append(keys, k)
	}

	stripped := leet[:0:0]
	for _, c := range leet {
		if isWordByte(c) {
			stripped = append(stripped, c)
		}
	}
	if k := string(stripped); k != keys[len(keys)-1] && k != "" {
		keys = append(keys, k)
	}
	return keys
}

// wordsOf lowercases text and returns its words. Apostrophes and hyphens stay
// inside words ("what's", "auto-generated") but are trimmed from the ends.
func wordsOf(text string) []string {
	var words []string
	for i := 0; i < len(text); {
		if !isPhraseByte(text[i]) {
			i++
			continue
		}
		j := i + 1
		for j < len(text) && isPhraseByte(text[j]) {
			j++
		}
		if w := strings.Trim(text[i:j], "'-"); w != "" {
			words = append(words, strings.ToLower(w))
		}
		i = j
	}
	return words
}

func isPhraseByte(c byte) bool { return isWordByte(c) || c == '\'' || c == '-' }

// phraseSet holds phrases pre-split into words for boundary-aware matching.
type phraseSet [][]string

func newPhraseSet(phrases ...string) phraseSet {
	set := make(phraseSet, 0, len(phrases))
	for _, p := range phrases {
		if ws := wordsOf(p); len(ws) > 0 {
			set = append(set, ws)
		}
	}
	return set
}

// find returns the first phrase occurring as a contiguous word sequence.
func (p phraseSet) find(words []string) (string, bool) {
	for _, phrase := range p {
		if indexWords(words, phrase) >= 0 {
			return strings.Join(phrase, " "), true
		}
	}
	return "", false
}

// prefixOf reports whether words starts with one of the phrases.
func (p phraseSet) prefixOf(words []string) (string, bool) {
	for _, phrase := range p {
		if len(phrase) <= len(words) && equalWords(words[:len(phrase)], phrase) {
			return strings.Join(phrase, " "), true
		}
	}
	return "", false
}

func indexWords(words, phrase []string) int {
	for i := 0; i+len(phrase) <= len(words); i++ {
		if equalWords(words[i:i+len(phrase)], phrase) {
			return i
		}
	}
	return -1
}

func equalWords(a, b []string) bool {
	for i := range b {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
