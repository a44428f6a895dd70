package soap

import (
	"sort"
	"strings"
)

// Sanitize rewrites flagged tokens in text. Offensive words become asterisks,
// slang becomes plain words and custom filters become the custom replacement.
// Whitespace and punctuation around tokens are preserved exactly.
func (s *Soap) Sanitize(text string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if out, ok := s.memo.get(text); ok {
		return out
	}
	out := s.sanitizeLocked(text)
	s.memo.put(text, out)
	return out
}

// Suggest is the same transformation as Sanitize.
func (s *Soap) Suggest(text string) string {
	return s.Sanitize(text)
}

// Must be called with the read lock held.
func (s *Soap) sanitizeLocked(text string) string {
	runs := splitRuns(text)

	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(runs); i++ {
		r := runs[i]
		if r.space {
			b.WriteString(r.text)
			continue
		}
		if last, out, ok := s.matchPhraseLocked(runs, i); ok {
			b.WriteString(out)
			i = last
			continue
		}
		b.WriteString(s.sanitizeTokenLocked(r.text))
	}
	return b.String()
}

func (s *Soap) sanitizeTokenLocked(tok string) string {
	prefix, core, suffix, e, ok := s.matchTokenLocked(tok)
	if core == "" {
		return tok
	}
	if ok {
		return prefix + render(core, e) + suffix
	}
	if plain, ok := normalizeLeet(core); ok {
		return prefix + plain + suffix
	}
	return tok
}

// matchTokenLocked splits tok and looks its core up. Leet symbols at the end of
// the leading punctuation ("$hit", "@ss") are folded into the core when the
// bare core matches nothing. Must be called with the read lock held.
func (s *Soap) matchTokenLocked(tok string) (prefix, core, suffix string, e Entry, ok bool) {
	prefix, core, suffix = splitAffixes(tok)
	if core == "" {
		return prefix, core, suffix, Entry{}, false
	}
	if e, ok = s.lookupLocked(core); ok {
		return prefix, core, suffix, e, true
	}

	n := len(prefix)
	for n > 0 && isLeet(prefix[n-1]) {
		n--
	}
	if n < len(prefix) {
		folded := prefix[n:] + core
		if e, ok = s.lookupLocked(folded); ok {
			return prefix[:n], folded, suffix, e, true
		}
	}
	return prefix, core, suffix, Entry{}, false
}

// collectPhrases returns the multi-word keys of table, longest first.
func collectPhrases(table map[string]Entry) [][]string {
	var phrases [][]string
	for key := range table {
		if strings.Contains(key, " ") {
			phrases = append(phrases, strings.Split(key, " "))
		}
	}
	sort.Slice(phrases, func(i, j int) bool {
		if len(phrases[i]) != len(phrases[j]) {
			return len(phrases[i]) > len(phrases[j])
		}
		return strings.Join(phrases[i], " ") < strings.Join(phrases[j], " ")
	})
	return phrases
}

// matchPhraseLocked matches a multi-word key starting at token run i. Inner
// tokens must carry no punctuation of their own. It returns the index of the
// last run consumed and the rendered replacement.
func (s *Soap) matchPhraseLocked(runs []run, i int) (int, string, bool) {
next:
	for _, phrase := range s.phrases {
		last := i + 2*(len(phrase)-1)
		if last >= len(runs) {
			continue
		}

		var prefix, suffix, first string
		for n, word := range phrase {
			p, core, sfx := splitAffixes(runs[i+2*n].text)
			if core == "" || !keyMatches(core, word) {
				continue next
			}
			if (n > 0 && p != "") || (n < len(phrase)-1 && sfx != "") {
				continue next
			}
			if n == 0 {
				prefix, first = p, core
			}
			if n == len(phrase)-1 {
				suffix = sfx
			}
		}

		e := s.table[strings.Join(phrase, " ")]
		return last, prefix + render(first, e) + suffix, true
	}
	return 0, "", false
}

func keyMatches(core, word string) bool {
	for _, k := range lookupKeys(core) {
		if k == word {
			return true
		}
	}
	return false
}

func render(core string, e Entry) string {
	if e.Replacement == "" {
		return strings.Repeat("*", len(core))
	}
	return restoreCase(core, e.Replacement)
}

// restoreCase applies the casing pattern of original to replacement.
func restoreCase(original, replacement string) string {
	switch {
	case isAllCaps(original):
		return strings.ToUpper(replacement)
	case isCompound(original):
		return replacement
	case isUpper(original[0]):
		return capitalize(strings.ToLower(replacement))
	default:
		return strings.ToLower(replacement)
	}
}

// isAllCaps reports whether s has at least two letters, all upper case.
func isAllCaps(s string) bool {
	letters := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isLetter(c) {
			continue
		}
		if !isUpper(c) {
			return false
		}
		letters++
	}
	return letters >= 2
}

// isCompound reports whether s joins several parts with punctuation, as in "rot-brain".
func isCompound(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isWordByte(s[i]) && !isLeet(s[i]) {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// normalizeLeet rewrites a core written in leetspeak with the letters its
// digits and symbols stand for. The core may hold only letters, leet characters
// and apostrophes. It is rewritten when a leet character sits between letters
// ("l33t", "th1s") or when the rewrite is a common short word ("1s", "s0").
// Identifiers such as "mp3", "4K" or "covid19" are left alone. A lone "4" reads as "a".
func normalizeLeet(core string) (string, bool) {
	if core == "4" {
		return "a", true
	}

	first, last := -1, -1
	for i := 0; i < len(core); i++ {
		c := core[i]
		switch {
		case isLetter(c):
			if first < 0 {
				first = i
			}
			last = i
		case isLeet(c), c == '\'':
		default:
			return "", false
		}
	}
	if first < 0 {
		return "", false
	}

	inner, edge := false, false
	for i := 0; i < len(core); i++ {
		if !isLeet(core[i]) {
			continue
		}
		if i > first && i < last {
			inner = true
		} else {
			edge = true
		}
	}
	if !inner && !edge {
		return "", false
	}

	upper := isAllCaps(core)
	out := []byte(core)
	for i, c := range out {
		if l := leetMap[c]; l != 0 {
			if upper {
				l -= 'a' - 'A'
			}
			out[i] = l
		}
	}
	if !inner && !leetWords[strings.ToLower(string(out))] {
		return "", false
	}
	return string(out), true
}
