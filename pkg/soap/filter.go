package soap

import (
	"regexp"
	"strings"
)

// Filter masks every word of text matching one of the comma-separated
// patterns. Patterns are case-insensitive, match whole words and may use "*"
// as a wildcard ("lo*er" matches both "loser" and "lover").
func Filter(patterns, text string) string {
	matchers := compilePatterns(patterns)
	if len(matchers) == 0 || text == "" {
		return text
	}

	b := []byte(text)
	for i := 0; i < len(b); {
		if !isWordByte(b[i]) {
			i++
			continue
		}
		j := i + 1
		for j < len(b) && isWordByte(b[j]) {
			j++
		}
		word := text[i:j]
		for _, re := range matchers {
			if re.MatchString(word) {
				for k := i; k < j; k++ {
					b[k] = '*'
				}
				break
			}
		}
		i = j
	}
	return string(b)
}

func compilePatterns(patterns string) []*regexp.Regexp {
	var out []*regexp.Regexp
	for _, p := range strings.Split(patterns, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		parts := strings.Split(p, "*")
		for i, part := range parts {
			parts[i] = regexp.QuoteMeta(part)
		}
		out = append(out, regexp.MustCompile(`(?i)^`+strings.Join(parts, ".*")+`$`))
	}
	return out
}
