package soap

import (
	"fmt"
	"regexp"
	"strings"
)

// Category is a kind of content flagged by Detect.
type Category string

const (
	CategoryRagebait     Category = "ragebait"
	CategoryClickbait    Category = "clickbait"
	CategorySpam         Category = "spam"
	CategoryWoke         Category = "woke"
	CategoryBot          Category = "bot"
	CategorySarcasm      Category = "sarcasm"
	CategoryFormal       Category = "formal"
	CategorySnowflake    Category = "snowflake"
	CategoryOffensive    Category = "offensive"
	CategoryHype         Category = "hype"
	CategoryQuality      Category = "quality"
	CategoryPolitical    Category = "political"
	CategoryConspiracy   Category = "conspiracy"
	CategoryMarketing    Category = "marketing"
	CategoryTechnobabble Category = "technobabble"
)

// AllCategories lists every category in the order Categories reports them.
var AllCategories = []Category{
	CategoryRagebait, CategoryClickbait, CategorySpam, CategoryWoke, CategoryBot,
	CategorySarcasm, CategoryFormal, CategorySnowflake, CategoryOffensive, CategoryHype,
	CategoryQuality, CategoryPolitical, CategoryConspiracy, CategoryMarketing, CategoryTechnobabble,
}

type detector struct {
	phrases  phraseSet
	patterns []*regexp.Regexp
}

var detectors = map[Category]detector{
	CategoryRagebait: {phrases: newPhraseSet(
		"outrageous", "outrage", "infuriating", "enraging", "disgusting", "disgraceful",
		"unacceptable", "how dare", "makes me furious", "makes my blood boil", "shameful",
		"absolutely ridiculous", "you should be angry", "everyone is furious",
	)},
	CategoryClickbait: {
		phrases: newPhraseSet(
			"you won't believe", "secrets revealed", "revealed", "shocking", "what happens next",
			"this one trick", "doctors hate", "click here", "must see", "gone wrong",
			"jaw-dropping", "will blow your mind", "you need to know", "number will surprise you",
		),
		patterns: []*regexp.Regexp{regexp.MustCompile(`(?i)\btop\s+\d+\b`)},
	},
	CategorySpam: {phrases: newPhraseSet(
		"earn cash", "earn money", "make money fast", "cash fast", "free money", "exclusive deal",
		"act now", "limited offer", "risk-free", "no credit check", "you are a winner",
		"claim your prize", "buy now", "100% free", "work from home", "double your income",
		"wire transfer", "miracle cure",
	)},
	CategoryWoke: {phrases: newPhraseSet(
		"diversity", "inclusion", "inclusivity", "equity", "privilege", "systemic",
		"social justice", "intersectionality", "marginalized", "safe space", "microaggression",
		"microaggressions", "lived experience",
	)},
	CategoryBot: {phrases: newPhraseSet(
		"auto-generated", "autogenerated", "automated message", "automated reply", "automated response",
		"do not reply", "bot", "beep boop", "generated automatically", "noreply", "as an ai",
	)},
	CategorySarcasm:   {phrases: newPhraseSet(sarcasticPhrases...), patterns: []*regexp.Regexp{sarcasticExclaim}},
	CategoryFormal:    {phrases: newPhraseSet(formalPhrases...)},
	CategorySnowflake: {phrases: newPhraseSet(
		"snowflake", "snowflakes", "triggered", "offended easily", "easily offended", "so sensitive",
		"too sensitive", "crybaby", "fragile ego", "can't handle criticism",
	)},
	CategoryOffensive: {phrases: newPhraseSet(append([]string{
		"idiot", "idiots", "loser", "losers", "stupid", "moron", "morons", "dumb", "imbecile",
		"pathetic", "worthless", "shut up", "scumbag", "jerk",
	}, offensiveWords...)...)},
	CategoryHype: {phrases: newPhraseSet(
		"ultimate", "revolutionary", "game-changing", "game changer", "game-changer", "breakthrough",
		"unprecedented", "mind-blowing", "next level", "next-level", "insane", "epic", "best ever",
		"life-changing", "world-class", "the future of",
	)},
	CategoryQuality: {phrases: newPhraseSet(
		"everyone knows", "clearly", "reliable", "methodology", "peer-reviewed", "evidence-based",
		"proven", "rigorous", "verified", "well-documented", "according to research",
		"studies show", "experts agree",
	)},
	CategoryPolitical: {phrases: newPhraseSet(
		"government", "big government", "policy", "policies", "election", "elections", "democrat",
		"democrats", "republican", "republicans", "liberal", "liberals", "conservative",
		"conservatives", "left-wing", "right-wing", "personal freedom", "taxes", "overreach",
		"congress", "senate", "parliament", "legislation",
	)},
	CategoryConspiracy: {phrases: newPhraseSet(
		"hidden truth", "secret society", "secret societies", "cover-up", "cover up", "deep state",
		"illuminati", "new world order", "they don't want you to know", "sheeple", "wake up people",
		"chemtrails", "false flag", "moon landing was faked", "moon landing hoax", "faked",
		"control world events", "mind control",
	)},
	CategoryMarketing: {phrases: newPhraseSet(
		"sign up", "limited-time", "limited time", "exclusive offer", "special offer", "offer ends",
		"discount", "buy now", "special promotion", "don't miss out", "free trial", "subscribe now",
		"order now", "best price", "save big", "while supplies last",
	)},
	CategoryTechnobabble: {phrases: newPhraseSet(
		"cloud-native", "ai-powered", "ai-driven", "seamless integration", "next-gen", "synergy",
		"synergies", "blockchain", "paradigm shift", "leverage", "disruptive innovation",
		"hyper-converged", "quantum-ready", "web3", "holistic", "bleeding-edge", "machine-learning-powered",
	)},
}

// ParseCategory maps a category name to a Category.
func ParseCategory(name string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := detectors[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return c, nil
}

// Detect reports whether text shows signs of category c.
func Detect(c Category, text string) (bool, error) {
	d, ok := detectors[c]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
	}
	return d.match(text), nil
}

// Categories returns every category detected in text, in AllCategories order.
func Categories(text string) []Category {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	words := wordsOf(text)
	var found []Category
	for _, c := range AllCategories {
		if detectors[c].matchWords(text, words) {
			found = append(found, c)
		}
	}
	return found
}

func (d detector) match(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	return d.matchWords(text, wordsOf(text))
}

func (d detector) matchWords(text string, words []string) bool {
	if _, ok := d.phrases.find(words); ok {
		return true
	}
	for _, re := range d.patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// IsRagebait reports whether text reads as rage bait.
func IsRagebait(text string) bool { return detectors[CategoryRagebait].match(text) }

// IsClickbait reports whether text reads as clickbait.
func IsClickbait(text string) bool { return detectors[CategoryClickbait].match(text) }

// IsSpam reports whether text reads as spam.
func IsSpam(text string) bool { return detectors[CategorySpam].match(text) }

// IsWoke reports whether text reads as woke buzzwords.
func IsWoke(text string) bool { return detectors[CategoryWoke].match(text) }

// IsBot reports whether text reads as bot-like phrasing.
func IsBot(text string) bool { return detectors[CategoryBot].match(text) }

// IsSarcasm reports whether text reads as sarcasm.
func IsSarcasm(text string) bool { return detectors[CategorySarcasm].match(text) }

// IsFormal reports whether text reads as formal phrasing.
func IsFormal(text string) bool { return detectors[CategoryFormal].match(text) }

// IsSnowflake reports whether text reads as snowflake talk.
func IsSnowflake(text string) bool { return detectors[CategorySnowflake].match(text) }

// IsOffensiveText reports whether text reads as insults or profanity.
func IsOffensiveText(text string) bool { return detectors[CategoryOffensive].match(text) }

// IsHype reports whether text reads as hype.
func IsHype(text string) bool { return detectors[CategoryHype].match(text) }

// IsQuality reports whether text reads as low-quality filler.
func IsQuality(text string) bool { return detectors[CategoryQuality].match(text) }

// IsPolitical reports whether text reads as political talking points.
func IsPolitical(text string) bool { return detectors[CategoryPolitical].match(text) }

// IsConspiracy reports whether text reads as conspiracy talk.
func IsConspiracy(text string) bool { return detectors[CategoryConspiracy].match(text) }

// IsMarketing reports whether text reads as marketing copy.
func IsMarketing(text string) bool { return detectors[CategoryMarketing].match(text) }

// IsTechnobabble reports whether text reads as technobabble.
func IsTechnobabble(text string) bool { return detectors[CategoryTechnobabble].match(text) }
