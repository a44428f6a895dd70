package soap

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/soapkit/pkg/logger"
)

// Tone is the overall register of a text.
type Tone string

const (
	ToneSarcastic Tone = "sarcastic"
	ToneFormal    Tone = "formal"
	ToneCasual    Tone = "casual"
	ToneNeutral   Tone = "neutral"
)

func (t Tone) String() string { return string(t) }

var sarcasticPhrases = []string{
	"oh great", "oh wonderful", "oh fantastic", "oh perfect", "oh joy",
	"oh sure", "oh really", "yeah right", "yeah sure", "sure thing buddy",
	"just what i needed", "just what we needed", "thanks a lot", "thanks for nothing",
	"as if", "big surprise", "what a surprise", "how original", "wow just wow",
	"nice going", "well done genius", "because that always works", "could this get any better",
	"i just love it when", "clearly the best idea",
}

var formalPhrases = []string{
	"dear sir", "dear madam", "sir or madam", "to whom it may concern",
	"sincerely", "yours faithfully", "yours truly", "kind regards", "best regards",
	"respectfully", "i am writing to", "please find attached", "we regret to inform",
	"at your earliest convenience", "i would like to request", "pursuant to",
	"further to our", "please do not hesitate",
}

var casualPhrases = []string{
	"what's up", "whats up", "wassup", "gonna", "wanna", "gotta", "kinda", "sorta",
	"btw", "lol", "omg", "dude", "bro", "ya know", "no worries", "cool cool",
	"see ya", "catch you later",
}

var casualOpeners = []string{"hey", "hi", "hiya", "yo", "sup", "howdy", "heya"}

// sarcasticExclaim catches a dismissive opener and a mock-positive word ending
// in an exclamation, like "Oh perfect, another outage!".
var sarcasticExclaim = regexp.MustCompile(`(?i)^\s*(?:oh|yeah|sure|wow)\W+(?:great|wonderful|fantastic|perfect|brilliant|lovely|nice|amazing)\b[^!]*!`)

// toneSignal matches phrases anywhere, openers at the start of the text, or a pattern.
type toneSignal struct {
	tone    Tone
	phrases phraseSet
	openers phraseSet
	pattern *regexp.Regexp
}

// toneSignals are evaluated in order; the first match wins.
var toneSignals = []toneSignal{
	{tone: ToneSarcastic, phrases: newPhraseSet(sarcasticPhrases...), pattern: sarcasticExclaim},
	{tone: ToneFormal, phrases: newPhraseSet(formalPhrases...)},
	{tone: ToneCasual, phrases: newPhraseSet(casualPhrases...), openers: newPhraseSet(casualOpeners...)},
}

func (sig toneSignal) match(text string, words []string) (string, bool) {
	if p, ok := sig.phrases.find(words); ok {
		return p, true
	}
	if p, ok := sig.openers.prefixOf(words); ok {
		return p, true
	}
	if sig.pattern != nil && sig.pattern.MatchString(text) {
		return sig.pattern.FindString(text), true
	}
	return "", false
}

// DetectTone classifies text as sarcastic, formal or casual from fixed signal
// phrases, checked in that order. When nothing matches, the configured
// classifier decides; without one the result is ToneNeutral.
func (s *Soap) DetectTone(text string) Tone {
	if strings.TrimSpace(text) == "" {
		return ToneNeutral
	}

	words := wordsOf(text)
	for _, sig := range toneSignals {
		if phrase, ok := sig.match(text, words); ok {
			s.log.Debug("tone signal matched", logger.Tone(sig.tone.String()), logger.Phrase(phrase))
			return sig.tone
		}
	}

	if s.classifier != nil {
		tone, err := s.classifier.Classify(text)
		if err == nil {
			return tone
		}
		s.log.Debug("classifier fallback skipped", logger.Error(err))
	}
	return ToneNeutral
}
