// Package soap rewrites flagged vocabulary in free text and classifies its tone.
//
// A Soap value holds the replacement table: built-in offensive words (masked
// with asterisks), built-in slang ("rot-brain") mapped to plain words, and any
// custom entries registered at runtime. Tables are per-instance; Default returns
// a shared instance for callers that do not need isolation.
//
//	s := soap.New(soap.WithCacheSize(128))
//	s.Sanitize("You have rizz, th4t's s0 sus!")
//	// "You have charisma, that's so suspicious!"
//
//	_ = s.AddCustomFilter("unicorn")
//	s.Sanitize("A Unicorn appeared.")
//	// "A [filtered] appeared."
//
//	s.DetectTone("Dear Sir or Madam,") // soap.ToneFormal
//
// # Sanitizing
//
// Input is split on ASCII whitespace and every separator is kept verbatim. Each
// token is divided into leading punctuation, a core and trailing punctuation.
// The core is looked up case-insensitively, then with leetspeak digits and
// symbols replaced by letters, then with internal punctuation removed. Only
// whole cores match; nothing is replaced inside a word.
//
// Replacements inherit the casing of the token they replace: all-caps tokens
// produce upper-case replacements, capitalized tokens produce capitalized
// replacements and everything else is lower case. Compound tokens such as
// "Rot-Brain" keep the replacement as stored unless fully upper case.
//
// Unmatched tokens are left alone, except that cores written in leetspeak
// ("l33tspeak", "Th1s") are emitted with the letters they stand for.
// Sanitize and Suggest are the same transformation.
//
// # Tone and categories
//
// DetectTone checks sarcastic, formal and casual signals in that order and
// falls back to an optional Bayesian Classifier, then to ToneNeutral. Detect
// and Categories flag content such as clickbait, spam or technobabble using
// static phrase lists matched on word boundaries.
//
// # Other helpers
//
// Filter masks words matching comma-separated wildcard patterns.
// CheckGrammar and CorrectGrammar handle a small set of common slips like
// "should of". LoadDictionary extends the table from JSON, YAML or HJSON files.
//
// All exported methods on Soap are safe for concurrent use.
package soap
