package soap

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/dmitrymomot/soapkit/pkg/logger"
)

// DefaultCustomReplacement replaces phrases registered with AddCustomFilter.
const DefaultCustomReplacement = "[filtered]"

// Soap holds a replacement table and the optional tone classifier.
type Soap struct {
	mu                sync.RWMutex
	table             map[string]Entry
	phrases           [][]string
	customReplacement string
	classifier        *Classifier
	memo              *memo
	log               *slog.Logger
}

// Option configures a Soap instance.
type Option func(*Soap)

// WithLogger sets the logger used for registration events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Soap) {
		if l != nil {
			s.log = l
		}
	}
}

// WithCacheSize memoizes up to n sanitize results. Zero disables the cache.
func WithCacheSize(n int) Option {
	return func(s *Soap) {
		s.memo = newMemo(n)
	}
}

// WithClassifier sets the fallback used by DetectTone when no signal matches.
func WithClassifier(c *Classifier) Option {
	return func(s *Soap) {
		s.classifier = c
	}
}

// WithCustomReplacement changes the token substituted for custom filters.
func WithCustomReplacement(token string) Option {
	return func(s *Soap) {
		if token = strings.TrimSpace(token); token != "" {
			s.customReplacement = token
		}
	}
}

// New returns a Soap loaded with the built-in tables.
func New(opts ...Option) *Soap {
	s := &Soap{
		table:             builtinTable(),
		customReplacement: DefaultCustomReplacement,
		log:               logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("soap"))
	return s
}

var defaultSoap = sync.OnceValue(func() *Soap { return New() })

// Default returns the process-wide instance used by the package-level functions.
func Default() *Soap {
	return defaultSoap()
}

// Sanitize is Default().Sanitize.
func Sanitize(text string) string { return Default().Sanitize(text) }

// Suggest is Default().Suggest.
func Suggest(text string) string { return Default().Suggest(text) }

// DetectTone is Default().DetectTone.
func DetectTone(text string) Tone { return Default().DetectTone(text) }

// AddCustomFilter is Default().AddCustomFilter.
func AddCustomFilter(phrase string) error { return Default().AddCustomFilter(phrase) }

// AddCustomFilter registers phrase so that matching tokens are replaced with the
// custom replacement token. Registering the same phrase twice is not an error.
func (s *Soap) AddCustomFilter(phrase string) error {
	key, err := normalizeTrigger(phrase)
	if err != nil {
		return err
	}
	if err := checkReplacement(key, s.customReplacement); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.setLocked(key, Entry{Replacement: s.customReplacement, Kind: KindCustom})
	return nil
}

// AddReplacement maps trigger to replacement. Custom entries shadow built-ins.
func (s *Soap) AddReplacement(trigger, replacement string) error {
	key, err := normalizeTrigger(trigger)
	if err != nil {
		return err
	}
	if strings.TrimSpace(replacement) == "" {
		return fmt.Errorf("%w: empty replacement for %q", ErrInvalidArgument, trigger)
	}
	if err := checkReplacement(key, replacement); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.setLocked(key, Entry{Replacement: replacement, Kind: KindCustom})
	return nil
}

// AddOffensive registers word to be masked with asterisks.
func (s *Soap) AddOffensive(word string) error {
	key, err := normalizeTrigger(word)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.setLocked(key, Entry{Kind: KindOffensive})
	return nil
}

// Lookup returns the table entry a single token would match.
func (s *Soap) Lookup(token string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, _, _, e, ok := s.matchTokenLocked(token)
	return e, ok
}

// Reset drops every runtime entry and restores the built-in table.
func (s *Soap) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = builtinTable()
	s.phrases = nil
	s.memo.clear()
	s.log.Debug("replacement table reset")
}

// Len returns the number of table entries.
func (s *Soap) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.table)
}

// Must be called with the write lock held.
func (s *Soap) setLocked(key string, e Entry) {
	s.table[key] = e
	if strings.Contains(key, " ") {
		s.phrases = collectPhrases(s.table)
	}
	s.memo.clear()
	s.log.Debug("replacement registered", logger.Phrase(key), slog.String("kind", e.Kind.String()))
}

// Must be called with the read lock held.
func (s *Soap) lookupLocked(core string) (Entry, bool) {
	for _, key := range lookupKeys(core) {
		if e, ok := s.table[key]; ok {
			return e, true
		}
	}
	return Entry{}, false
}

func normalizeTrigger(phrase string) (string, error) {
	key := strings.Join(strings.Fields(strings.ToLower(phrase)), " ")
	if key == "" {
		return "", fmt.Errorf("%w: empty phrase", ErrInvalidArgument)
	}
	return key, nil
}

// checkReplacement rejects a replacement that contains its own trigger, since
// sanitizing the output again would rewrite it a second time.
func checkReplacement(key, replacement string) error {
	if indexWords(wordsOf(replacement), strings.Split(key, " ")) >= 0 {
		return fmt.Errorf("%w: replacement %q contains trigger %q", ErrInvalidArgument, replacement, key)
	}
	return nil
}
