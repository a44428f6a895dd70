package soap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/soapkit/pkg/file"
	"github.com/dmitrymomot/soapkit/pkg/logger"
)

// Dictionary extends a replacement table.
//
//	replacements:
//	  gyatt: wow
//	filters:
//	  - unicorn
//	offensive:
//	  - frick
type Dictionary struct {
	// Replacements maps a trigger to its replacement text.
	Replacements map[string]string `json:"replacements" yaml:"replacements"`
	// Filters are replaced with the custom replacement token.
	Filters []string `json:"filters" yaml:"filters"`
	// Offensive words are masked with asterisks.
	Offensive []string `json:"offensive" yaml:"offensive"`
}

// Len returns the number of entries in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.Replacements) + len(d.Filters) + len(d.Offensive)
}

// LoadDictionary reads a JSON, YAML or HJSON dictionary from disk and applies it.
func (s *Soap) LoadDictionary(ctx context.Context, path string) error {
	return s.LoadDictionaryFrom(ctx, file.Disk{}, path)
}

// LoadDictionaryFrom reads a dictionary from storage and applies it.
// The format is chosen by file extension.
func (s *Soap) LoadDictionaryFrom(ctx context.Context, storage file.Storage, path string) error {
	parser := NewParserForFile(path)
	if parser == nil {
		return fmt.Errorf("%w: %s", ErrUnsupportedDictionary, path)
	}

	content, err := storage.Read(ctx, path)
	if err != nil {
		return errors.Join(ErrIO, err)
	}

	d, err := parser.Parse(ctx, content)
	if err != nil {
		return err
	}

	if err := s.ApplyDictionary(d); err != nil {
		return fmt.Errorf("dictionary %s: %w", path, err)
	}

	s.log.InfoContext(ctx, "dictionary loaded", logger.Path(path), logger.Bytes(len(content)), slog.Int("entries", d.Len()))
	return nil
}

// ApplyDictionary registers every entry of d. Either all entries are applied
// or none are.
func (s *Soap) ApplyDictionary(d *Dictionary) error {
	if d == nil {
		return fmt.Errorf("%w: nil dictionary", ErrInvalidArgument)
	}

	var errs []error
	entries := make(map[string]Entry, d.Len())
	for trigger, replacement := range d.Replacements {
		key, err := normalizeTrigger(trigger)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if strings.TrimSpace(replacement) == "" {
			errs = append(errs, fmt.Errorf("%w: empty replacement for %q", ErrInvalidArgument, trigger))
			continue
		}
		if err := checkReplacement(key, replacement); err != nil {
			errs = append(errs, err)
			continue
		}
		entries[key] = Entry{Replacement: replacement, Kind: KindCustom}
	}
	for _, w := range d.Offensive {
		key, err := normalizeTrigger(w)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		entries[key] = Entry{Kind: KindOffensive}
	}
	filters := make([]string, 0, len(d.Filters))
	for _, f := range d.Filters {
		key, err := normalizeTrigger(f)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := checkReplacement(key, s.customReplacement); err != nil {
			errs = append(errs, err)
			continue
		}
		filters = append(filters, key)
	}
	if len(errs) > 0 {
		s.log.Warn("dictionary rejected", logger.Errors(errs...))
		return errors.Join(errs...)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range filters {
		entries[key] = Entry{Replacement: s.customReplacement, Kind: KindCustom}
	}
	for key, e := range entries {
		s.setLocked(key, e)
	}
	return nil
}
