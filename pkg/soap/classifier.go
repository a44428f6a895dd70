package soap

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jbrukh/bayesian"
)

// Classifier is a naive Bayes tone classifier trained on labelled samples.
// It is used by DetectTone when no signal phrase matches.
type Classifier struct {
	mu      sync.RWMutex
	c       *bayesian.Classifier
	classes []bayesian.Class
	learned int
}

// NewClassifier creates a classifier for the given labels. At least two
// distinct labels are required.
func NewClassifier(labels ...Tone) (*Classifier, error) {
	if len(labels) < 2 {
		return nil, fmt.Errorf("%w: need at least two labels, got %d", ErrInvalidArgument, len(labels))
	}

	classes := make([]bayesian.Class, 0, len(labels))
	seen := make(map[Tone]struct{}, len(labels))
	for _, l := range labels {
		if l == "" {
			return nil, fmt.Errorf("%w: empty label", ErrInvalidArgument)
		}
		if _, dup := seen[l]; dup {
			return nil, fmt.Errorf("%w: duplicate label %q", ErrInvalidArgument, l)
		}
		seen[l] = struct{}{}
		classes = append(classes, bayesian.Class(l))
	}

	return &Classifier{
		c:       bayesian.NewClassifier(classes...),
		classes: classes,
	}, nil
}

// LoadClassifier restores a classifier written by Save.
func LoadClassifier(path string) (*Classifier, error) {
	c, err := bayesian.NewClassifierFromFile(path)
	if err != nil {
		return nil, errors.Join(ErrIO, fmt.Errorf("unable to load classifier %s: %w", path, err))
	}
	return &Classifier{
		c:       c,
		classes: c.Classes,
		learned: c.Learned(),
	}, nil
}

// Labels returns the labels the classifier can assign.
func (c *Classifier) Labels() []Tone {
	out := make([]Tone, len(c.classes))
	for i, cl := range c.classes {
		out[i] = Tone(cl)
	}
	return out
}

// Learn trains the classifier with a sample labelled label.
func (c *Classifier) Learn(text string, label Tone) error {
	if !c.hasClass(label) {
		return fmt.Errorf("%w: unknown label %q", ErrInvalidArgument, label)
	}
	words := wordsOf(text)
	if len(words) == 0 {
		return fmt.Errorf("%w: sample has no words", ErrInvalidArgument)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.c.Learn(words, bayesian.Class(label))
	c.learned++
	return nil
}

// Classify returns the most likely label for text. When no label scores
// strictly higher than the others, it returns ToneNeutral.
func (c *Classifier) Classify(text string) (Tone, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.learned == 0 {
		return "", ErrClassifierNotTrained
	}
	words := wordsOf(text)
	if len(words) == 0 {
		return ToneNeutral, nil
	}

	_, inx, strict := c.c.LogScores(words)
	if !strict {
		return ToneNeutral, nil
	}
	return Tone(c.classes[inx]), nil
}

// Save writes the trained model to path.
func (c *Classifier) Save(path string) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := c.c.WriteToFile(path); err != nil {
		return errors.Join(ErrIO, fmt.Errorf("unable to save classifier to %s: %w", path, err))
	}
	return nil
}

func (c *Classifier) hasClass(label Tone) bool {
	for _, cl := range c.classes {
		if cl == bayesian.Class(label) {
			return true
		}
	}
	return false
}
