package soap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/soapkit/pkg/soap"
)

func TestDetectTone(t *testing.T) {
	t.Parallel()

	s := soap.New()

	tests := []struct {
		in   string
		want soap.Tone
	}{
		{"Oh, great. Another meeting.", soap.ToneSarcastic},
		{"Oh, great. Just what I needed.", soap.ToneSarcastic},
		{"Yeah right, like that will ever happen.", soap.ToneSarcastic},
		{"Oh perfect, another outage!", soap.ToneSarcastic},
		{"Dear Sir or Madam,", soap.ToneFormal},
		{"Dear Sir or Madam, I am writing to request information.", soap.ToneFormal},
		{"Kind regards, the team", soap.ToneFormal},
		{"Hey, what's up?", soap.ToneCasual},
		{"yo, gonna grab food", soap.ToneCasual},
		{"Hi there?", soap.ToneCasual},
		{"The report is attached.", soap.ToneNeutral},
		{"This is outrageous and infuriating!", soap.ToneNeutral},
		{"", soap.ToneNeutral},
		{"   ", soap.ToneNeutral},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, s.DetectTone(tt.in))
		})
	}
}

func TestDetectTone_Priority(t *testing.T) {
	t.Parallel()

	s := soap.New()
	assert.Equal(t, soap.ToneSarcastic, s.DetectTone("Dear Sir, thanks a lot for nothing."), "sarcastic wins over formal")
	assert.Equal(t, soap.ToneFormal, s.DetectTone("Hey, to whom it may concern"), "formal wins over casual")
}

func TestDetectTone_WordBoundaries(t *testing.T) {
	t.Parallel()

	s := soap.New()
	assert.Equal(t, soap.ToneNeutral, s.DetectTone("They stayed at the hiking lodge."), "hi inside a word is not an opener")
	assert.Equal(t, soap.ToneNeutral, s.DetectTone("Brothers arrived."), "bro inside a word does not match")
}

func TestDetectTone_ClassifierFallback(t *testing.T) {
	t.Parallel()

	c, err := soap.NewClassifier("ragebait", soap.ToneNeutral)
	require.NoError(t, err)
	require.NoError(t, c.Learn("this is outrageous and infuriating", "ragebait"))
	require.NoError(t, c.Learn("absolutely disgusting behaviour, unacceptable", "ragebait"))
	require.NoError(t, c.Learn("the meeting is scheduled for monday", soap.ToneNeutral))
	require.NoError(t, c.Learn("please review the attached document", soap.ToneNeutral))

	s := soap.New(soap.WithClassifier(c))
	assert.Equal(t, soap.Tone("ragebait"), s.DetectTone("This is outrageous and infuriating!"))
	assert.Equal(t, soap.ToneCasual, s.DetectTone("Hey, what's up?"), "signals run before the classifier")
}

func TestDetectTone_UntrainedClassifier(t *testing.T) {
	t.Parallel()

	c, err := soap.NewClassifier("a", "b")
	require.NoError(t, err)

	s := soap.New(soap.WithClassifier(c))
	assert.Equal(t, soap.ToneNeutral, s.DetectTone("nothing to see"))
}
