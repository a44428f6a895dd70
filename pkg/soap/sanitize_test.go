package soap_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/soapkit/pkg/soap"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	s := soap.New()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"title case compound", "This Is A Rot-Brain Sentence.", "This Is A stupid Sentence."},
		{"leetspeak", "Th1s 1s 4 l33tspeak s3nt3nc3.", "This is a leetspeak sentence."},
		{"slang", "He has rizz and skibidi.", "He has charisma and dance."},
		{"lowercase compound", "You are a rot-brain.", "You are a stupid."},
		{"capitalized", "Rizz is overrated", "Charisma is overrated"},
		{"all caps", "SUS behaviour", "SUSPICIOUS behaviour"},
		{"all caps compound", "ROT-BRAIN!", "STUPID!"},
		{"multi-word replacement", "yolo!", "you only live once!"},
		{"offensive masked", "What the fuck, man", "What the ****, man"},
		{"offensive leet masked", "you are a b1tch", "you are a *****"},
		{"offensive trailing symbols", "a$$ and sh!t", "*** and sh!t"},
		{"punctuation kept", "(rizz), \"sus\"...", "(charisma), \"suspicious\"..."},
		{"separators preserved", "rizz\t\tand\n  sus ", "charisma\t\tand\n  suspicious "},
		{"no substring replacement", "susceptible rizzing assistant", "susceptible rizzing assistant"},
		{"numbers untouched", "Call 555-0100 in 2024 for $100", "Call 555-0100 in 2024 for $100"},
		{"identifiers untouched", "covid19 and h264 with v1.2, mp3 S3 4K 3D F1 g8", "covid19 and h264 with v1.2, mp3 S3 4K 3D F1 g8"},
		{"identifier in sentence", "Download the MP3 file to the AWS S3 bucket", "Download the MP3 file to the AWS S3 bucket"},
		{"edge leet common words", "n0 way, th3 end 1s near", "no way, the end is near"},
		{"leading leet symbol masked", "$hit happens", "**** happens"},
		{"leading at sign masked", "you @ss.", "you ***."},
		{"leet with apostrophe", "th4t's s0 sus", "that's so suspicious"},
		{"all caps leet", "L33T", "LEET"},
		{"mention untouched", "@john", "@john"},
		{"clean text", "The quick brown fox.", "The quick brown fox."},
		{"non-ascii", "café naïve", "café naïve"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, s.Sanitize(tt.in))
		})
	}
}

func TestSanitize_PassThrough(t *testing.T) {
	t.Parallel()

	s := soap.New()
	for _, in := range []string{"", " ", "\t\n  \r\n", "!!! ??? ...", "--- *** ###", "\x00\xff\xfe garbage \x01"} {
		assert.Equal(t, in, s.Sanitize(in), "input %q", in)
	}
}

func TestSuggestMatchesSanitize(t *testing.T) {
	t.Parallel()

	s := soap.New()
	for _, in := range []string{
		"This Is A Rot-Brain Sentence.",
		"Th1s 1s 4 l33tspeak s3nt3nc3.",
		"What the fuck, bruh",
		"",
	} {
		assert.Equal(t, s.Sanitize(in), s.Suggest(in))
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	t.Parallel()

	s := soap.New()
	require.NoError(t, s.AddCustomFilter("unicorn"))

	for _, in := range []string{
		"This Is A Rot-Brain Sentence.",
		"Th1s 1s 4 l33tspeak s3nt3nc3.",
		"YOLO bruh, that's SUS and a$$!",
		"A Unicorn, lowkey gyatt.",
		"plain text with nothing to do",
	} {
		once := s.Sanitize(in)
		assert.Equal(t, once, s.Sanitize(once), "input %q", in)
	}
}

func TestAddCustomFilter(t *testing.T) {
	t.Parallel()

	t.Run("replaces standalone token", func(t *testing.T) {
		t.Parallel()

		s := soap.New()
		assert.Equal(t, "a custom word", s.Sanitize("a custom word"))

		require.NoError(t, s.AddCustomFilter("custom"))
		got := s.Sanitize("a custom word")
		assert.NotEqual(t, "a custom word", got)
		assert.Equal(t, "a [filtered] word", got)
		assert.Equal(t, "customer", s.Sanitize("customer"))
	})

	t.Run("case insensitive and trimmed", func(t *testing.T) {
		t.Parallel()

		s := soap.New()
		require.NoError(t, s.AddCustomFilter("  UniCorn "))
		assert.Equal(t, "A [filtered]!", s.Sanitize("A Unicorn!"))
	})

	t.Run("idempotent registration", func(t *testing.T) {
		t.Parallel()

		s := soap.New()
		before := s.Len()
		require.NoError(t, s.AddCustomFilter("unicorn"))
		require.NoError(t, s.AddCustomFilter("unicorn"))
		assert.Equal(t, before+1, s.Len())
	})

	t.Run("empty phrase", func(t *testing.T) {
		t.Parallel()

		s := soap.New()
		assert.ErrorIs(t, s.AddCustomFilter(""), soap.ErrInvalidArgument)
		assert.ErrorIs(t, s.AddCustomFilter("   "), soap.ErrInvalidArgument)
	})

	t.Run("multi-word phrase", func(t *testing.T) {
		t.Parallel()

		s := soap.New()
		require.NoError(t, s.AddCustomFilter("rainbow  road"))
		assert.Equal(t, "Take [filtered], then rainbow.", s.Sanitize("Take rainbow road, then rainbow."))
		assert.Equal(t, "rainbow, road", s.Sanitize("rainbow, road"))
	})

	t.Run("custom replacement token", func(t *testing.T) {
		t.Parallel()

		s := soap.New(soap.WithCustomReplacement("<redacted>"))
		require.NoError(t, s.AddCustomFilter("secret"))
		assert.Equal(t, "the <redacted> plan", s.Sanitize("the secret plan"))
	})

	t.Run("replacement word rejected", func(t *testing.T) {
		t.Parallel()

		s := soap.New()
		before := s.Len()
		assert.ErrorIs(t, s.AddCustomFilter("filtered"), soap.ErrInvalidArgument)
		assert.ErrorIs(t, s.AddCustomFilter("FILTERED"), soap.ErrInvalidArgument)
		assert.Equal(t, before, s.Len())

		require.NoError(t, s.AddCustomFilter("unicorn"))
		once := s.Sanitize("a unicorn")
		assert.Equal(t, "a [filtered]", once)
		assert.Equal(t, once, s.Sanitize(once))

		r := soap.New(soap.WithCustomReplacement("<redacted>"))
		assert.ErrorIs(t, r.AddCustomFilter("redacted"), soap.ErrInvalidArgument)
	})

	t.Run("instances are isolated", func(t *testing.T) {
		t.Parallel()

		a, b := soap.New(), soap.New()
		require.NoError(t, a.AddCustomFilter("zebra"))
		assert.Equal(t, "[filtered]", a.Sanitize("zebra"))
		assert.Equal(t, "zebra", b.Sanitize("zebra"))
	})
}

func TestAddReplacement(t *testing.T) {
	t.Parallel()

	s := soap.New()
	require.NoError(t, s.AddReplacement("kewl", "cool"))
	assert.Equal(t, "Cool job", s.Sanitize("Kewl job"))

	require.NoError(t, s.AddReplacement("rizz", "charm"))
	assert.Equal(t, "charm", s.Sanitize("rizz"), "custom entries shadow built-ins")

	assert.ErrorIs(t, s.AddReplacement("", "x"), soap.ErrInvalidArgument)
	assert.ErrorIs(t, s.AddReplacement("x", " "), soap.ErrInvalidArgument)
	assert.ErrorIs(t, s.AddReplacement("cool", "very cool"), soap.ErrInvalidArgument)

	s.Reset()
	assert.Equal(t, "charisma", s.Sanitize("rizz"), "reset restores built-ins")
	assert.Equal(t, "kewl", s.Sanitize("kewl"), "reset drops custom entries")
}

func TestAddOffensive(t *testing.T) {
	t.Parallel()

	s := soap.New()
	require.NoError(t, s.AddOffensive("frick"))
	assert.Equal(t, "oh *****!", s.Sanitize("oh frick!"))
	assert.True(t, s.IsOffensive("FRICK"))
}

func TestLookup(t *testing.T) {
	t.Parallel()

	s := soap.New()

	e, ok := s.Lookup("Rizz!")
	require.True(t, ok)
	assert.Equal(t, soap.KindRotbrain, e.Kind)
	assert.Equal(t, "charisma", e.Replacement)

	e, ok = s.Lookup("5h1t")
	require.True(t, ok)
	assert.Equal(t, soap.KindOffensive, e.Kind)

	e, ok = s.Lookup("$hit")
	require.True(t, ok)
	assert.Equal(t, soap.KindOffensive, e.Kind)

	_, ok = s.Lookup("$100")
	assert.False(t, ok)

	_, ok = s.Lookup("...")
	assert.False(t, ok)
}

func TestCounts(t *testing.T) {
	t.Parallel()

	s := soap.New()
	text := "This shit is so sus, bruh. Total rizz!"

	assert.Equal(t, 1, s.CountOffensive(text))
	assert.Equal(t, 3, s.CountRotbrain(text))
	assert.Equal(t, 4, s.CountPositive(text))

	assert.True(t, s.IsOffensive("shit"))
	assert.False(t, s.IsOffensive("rizz"))
	assert.True(t, s.IsRotbrain("Skibidi"))
	assert.False(t, s.IsRotbrain("hello"))

	assert.Zero(t, s.CountOffensive(""))
}

func TestSanitize_ConcurrentRegistration(t *testing.T) {
	t.Parallel()

	s := soap.New(soap.WithCacheSize(16))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		i := i
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.AddCustomFilter(fmt.Sprintf("word%d", i))
		}()
		go func() {
			defer wg.Done()
			_ = s.Sanitize("rizz and sus")
		}()
	}
	wg.Wait()

	for i := 0; i < 8; i++ {
		assert.Equal(t, "[filtered]", s.Sanitize(fmt.Sprintf("word%d", i)))
	}
}

func TestDefault(t *testing.T) {
	assert.Same(t, soap.Default(), soap.Default())
	assert.Equal(t, "This is a leetspeak sentence.", soap.Suggest("Th1s 1s 4 l33tspeak s3nt3nc3."))
	assert.Equal(t, soap.Sanitize("rizz"), soap.Default().Sanitize("rizz"))
	assert.Equal(t, soap.ToneCasual, soap.DetectTone("Hey, what's up?"))
	assert.ErrorIs(t, soap.AddCustomFilter(""), soap.ErrInvalidArgument)
}

func BenchmarkSanitize(b *testing.B) {
	s := soap.New()
	text := strings.Repeat("Th1s 1s s0 sus, bruh! A rot-brain take on rizz. ", 20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Sanitize(text)
	}
}

func BenchmarkSanitize_Cached(b *testing.B) {
	s := soap.New(soap.WithCacheSize(8))
	text := strings.Repeat("Th1s 1s s0 sus, bruh! A rot-brain take on rizz. ", 20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Sanitize(text)
	}
}
