package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func setEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("SOAP_CUSTOM_FILTERS", "unicorn")
	t.Setenv("SERIALIZE_INITIAL_CAPACITY", "8")
	t.Setenv("SERIALIZE_COMPRESSION", "zstd")
}

func TestRun_Sanitize(t *testing.T) {
	setEnv(t)

	code, out, _ := runCLI(t, "Th1s 1s 4 l33tspeak s3nt3nc3.\nA unicorn with rizz\n", "sanitize")
	assert.Equal(t, 0, code)
	assert.Equal(t, "This is a leetspeak sentence.\nA [filtered] with charisma\n", out)

	code, suggested, _ := runCLI(t, "Th1s 1s 4 l33tspeak s3nt3nc3.\nA unicorn with rizz\n", "suggest")
	assert.Equal(t, 0, code)
	assert.Equal(t, out, suggested)
}

func TestRun_TextCommands(t *testing.T) {
	setEnv(t)

	tests := []struct {
		name  string
		args  []string
		input string
		want  string
	}{
		{"tone", []string{"tone"}, "Dear Sir or Madam,", "formal\n"},
		{"detect all", []string{"detect"}, "Top 10 amazing secrets revealed!", "clickbait\n"},
		{"detect one", []string{"detect", "spam"}, "Earn cash fast with this exclusive deal!", "true\n"},
		{"grammar", []string{"grammar"}, "I should of went.", "I should have went."},
		{"filter", []string{"filter", "lo*er"}, "a loser and a lover", "a ***** and a *****"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, _ := runCLI(t, tt.input, tt.args...)
			assert.Equal(t, 0, code)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRun_PackUnpack(t *testing.T) {
	setEnv(t)

	path := filepath.Join(t.TempDir(), "lines.snap")
	input := "first line\n\nthird line with more text\n"

	code, _, stderr := runCLI(t, input, "pack", path)
	require.Equal(t, 0, code, stderr)

	code, out, stderr := runCLI(t, "", "unpack", path)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, input, out)
}

func TestRun_MissingClassifier(t *testing.T) {
	setEnv(t)
	t.Setenv("SOAP_CLASSIFIER", filepath.Join(t.TempDir(), "tone.gob"))

	code, out, stderr := runCLI(t, "Dear Sir or Madam,", "tone")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "formal\n", out)
}

func TestRun_Errors(t *testing.T) {
	setEnv(t)

	code, _, stderr := runCLI(t, "")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "usage:")

	code, _, _ = runCLI(t, "", "help")
	assert.Equal(t, 0, code)

	code, _, stderr = runCLI(t, "", "bogus")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "unknown command")

	code, _, _ = runCLI(t, "", "detect", "nonsense")
	assert.Equal(t, 2, code)

	code, _, _ = runCLI(t, "", "pack")
	assert.Equal(t, 2, code)

	code, _, _ = runCLI(t, "", "unpack", filepath.Join(t.TempDir(), "missing.snap"))
	assert.Equal(t, 1, code)
}

func TestRun_InvalidConfig(t *testing.T) {
	setEnv(t)
	t.Setenv("SERIALIZE_COMPRESSION", "brotli")

	code, _, stderr := runCLI(t, "text", "sanitize")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "SERIALIZE_COMPRESSION")
}
