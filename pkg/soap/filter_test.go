package soap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/soapkit/pkg/soap"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		patterns string
		text     string
		want     string
	}{
		{"basic", "idiot,loser", "You are an idiot and a loser.", "You are an ***** and a *****."},
		{"wildcard", "lo*er", "You are a loser and a lover.", "You are a ***** and a *****."},
		{"case insensitive", "IdIoT", "You are an idiot.", "You are an *****."},
		{"whole words only", "cat", "concatenate the cat", "concatenate the ***"},
		{"prefix wildcard", "*ing", "running and jumping in spring", "******* and ******* in ******"},
		{"spaces around patterns", " idiot , , loser ", "idiot loser", "***** *****"},
		{"regexp metacharacters are literal", "a.c", "abc a.c", "abc a.c"},
		{"no patterns", "", "anything goes", "anything goes"},
		{"empty text", "idiot", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, soap.Filter(tt.patterns, tt.text))
		})
	}
}
