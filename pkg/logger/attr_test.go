package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/soapkit/pkg/logger"
)

func TestError(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logger.Error(nil))

	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())
}

func TestErrors(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logger.Errors(nil, nil))

	attr := logger.Errors(nil, errors.New("a"), errors.New("b"))
	assert.Equal(t, "errors", attr.Key)
	group := attr.Value.Group()
	assert.Len(t, group, 2)
	assert.Equal(t, "1", group[0].Key)
	assert.Equal(t, "2", group[1].Key)
}

func TestDomainAttrs(t *testing.T) {
	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want any
	}{
		{"component", logger.Component("serialize"), "component", "serialize"},
		{"path", logger.Path("/tmp/a.bin"), "path", "/tmp/a.bin"},
		{"bytes", logger.Bytes(42), "bytes", int64(42)},
		{"offset", logger.Offset(8), "offset", int64(8)},
		{"capacity", logger.Capacity(1024), "capacity", int64(1024)},
		{"tone", logger.Tone("formal"), "tone", "formal"},
		{"category", logger.Category("spam"), "category", "spam"},
		{"phrase", logger.Phrase("unicorn"), "phrase", "unicorn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.Any())
		})
	}
}
