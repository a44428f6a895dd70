package logger

import (
	"log/slog"
	"strconv"
)

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Path records a file path under the key "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Bytes records a byte count under the key "bytes".
func Bytes(n int) slog.Attr {
	return slog.Int("bytes", n)
}

// Offset records a read cursor position under the key "offset".
func Offset(n int) slog.Attr {
	return slog.Int("offset", n)
}

// Capacity records a buffer capacity under the key "capacity".
func Capacity(n int) slog.Attr {
	return slog.Int("capacity", n)
}

// Tone records a tone label under the key "tone".
func Tone(label string) slog.Attr {
	return slog.String("tone", label)
}

// Category records a content category under the key "category".
func Category(name string) slog.Attr {
	return slog.String("category", name)
}

// Phrase records a filter phrase or trigger under the key "phrase".
func Phrase(p string) slog.Attr {
	return slog.String("phrase", p)
}
