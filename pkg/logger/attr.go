package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups non-nil errors under "errors", or returns an empty Attr.
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

// Error records err under "error", or returns an empty Attr for nil.
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

// Field records the form field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Kind records the input kind (address, email, ...) under the key "kind".
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// Signatures records matched malicious-content signatures.
// An empty list yields an empty Attr.
func Signatures(names ...string) slog.Attr {
	if len(names) == 0 {
		return slog.Attr{}
	}
	return slog.Any("signatures", names)
}

// InputLength records the rune length of an input. The value itself is
// never logged.
func InputLength(n int) slog.Attr {
	return slog.Int("input_length", n)
}
