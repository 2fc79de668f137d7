package utils

import (
	"log/slog"
)

func Check(e error) {
	if e != nil {
		slog.Error("Unexpected Error", "error", e)
		panic(e)
	}
}

// Loge and friends log a non-nil error at the matching level. Extra args are
// appended as slog attributes.
func Loge(e error, args ...any) {
	if e != nil {
		slog.Error("", append([]any{"error", e}, args...)...)
	}
}

func Logwe(e error, args ...any) {
	if e != nil {
		slog.Warn("", append([]any{"error", e}, args...)...)
	}
}

func Logie(e error, args ...any) {
	if e != nil {
		slog.Info("", append([]any{"error", e}, args...)...)
	}
}

func Logde(e error, args ...any) {
	if e != nil {
		slog.Debug("", append([]any{"error", e}, args...)...)
	}
}
