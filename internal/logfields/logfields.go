package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyCategory   = "category"
	KeyCommand    = "command"
	KeyCount      = "count"
	KeyPath       = "path"
	KeyFile       = "file"
	KeyRoot       = "root"
	KeyOutput     = "output"
	KeyConfig     = "config"
	KeyVersion    = "version"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Category(c string) slog.Attr     { return slog.String(KeyCategory, c) }
func Command(c string) slog.Attr      { return slog.String(KeyCommand, c) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Root(r string) slog.Attr         { return slog.String(KeyRoot, r) }
func Output(o string) slog.Attr       { return slog.String(KeyOutput, o) }
func Config(p string) slog.Attr       { return slog.String(KeyConfig, p) }
func Version(v string) slog.Attr      { return slog.String(KeyVersion, v) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
