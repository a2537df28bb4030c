package form

import (
	"log/slog"
	"time"
)

// Option configures a Form.
type Option func(*Form)

// WithClock sets the reference time source for date rules.
// A nil clock is ignored.
func WithClock(now func() time.Time) Option {
	return func(f *Form) {
		if now != nil {
			f.now = now
		}
	}
}

// WithLogger sets the logger that receives validation debug records.
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.logger = l
		}
	}
}
