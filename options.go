package scrollback

import "github.com/hashicorp/go-hclog"

// Option configures a Buffer.
type Option func(*Buffer)

// WithLogger sets the logger used for trace output. A nil logger is ignored.
func WithLogger(logger hclog.Logger) Option {
	return func(b *Buffer) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithWidthFunc sets the double-width classifier. A nil function is ignored.
func WithWidthFunc(fn WidthFunc) Option {
	return func(b *Buffer) {
		if fn != nil {
			b.isWide = fn
		}
	}
}

// WithScrollback sets the provider that receives lines discarded by TrimBacklog.
func WithScrollback(p ScrollbackProvider) Option {
	return func(b *Buffer) {
		if p != nil {
			b.scrollback = p
		}
	}
}

// WithLineCapacity sets how many cells are preallocated for each new line.
func WithLineCapacity(n int) Option {
	return func(b *Buffer) {
		if n > 0 {
			b.lineCapacity = n
		}
	}
}
