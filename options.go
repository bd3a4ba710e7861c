package pixelforge

import "log/slog"

// ContextOption configures a Context during creation.
//
// Example:
//
//	ctx, err := pixelforge.ContextCreate(buf, 640, 480,
//		pixelforge.PixelFormatR8G8B8A8,
//		pixelforge.WithAuxBuffer(back))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for context creation.
type contextOptions struct {
	getter PixelGetter
	setter PixelSetter
	aux    []byte
	logger *slog.Logger
}

// WithPixelGetter installs a custom pixel decoder at creation. It
// takes precedence over the codec derived from the buffer format.
func WithPixelGetter(getter PixelGetter) ContextOption {
	return func(o *contextOptions) {
		o.getter = getter
	}
}

// WithPixelSetter installs a custom pixel encoder at creation.
func WithPixelSetter(setter PixelSetter) ContextOption {
	return func(o *contextOptions) {
		o.setter = setter
	}
}

// WithAuxBuffer installs an auxiliary color buffer for SwapBuffers at
// creation. It must match the primary buffer's size and format.
func WithAuxBuffer(pixels []byte) ContextOption {
	return func(o *contextOptions) {
		o.aux = pixels
	}
}

// WithLogger gives the context its own logger for lifecycle and
// resource diagnostics, overriding the package logger installed with
// SetLogger. Passing nil keeps the package logger.
func WithLogger(l *slog.Logger) ContextOption {
	return func(o *contextOptions) {
		o.logger = l
	}
}
