// Package logger wires log/slog for the collection packages. Operations that
// take a context log through Get(ctx); everything else is silent.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
)

// configMutex protects concurrent calls to ConfigureLoggingWithOptions,
// which modifies global state (slog.SetDefault).
var configMutex sync.Mutex //nolint:gochecknoglobals

type contextKey string

const (
	muteKey   contextKey = "mute"
	loggerKey contextKey = "logger"
	valuesKey contextKey = "loggerValues"
)

// Options is used to configure logging.
type Options struct {
	Subsystem string
	JSON      bool
	MinLevel  slog.Level
	Output    io.Writer
}

// Option is a functional option applied on top of the default Options.
type Option func(*Options)

// WithJSON switches the handler to JSON output.
func WithJSON() Option {
	return func(o *Options) {
		o.JSON = true
	}
}

// WithMinLevel sets the minimum level that is emitted.
func WithMinLevel(level slog.Level) Option {
	return func(o *Options) {
		o.MinLevel = level
	}
}

// WithOutput sets the destination writer.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Output = w
	}
}

// ConfigureLogging configures the process-wide default logger for the named
// subsystem. Text output at info level on stdout unless options say otherwise.
func ConfigureLogging(subsystem string, opts ...Option) *slog.Logger {
	options := Options{
		Subsystem: subsystem,
		MinLevel:  slog.LevelInfo,
		Output:    os.Stdout,
	}

	for _, o := range opts {
		o(&options)
	}

	return ConfigureLoggingWithOptions(options)
}

// ConfigureLoggingWithOptions builds a handler from opts, installs it as the
// slog default and returns the resulting logger.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	logger := New(opts)

	slog.SetDefault(logger)

	return logger
}

// New builds a logger from opts without touching global state.
func New(opts Options) *slog.Logger {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.MinLevel}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(opts.Output, handlerOpts)
	}

	logger := slog.New(&slogErrorLogger{inner: handler})

	if opts.Subsystem != "" {
		logger = logger.With("subsystem", opts.Subsystem)
	}

	return logger
}

// WithMuted marks the context so that Get returns a logger that discards
// everything.
func WithMuted(ctx context.Context, muted bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, muteKey, muted)
}

func isMuted(ctx context.Context) bool {
	muted, ok := ctx.Value(muteKey).(bool)

	return ok && muted
}

// WithLogger scopes a logger to the context; Get prefers it over the default.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, loggerKey, logger)
}

// With returns a new context with the given key/value pairs, which Get adds
// to every logger it returns.
func With(ctx context.Context, values ...any) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	if len(values) == 0 {
		return ctx
	}

	existing := getValues(ctx)
	vals := make([]any, 0, len(existing)+len(values))
	vals = append(vals, existing...)
	vals = append(vals, values...)

	return context.WithValue(ctx, valuesKey, vals)
}

func getValues(ctx context.Context) []any {
	vals, _ := ctx.Value(valuesKey).([]any)

	return vals
}

// nullHandler discards all output; it backs muted contexts.
type nullHandler struct{}

func (n *nullHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return false
}

func (n *nullHandler) Handle(_ context.Context, _ slog.Record) error {
	return nil
}

func (n *nullHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return n
}

func (n *nullHandler) WithGroup(_ string) slog.Handler {
	return n
}

var nullLogger = slog.New(&nullHandler{}) //nolint:gochecknoglobals

// Get returns the logger for ctx: the muted logger, the context-scoped logger,
// or slog.Default(), in that order, with any With values attached.
func Get(ctx context.Context) *slog.Logger {
	if ctx == nil {
		ctx = context.Background()
	}

	if isMuted(ctx) {
		return nullLogger
	}

	logger, ok := ctx.Value(loggerKey).(*slog.Logger)
	if !ok || logger == nil {
		logger = slog.Default()
	}

	if vals := getValues(ctx); len(vals) > 0 {
		logger = logger.With(vals...)
	}

	return logger
}
