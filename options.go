package jsonrecover

import (
	"log/slog"
	"time"
)

// Repairer rewrites malformed JSON text into text that should parse. It is
// only consulted after every built-in stage has failed.
type Repairer func(text string) (string, error)

// Outcome describes a single recovery call.
type Outcome struct {
	// Stage is the stage that produced the value, empty on failure.
	Stage Stage
	// Err is the returned error, nil on success.
	Err error
	// Duration is the wall time spent in the call.
	Duration time.Duration
	// InputBytes is the length of the raw input.
	InputBytes int
}

// Observer is notified once per recovery call.
type Observer interface {
	ObserveRecovery(Outcome)
}

// ObserverFunc adapts a function to [Observer].
type ObserverFunc func(Outcome)

// ObserveRecovery calls f(o).
func (f ObserverFunc) ObserveRecovery(o Outcome) {
	f(o)
}

type options struct {
	logger       *slog.Logger
	useNumber    bool
	maxInputSize int
	repair       Repairer
	observer     Observer
}

// Option configures a recovery call.
type Option = func(*options)

func newOptions(opts []Option) options {
	o := options{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger used for per-stage debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithUseNumber decodes numbers as json.Number instead of float64.
func WithUseNumber(useNumber bool) Option {
	return func(o *options) {
		o.useNumber = useNumber
	}
}

// WithMaxInputSize rejects inputs longer than n bytes with [ErrInvalidInput].
// Zero or a negative value disables the limit.
func WithMaxInputSize(n int) Option {
	return func(o *options) {
		o.maxInputSize = n
	}
}

// WithRepair enables a last stage that passes the cleaned text through
// repair and parses the result. Values produced this way are reported as
// [StageRepaired].
func WithRepair(repair Repairer) Option {
	return func(o *options) {
		o.repair = repair
	}
}

// WithObserver registers an observer notified once per call.
func WithObserver(observer Observer) Option {
	return func(o *options) {
		o.observer = observer
	}
}
