package timingwheel

import "github.com/sirupsen/logrus"

// Logger is the leveled logging surface the wheel needs. *logrus.Logger
// satisfies it, as does any logger exposing printf-style levels.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type Option func(*TimingWheel)

func defaultOptions(tw *TimingWheel) {
	if tw.logger == nil {
		tw.logger = logrus.New()
	}
	if tw.onFault == nil {
		tw.onFault = func(err error) {
			tw.logger.Errorf("timingwheel: executor submit failed: %v", err)
		}
	}
	if tw.direct.onPanic == nil {
		tw.direct.onPanic = func(p any) {
			tw.logger.Errorf("timingwheel: callback panic: %v", p)
		}
	}
}

func WithLogger(logger Logger) Option {
	return func(tw *TimingWheel) {
		tw.logger = logger
	}
}

// WithPanicHandler sets the handler invoked when a callback run on the
// direct executor panics.
func WithPanicHandler(handler func(any)) Option {
	return func(tw *TimingWheel) {
		tw.direct.onPanic = handler
	}
}

// WithFaultHandler sets the hook invoked when an executor rejects a
// submission. The default logs at error level.
func WithFaultHandler(handler func(error)) Option {
	return func(tw *TimingWheel) {
		tw.onFault = handler
	}
}

// WithClock replaces the wheel's millisecond clock. The worker derives
// tick indices, expiries and sleep compensation from it. Intended for
// tests; the default is monotonic.
func WithClock(now func() int64) Option {
	return func(tw *TimingWheel) {
		tw.now = now
	}
}
