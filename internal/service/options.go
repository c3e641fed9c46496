package service

import "time"

type options struct {
	now func() time.Time
}

// Option configures the entity services.
type Option func(*options)

// WithClock overrides time.Now, used for default dates.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
