// SPDX-License-Identifier: MIT

package subalgebra

import "github.com/go-logr/logr"

// Option configures a Registry.
type Option func(*options)

type options struct {
	log logr.Logger
}

func defaultOptions() options {
	return options{log: logr.Discard()}
}

// WithLogger routes closure progress (V(1)) and cache events (V(2)) to l.
func WithLogger(l logr.Logger) Option {
	return func(o *options) { o.log = l }
}
