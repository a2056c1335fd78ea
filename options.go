package stockpile

import (
	"github.com/TheBitDrifter/mask"
	"github.com/rs/zerolog"
)

// Option configures a Registry at construction.
type Option func(*Registry)

// WithLogger sets the logger used for debug events (entity lifecycle, store
// creation, queue flushes, schedule runs). Logging is disabled by default.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Registry) {
		r.log = log
	}
}

// WithCapacity pre-sizes entity bookkeeping for roughly n live entities.
func WithCapacity(n int) Option {
	return func(r *Registry) {
		if n <= 0 {
			return
		}
		r.masks = make([]mask.Mask, 0, n)
		r.alive = make([]bool, 0, n)
		r.free = make([]EntityID, 0, n)
	}
}
