package stockpile

import (
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	iter_util "github.com/TheBitDrifter/util/iter"
)

// SystemFunc adapts a plain function to the System interface.
type SystemFunc struct {
	name string
	fn   func(*Registry) error
}

// NewSystemFunc wraps fn as a named System.
func NewSystemFunc(name string, fn func(*Registry) error) SystemFunc {
	return SystemFunc{name: name, fn: fn}
}

func (s SystemFunc) Name() string { return s.name }

func (s SystemFunc) Update(r *Registry) error { return s.fn(r) }

// Schedule runs systems sequentially against a registry. There is no
// parallel execution; each system completes before the next starts.
type Schedule struct {
	systems []System
}

func newSchedule(systems ...System) *Schedule {
	return &Schedule{systems: systems}
}

// Add appends systems to the end of the schedule.
func (s *Schedule) Add(systems ...System) {
	s.systems = append(s.systems, systems...)
}

// Run executes every system in order. The registry is locked for each
// system's Update, so structural changes made by systems must go through the
// Enqueue variants; they are flushed when the system returns. The first
// error aborts the run.
func (s *Schedule) Run(r *Registry) error {
	types := iter_util.Collect(r.ComponentTypes())
	arr := zerolog.Arr()
	for _, t := range types {
		arr = arr.Str(t.String())
	}
	r.log.Debug().
		Int("total_systems", len(s.systems)).
		Int("live_entities", r.Len()).
		Array("component_types", arr).
		Msg("schedule run starting")

	for _, sys := range s.systems {
		if err := s.runSystem(r, sys); err != nil {
			return eris.Wrapf(err, "system %s failed", sys.Name())
		}
		r.log.Debug().Str("system", sys.Name()).Msg("system completed")
	}
	return nil
}

// runSystem executes one system under lock. The unlock is deferred so a
// panicking system cannot leave the registry locked.
func (s *Schedule) runSystem(r *Registry, sys System) (err error) {
	r.Lock()
	defer func() {
		if flushErr := r.Unlock(); err == nil {
			err = flushErr
		}
	}()
	return sys.Update(r)
}
