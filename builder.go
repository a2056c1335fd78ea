package stockpile

import "github.com/rotisserie/eris"

// EntityBuilder accumulates components for an entity that does not exist
// yet. Nothing is visible to queries until Build, which allocates the
// identity and applies every attach in declared order; on any failure the
// half-built entity is torn down again, so callers never observe a partial
// one.
type EntityBuilder struct {
	reg     *Registry
	pending []func(*Registry, EntityID) error
}

// NewEntityBuilder starts a builder against the registry.
func NewEntityBuilder(r *Registry) *EntityBuilder {
	return &EntityBuilder{reg: r}
}

// With declares a component for the entity under construction. Free function
// rather than method: builders carry heterogeneously typed values, which Go
// methods cannot be parameterized over.
func With[T any](b *EntityBuilder, v T) *EntityBuilder {
	b.pending = append(b.pending, func(r *Registry, e EntityID) error {
		return Attach(r, e, v)
	})
	return b
}

// Build allocates the entity and attaches every declared component. Fails
// with ErrRegistryLocked while the registry is locked; use Enqueue instead.
func (b *EntityBuilder) Build() (EntityID, error) {
	e, err := b.reg.CreateEntity()
	if err != nil {
		return 0, err
	}
	for _, attach := range b.pending {
		if err := attach(b.reg, e); err != nil {
			// Roll the entity back so no partial state is observable.
			if rmErr := b.reg.RemoveEntity(e); rmErr != nil {
				return 0, eris.Wrap(rmErr, "failed to roll back partial entity")
			}
			return 0, err
		}
	}
	return e, nil
}

// Enqueue defers the whole build until Unlock when the registry is locked,
// and builds immediately otherwise. The deferred form cannot return the new
// identity; use Build when the caller needs it.
func (b *EntityBuilder) Enqueue() error {
	if !b.reg.Locked() {
		_, err := b.Build()
		return err
	}
	b.reg.queue.enqueueBuild(func(r *Registry) error {
		_, err := b.Build()
		return err
	})
	return nil
}
