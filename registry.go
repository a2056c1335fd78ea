package stockpile

import (
	"iter"
	"reflect"

	"github.com/TheBitDrifter/mask"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Registry owns every ComponentStore (one per component type, created on
// first attach), the set of live entity identities, and the free list used
// to recycle them. All operations are single-threaded; the registry performs
// no locking of its own beyond the iteration Lock/Unlock discipline.
type Registry struct {
	schema schema
	stores map[reflect.Type]storeView
	masks  []mask.Mask
	alive  []bool
	free   []EntityID
	next   EntityID
	count  int
	locked bool
	queue  opQueue
	log    zerolog.Logger
}

func newRegistry(opts ...Option) *Registry {
	r := &Registry{
		schema: newSchema(),
		stores: make(map[reflect.Type]storeView),
		queue:  newOpQueue(),
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CreateEntity allocates a live identity with no components attached.
// Identities freed by RemoveEntity are reused, most recently freed first;
// otherwise a fresh monotonically increasing one is minted.
func (r *Registry) CreateEntity() (EntityID, error) {
	if r.locked {
		return 0, ErrRegistryLocked
	}
	var e EntityID
	if n := len(r.free); n > 0 {
		e = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		e = r.next
		r.next++
		r.grow(int(r.next))
	}
	r.masks[e] = mask.Mask{}
	r.alive[e] = true
	r.count++
	r.log.Debug().Int("entity_id", int(e)).Msg("entity created")
	return e, nil
}

// RemoveEntity erases the entity from every store holding data for it, then
// retires the identity to the free list. Fails with ErrEntityNotFound when
// the identity is not live, including on a second removal of the same one.
func (r *Registry) RemoveEntity(e EntityID) error {
	if r.locked {
		return ErrRegistryLocked
	}
	if !r.Alive(e) {
		return eris.Wrapf(ErrEntityNotFound, "remove entity %d", int(e))
	}
	for _, view := range r.stores {
		view.discard(e)
	}
	r.masks[e] = mask.Mask{}
	r.alive[e] = false
	r.count--
	r.free = append(r.free, e)
	r.log.Debug().Int("entity_id", int(e)).Msg("entity removed")
	return nil
}

// Alive reports whether the identity is currently live.
func (r *Registry) Alive(e EntityID) bool {
	return e >= 0 && int(e) < len(r.alive) && r.alive[e]
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	return r.count
}

// Lock freezes structural mutation. Direct create/remove/attach/detach calls
// fail with ErrRegistryLocked until Unlock; the Enqueue variants defer
// instead. Component values remain freely mutable through pointers.
func (r *Registry) Lock() {
	r.locked = true
}

// Locked reports whether the registry is locked.
func (r *Registry) Locked() bool {
	return r.locked
}

// Unlock releases the lock and flushes every deferred operation, in order:
// entity builds, then component attach/detach, then destroys.
func (r *Registry) Unlock() error {
	r.locked = false
	return r.flushOperationQueue()
}

// ComponentTypes iterates the component types registered so far.
func (r *Registry) ComponentTypes() iter.Seq[reflect.Type] {
	return func(yield func(reflect.Type) bool) {
		for t := range r.stores {
			if !yield(t) {
				return
			}
		}
	}
}

func (r *Registry) maskOf(e EntityID) mask.Mask {
	if e < 0 || int(e) >= len(r.masks) {
		return mask.Mask{}
	}
	return r.masks[e]
}

func (r *Registry) grow(n int) {
	for len(r.masks) < n {
		r.masks = append(r.masks, mask.Mask{})
		r.alive = append(r.alive, false)
	}
}

// storeOf resolves the concrete store for T, registering the type and
// creating the store when create is set.
func storeOf[T any](r *Registry, create bool) (*ComponentStore[T], uint32, error) {
	t := typeOf[T]()
	if view, ok := r.stores[t]; ok {
		row, _ := r.schema.rowOf(t)
		return view.(*ComponentStore[T]), row, nil
	}
	if !create {
		return nil, 0, nil
	}
	row, err := r.schema.register(t)
	if err != nil {
		return nil, 0, err
	}
	st := newComponentStore[T]()
	r.stores[t] = st
	r.log.Debug().Str("component_type", t.String()).Msg("component store created")
	return st, row, nil
}

// Attach adds or replaces the T component on a live entity, lazily creating
// the store for T on first use of the type.
func Attach[T any](r *Registry, e EntityID, v T) error {
	if r.locked {
		return ErrRegistryLocked
	}
	if !r.Alive(e) {
		return eris.Wrapf(ErrEntityNotFound, "attach %s to entity %d", typeOf[T](), int(e))
	}
	st, row, err := storeOf[T](r, true)
	if err != nil {
		return err
	}
	st.Insert(e, v)
	r.masks[e].Mark(row)
	return nil
}

// Detach removes the T component from a live entity and returns it. A live
// entity that simply lacks a T yields ok=false with a nil error.
func Detach[T any](r *Registry, e EntityID) (v T, ok bool, err error) {
	if r.locked {
		return v, false, ErrRegistryLocked
	}
	if !r.Alive(e) {
		return v, false, eris.Wrapf(ErrEntityNotFound, "detach %s from entity %d", typeOf[T](), int(e))
	}
	st, row, _ := storeOf[T](r, false)
	if st == nil {
		return v, false, nil
	}
	v, ok = st.Remove(e)
	if ok {
		r.masks[e].Unmark(row)
	}
	return v, ok, nil
}

// Has reports whether the entity currently holds a T. False when the store
// for T does not exist yet or the entity is not live.
func Has[T any](r *Registry, e EntityID) bool {
	st, _, _ := storeOf[T](r, false)
	return st != nil && r.Alive(e) && st.Contains(e)
}

// Get returns a pointer to the entity's T component, or nil when the store
// for T does not exist yet, the entity is not live, or it lacks a T.
func Get[T any](r *Registry, e EntityID) *T {
	st, _, _ := storeOf[T](r, false)
	if st == nil || !r.Alive(e) {
		return nil
	}
	return st.Get(e)
}
