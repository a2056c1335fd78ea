package stockpile

import (
	"reflect"

	"github.com/rotisserie/eris"
)

type opKind int

const (
	opDead opKind = iota - 1 // superseded, skipped at flush
	opBuild
	opComponent
)

type operation struct {
	kind   opKind
	entity EntityID
	apply  func(*Registry) error
}

type opKey struct {
	entity EntityID
	typ    reflect.Type
}

// opQueue holds structural operations deferred while the registry is locked.
// Component operations coalesce per entity and component type (last wins);
// destroys are deduplicated and cancel pending component operations against
// the doomed entity.
type opQueue struct {
	buildOps       []operation
	componentOps   []operation
	destroyOps     []EntityID
	pendingDestroy map[EntityID]struct{}
	pendingMods    map[opKey]int
}

func newOpQueue() opQueue {
	return opQueue{
		pendingDestroy: make(map[EntityID]struct{}),
		pendingMods:    make(map[opKey]int),
	}
}

func (q *opQueue) enqueueBuild(apply func(*Registry) error) {
	q.buildOps = append(q.buildOps, operation{kind: opBuild, apply: apply})
}

func (q *opQueue) enqueueComponent(e EntityID, t reflect.Type, apply func(*Registry) error) {
	if _, doomed := q.pendingDestroy[e]; doomed {
		return
	}
	key := opKey{entity: e, typ: t}
	if idx, exists := q.pendingMods[key]; exists {
		q.componentOps[idx].apply = apply
		return
	}
	q.pendingMods[key] = len(q.componentOps)
	q.componentOps = append(q.componentOps, operation{kind: opComponent, entity: e, apply: apply})
}

func (q *opQueue) enqueueDestroy(e EntityID) {
	if _, exists := q.pendingDestroy[e]; exists {
		return
	}
	q.pendingDestroy[e] = struct{}{}
	for key, idx := range q.pendingMods {
		if key.entity == e {
			q.componentOps[idx].kind = opDead
			delete(q.pendingMods, key)
		}
	}
	q.destroyOps = append(q.destroyOps, e)
}

// flushOperationQueue applies deferred operations in order: builds first,
// then component attach/detach, then destroys. Called by Unlock.
//
// The queue is consumed before anything is applied: a flush that fails
// partway surfaces the error and discards the remainder, so a later Unlock
// never replays operations that already ran.
func (r *Registry) flushOperationQueue() error {
	q := &r.queue
	if len(q.buildOps) == 0 && len(q.componentOps) == 0 && len(q.destroyOps) == 0 {
		return nil
	}

	builds, componentOps, destroys := q.buildOps, q.componentOps, q.destroyOps
	q.buildOps, q.componentOps, q.destroyOps = nil, nil, nil
	clear(q.pendingDestroy)
	clear(q.pendingMods)

	for _, op := range builds {
		if err := op.apply(r); err != nil {
			return eris.Wrap(err, "failed to apply queued entity build")
		}
	}

	for _, op := range componentOps {
		if op.kind == opDead {
			continue
		}
		// The entity may have been removed since the op was queued.
		if !r.Alive(op.entity) {
			continue
		}
		if err := op.apply(r); err != nil {
			return eris.Wrap(err, "failed to apply queued component operation")
		}
	}

	for _, e := range destroys {
		if !r.Alive(e) {
			continue
		}
		if err := r.RemoveEntity(e); err != nil {
			return eris.Wrap(err, "failed to apply queued destroy")
		}
	}

	r.log.Debug().
		Int("builds", len(builds)).
		Int("component_ops", len(componentOps)).
		Int("destroys", len(destroys)).
		Msg("operation queue flushed")

	return nil
}

// EnqueueRemoveEntity defers entity removal until Unlock when the registry
// is locked, and removes immediately otherwise.
func (r *Registry) EnqueueRemoveEntity(e EntityID) error {
	if !r.locked {
		return r.RemoveEntity(e)
	}
	if !r.Alive(e) {
		return eris.Wrapf(ErrEntityNotFound, "enqueue remove entity %d", int(e))
	}
	r.queue.enqueueDestroy(e)
	return nil
}

// EnqueueAttach defers an attach until Unlock when the registry is locked,
// and attaches immediately otherwise. Queued attaches of the same component
// type on the same entity coalesce, last value wins.
func EnqueueAttach[T any](r *Registry, e EntityID, v T) error {
	if !r.locked {
		return Attach(r, e, v)
	}
	if !r.Alive(e) {
		return eris.Wrapf(ErrEntityNotFound, "enqueue attach %s to entity %d", typeOf[T](), int(e))
	}
	r.queue.enqueueComponent(e, typeOf[T](), func(r *Registry) error {
		return Attach(r, e, v)
	})
	return nil
}

// EnqueueDetach defers a detach until Unlock when the registry is locked,
// and detaches immediately otherwise. The removed value is dropped in the
// deferred case.
func EnqueueDetach[T any](r *Registry, e EntityID) error {
	if !r.locked {
		_, _, err := Detach[T](r, e)
		return err
	}
	if !r.Alive(e) {
		return eris.Wrapf(ErrEntityNotFound, "enqueue detach %s from entity %d", typeOf[T](), int(e))
	}
	r.queue.enqueueComponent(e, typeOf[T](), func(r *Registry) error {
		_, _, err := Detach[T](r, e)
		return err
	})
	return nil
}
