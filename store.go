package stockpile

import "iter"

var (
	_ storeView       = &ComponentStore[any]{}
	_ entityIter[any] = &ComponentStore[any]{}
)

// ComponentStore holds every T component in a dense, hole-free slice. A
// sparse index maps entity IDs to dense slots, and a parallel entity slice
// maps slots back, so removal can patch the index after a swap-remove.
//
// Dense order is insertion order until the first removal; after that it is
// unspecified. Do not hold dense slot indices across mutations.
type ComponentStore[T any] struct {
	values   []T
	entities []EntityID
	sparse   []int32 // entity id -> dense slot, -1 when absent
}

func newComponentStore[T any]() *ComponentStore[T] {
	return &ComponentStore[T]{}
}

// Insert adds or replaces the component for the entity. When the entity
// already holds a T the value is overwritten in place and the previous value
// is returned with replaced=true; otherwise the value is appended.
func (s *ComponentStore[T]) Insert(e EntityID, v T) (prev T, replaced bool) {
	if e < 0 {
		return prev, false
	}
	if slot := s.slotOf(e); slot >= 0 {
		prev = s.values[slot]
		s.values[slot] = v
		return prev, true
	}
	s.ensureSparse(e)
	s.sparse[e] = int32(len(s.values))
	s.values = append(s.values, v)
	s.entities = append(s.entities, e)
	return prev, false
}

// Remove deletes the entity's component via swap-remove: the last dense slot
// is moved into the vacated one and the moved entity's index is patched.
// Returns the removed value, or ok=false without side effects when absent.
func (s *ComponentStore[T]) Remove(e EntityID) (v T, ok bool) {
	slot := s.slotOf(e)
	if slot < 0 {
		return v, false
	}
	v = s.values[slot]
	last := int32(len(s.values) - 1)
	if slot != last {
		moved := s.entities[last]
		s.values[slot] = s.values[last]
		s.entities[slot] = moved
		s.sparse[moved] = slot
	}
	var zero T
	s.values[last] = zero // release references held by the vacated slot
	s.values = s.values[:last]
	s.entities = s.entities[:last]
	s.sparse[e] = -1
	return v, true
}

// Get returns a pointer to the entity's component, or nil when absent. The
// pointer is valid until the next structural mutation of this store.
func (s *ComponentStore[T]) Get(e EntityID) *T {
	slot := s.slotOf(e)
	if slot < 0 {
		return nil
	}
	return &s.values[slot]
}

// Contains reports whether the entity holds a T.
func (s *ComponentStore[T]) Contains(e EntityID) bool {
	return s.slotOf(e) >= 0
}

// Len returns the number of live components.
func (s *ComponentStore[T]) Len() int {
	return len(s.values)
}

// Entities returns the dense entity list. The slice aliases store internals:
// read only, and only until the next mutation.
func (s *ComponentStore[T]) Entities() []EntityID {
	return s.entities
}

// All iterates entity/component pairs in dense order.
func (s *ComponentStore[T]) All() iter.Seq2[EntityID, *T] {
	return func(yield func(EntityID, *T) bool) {
		for i := range s.values {
			if !yield(s.entities[i], &s.values[i]) {
				return
			}
		}
	}
}

func (s *ComponentStore[T]) discard(e EntityID) bool {
	_, ok := s.Remove(e)
	return ok
}

func (s *ComponentStore[T]) slotOf(e EntityID) int32 {
	if e < 0 || int(e) >= len(s.sparse) {
		return -1
	}
	return s.sparse[e]
}

func (s *ComponentStore[T]) ensureSparse(e EntityID) {
	for int(e) >= len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
}
