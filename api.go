package stockpile

import "iter"

// EntityID is an opaque numeric entity identity. It carries no data of its
// own; existence is defined by the Registry that allocated it. IDs of
// removed entities are reused by later allocations, so holding an ID across
// a RemoveEntity is a caller bug the registry cannot detect.
type EntityID int

// System is a unit of behavior run against a Registry by a Schedule.
type System interface {
	Name() string
	Update(*Registry) error
}

// storeView is the type-erased face of a ComponentStore[T]. The Registry
// holds one per registered component type and fans entity removal out
// through it without knowing T.
type storeView interface {
	Contains(EntityID) bool
	Len() int
	Entities() []EntityID

	// discard removes the entity's component, dropping the value.
	discard(EntityID) bool
}

// iQuery is the cursor surface shared by every query arity.
type iQuery interface {
	Next() bool
	Entity() EntityID
	Reset()
	Count() int
}

// entityIter is implemented by stores exposing range-over-func iteration.
type entityIter[T any] interface {
	All() iter.Seq2[EntityID, *T]
}
