package stockpile

import "github.com/rotisserie/eris"

var (
	// ErrEntityNotFound is returned by structural operations targeting an
	// identity that is not currently live (never allocated, or already
	// removed). Component absence is not reported through this error;
	// lookups for missing components return nil/false instead.
	ErrEntityNotFound = eris.New("entity does not exist")

	// ErrRegistryLocked is returned by direct structural operations while
	// the registry is locked for iteration. Use the Enqueue variants.
	ErrRegistryLocked = eris.New("registry is currently locked")

	// ErrComponentLimit is returned when registering another component type
	// would exceed the schema's mask capacity.
	ErrComponentLimit = eris.New("component type limit reached")
)
