/*
Package stockpile provides a sparse-set Entity-Component-System (ECS) data
store for games and simulations.

Stockpile keeps each component type in its own dense, contiguous store and
maps entity identities to storage slots, so attach, detach, lookup, and
removal are all O(1). Queries intersect the requested stores, driving from
the smallest one and filtering candidates with a per-entity bitmask.

Core Concepts:

  - Entity: a unique identifier with no inherent data.
  - Component: a typed value attached to an entity.
  - ComponentStore: the dense per-type storage, compacted by swap-remove.
  - Query: a cursor over entities holding a specific set of component types.

Basic Usage:

	// Create a registry
	registry := stockpile.Factory.NewRegistry()

	// Build entities with components
	player, _ := stockpile.With(
		stockpile.With(stockpile.NewEntityBuilder(registry), Position{X: 1, Y: 2}),
		Velocity{X: 0.5, Y: 0},
	).Build()

	// Query entities and process them
	query := stockpile.NewQuery2[Position, Velocity](registry)
	for query.Next() {
		pos, vel := query.Get()
		pos.X += vel.X
		pos.Y += vel.Y
	}

	_ = player

Removal uses swap-remove: deleting a component moves the last dense slot into
the vacated one, so dense iteration order is unstable after any removal and
must not be relied upon.

The registry is single-threaded. For iteration safety, Lock the registry
while a query is walked and route structural changes through the Enqueue
variants; they are applied when Unlock flushes the operation queue.

Stockpile is the storage layer for registry-driven game loops but also works
as a standalone library.
*/
package stockpile
