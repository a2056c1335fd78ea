package stockpile_test

import (
	"fmt"
	"sort"

	"github.com/TheBitDrifter/stockpile"
)

// Position is a simple component for 2D coordinates
type Position struct {
	X float64
	Y float64
}

// Velocity is a simple component for 2D movement
type Velocity struct {
	X float64
	Y float64
}

// Name is a simple component for entity identification
type Name struct {
	Value string
}

// Example shows basic stockpile usage with entity creation and queries
func Example_basic() {
	registry := stockpile.Factory.NewRegistry()

	// Create a few entities with varying component sets
	for i := 0; i < 3; i++ {
		b := stockpile.NewEntityBuilder(registry)
		b = stockpile.With(b, Position{X: float64(i), Y: float64(i)})
		b.Build()
	}

	player, _ := stockpile.With(
		stockpile.With(
			stockpile.With(stockpile.NewEntityBuilder(registry), Position{X: 10, Y: 20}),
			Velocity{X: 1, Y: 2},
		),
		Name{Value: "Player"},
	).Build()

	// Move everything that has both a position and a velocity
	moving := stockpile.NewQuery2[Position, Velocity](registry)
	for moving.Next() {
		pos, vel := moving.Get()
		pos.X += vel.X
		pos.Y += vel.Y
	}

	pos := stockpile.Get[Position](registry, player)
	name := stockpile.Get[Name](registry, player)
	fmt.Printf("%s moved to (%.0f, %.0f)\n", name.Value, pos.X, pos.Y)
	fmt.Printf("entities with Position: %d\n", stockpile.NewQuery1[Position](registry).Count())

	// Output:
	// Player moved to (11, 22)
	// entities with Position: 4
}

// Example_schedule shows systems running sequentially over a registry
func Example_schedule() {
	registry := stockpile.Factory.NewRegistry()

	for i := 1; i <= 3; i++ {
		b := stockpile.With(stockpile.NewEntityBuilder(registry), Position{X: float64(i)})
		b = stockpile.With(b, Velocity{X: float64(i)})
		b.Build()
	}

	move := stockpile.NewSystemFunc("move", func(r *stockpile.Registry) error {
		q := stockpile.NewQuery2[Position, Velocity](r)
		for q.Next() {
			pos, vel := q.Get()
			pos.X += vel.X
		}
		return nil
	})

	schedule := stockpile.Factory.NewSchedule(move)
	if err := schedule.Run(registry); err != nil {
		fmt.Println("schedule failed:", err)
		return
	}

	var got []float64
	q := stockpile.NewQuery1[Position](registry)
	for q.Next() {
		got = append(got, q.Get().X)
	}
	sort.Float64s(got)
	fmt.Println(got)

	// Output:
	// [2 4 6]
}
