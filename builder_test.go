package stockpile

import (
	"errors"
	"testing"
)

func TestEntityBuilderBuild(t *testing.T) {
	tests := []struct {
		name       string
		components int
	}{
		{"No components", 0},
		{"Single component", 1},
		{"Several components", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := Factory.NewRegistry()

			builder := NewEntityBuilder(registry)
			if tt.components > 0 {
				builder = With(builder, Position{X: 1})
			}
			if tt.components > 1 {
				builder = With(builder, Velocity{X: 2})
			}
			if tt.components > 2 {
				builder = With(builder, Health{Current: 3})
			}

			e, err := builder.Build()
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if !registry.Alive(e) {
				t.Fatal("built entity is not alive")
			}

			attached := 0
			if Has[Position](registry, e) {
				attached++
			}
			if Has[Velocity](registry, e) {
				attached++
			}
			if Has[Health](registry, e) {
				attached++
			}
			if attached != tt.components {
				t.Errorf("entity has %d components, want %d", attached, tt.components)
			}
		})
	}
}

func TestEntityBuilderValues(t *testing.T) {
	registry := Factory.NewRegistry()

	e, err := With(With(NewEntityBuilder(registry), Position{X: 3.0, Y: 4.5}), Health{Current: 9, Max: 10}).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if got := Get[Position](registry, e); got == nil || got.X != 3.0 || got.Y != 4.5 {
		t.Errorf("Position = %+v", got)
	}
	if got := Get[Health](registry, e); got == nil || got.Current != 9 {
		t.Errorf("Health = %+v", got)
	}
}

// Repeated With of the same type behaves like repeated Attach: the later
// value overwrites the earlier one.
func TestEntityBuilderLastValueWins(t *testing.T) {
	registry := Factory.NewRegistry()

	e, err := With(With(NewEntityBuilder(registry), Position{X: 1}), Position{X: 2}).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got := Get[Position](registry, e); got.X != 2 {
		t.Errorf("Position.X = %v, want 2", got.X)
	}
	if q := NewQuery1[Position](registry); q.Count() != 1 {
		t.Errorf("store holds %d Positions, want 1", q.Count())
	}
}

func TestEntityBuilderWhileLocked(t *testing.T) {
	registry := Factory.NewRegistry()
	registry.Lock()

	_, err := With(NewEntityBuilder(registry), Position{}).Build()
	if !errors.Is(err, ErrRegistryLocked) {
		t.Errorf("Build() while locked error = %v, want ErrRegistryLocked", err)
	}

	// Enqueue defers the whole build until Unlock.
	if err := With(NewEntityBuilder(registry), Position{X: 7}).Enqueue(); err != nil {
		t.Fatalf("Enqueue() error = %v", err)
	}
	if registry.Len() != 0 {
		t.Fatal("deferred build became visible before Unlock")
	}

	if err := registry.Unlock(); err != nil {
		t.Fatalf("Unlock() error = %v", err)
	}
	if registry.Len() != 1 {
		t.Fatalf("Len() = %d after Unlock, want 1", registry.Len())
	}
	query := NewQuery1[Position](registry)
	if !query.Next() || query.Get().X != 7 {
		t.Error("deferred build did not apply its component")
	}
}
