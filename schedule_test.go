package stockpile

import (
	"errors"
	"testing"

	"github.com/rotisserie/eris"
)

func TestScheduleRunsSystemsInOrder(t *testing.T) {
	registry := Factory.NewRegistry()
	for i := 0; i < 3; i++ {
		e, _ := registry.CreateEntity()
		Attach(registry, e, Health{Current: 40 + i, Max: 100})
	}

	var order []string
	heal := NewSystemFunc("heal", func(r *Registry) error {
		order = append(order, "heal")
		q := NewQuery1[Health](r)
		for q.Next() {
			q.Get().Current = q.Get().Max
		}
		return nil
	})
	audit := NewSystemFunc("audit", func(r *Registry) error {
		order = append(order, "audit")
		q := NewQuery1[Health](r)
		for q.Next() {
			if q.Get().Current != 100 {
				t.Errorf("audit ran before heal finished: %+v", q.Get())
			}
		}
		return nil
	})

	schedule := Factory.NewSchedule(heal, audit)
	if err := schedule.Run(registry); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(order) != 2 || order[0] != "heal" || order[1] != "audit" {
		t.Errorf("system order = %v", order)
	}
}

// Systems run under lock; structural changes go through the enqueue API and
// land between systems.
func TestScheduleSystemEnqueuesStructuralChanges(t *testing.T) {
	registry := Factory.NewRegistry()
	e, _ := registry.CreateEntity()
	Attach(registry, e, Health{Current: 0})

	reap := NewSystemFunc("reap", func(r *Registry) error {
		q := NewQuery1[Health](r)
		for q.Next() {
			if q.Get().Current <= 0 {
				if err := r.EnqueueRemoveEntity(q.Entity()); err != nil {
					return err
				}
			}
		}
		return nil
	})

	schedule := Factory.NewSchedule(reap)
	if err := schedule.Run(registry); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if registry.Alive(e) {
		t.Error("reaped entity still alive after schedule run")
	}
	if registry.Locked() {
		t.Error("registry left locked after schedule run")
	}
}

func TestScheduleStopsOnError(t *testing.T) {
	registry := Factory.NewRegistry()

	boom := eris.New("boom")
	ran := false
	schedule := Factory.NewSchedule(
		NewSystemFunc("failing", func(*Registry) error { return boom }),
		NewSystemFunc("never", func(*Registry) error { ran = true; return nil }),
	)

	err := schedule.Run(registry)
	if !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, want wrapped boom", err)
	}
	if ran {
		t.Error("schedule kept running after a system failed")
	}
	if registry.Locked() {
		t.Error("registry left locked after failing system")
	}
}

// A system that panics must not leave the registry locked; the panic itself
// still propagates to the caller.
func TestSchedulePanickingSystemUnlocks(t *testing.T) {
	registry := Factory.NewRegistry()
	schedule := Factory.NewSchedule(
		NewSystemFunc("panicking", func(*Registry) error { panic("kaboom") }),
	)

	panicked := func() (p bool) {
		defer func() { p = recover() != nil }()
		schedule.Run(registry)
		return false
	}()

	if !panicked {
		t.Fatal("panic did not propagate out of Run()")
	}
	if registry.Locked() {
		t.Error("registry left locked after panicking system")
	}
	if _, err := registry.CreateEntity(); err != nil {
		t.Errorf("CreateEntity() after recovered panic error = %v", err)
	}
}

func TestScheduleAdd(t *testing.T) {
	registry := Factory.NewRegistry()

	count := 0
	schedule := Factory.NewSchedule()
	schedule.Add(NewSystemFunc("a", func(*Registry) error { count++; return nil }))
	schedule.Add(NewSystemFunc("b", func(*Registry) error { count++; return nil }))

	if err := schedule.Run(registry); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if count != 2 {
		t.Errorf("systems run = %d, want 2", count)
	}
}
