package handle

import (
	"testing"
)

type recordingObserver struct {
	events []Event
}

func (o *recordingObserver) OnHandleEvent(e Event) {
	o.events = append(o.events, e)
}

func (o *recordingObserver) types() []EventType {
	out := make([]EventType, len(o.events))
	for i, e := range o.events {
		out[i] = e.Type
	}
	return out
}

func expectTypes(t *testing.T, got, want []EventType) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected %d events %v, got %d: %v", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Event %d: expected %v, got %v (all: %v)", i, want[i], got[i], got)
		}
	}
}

func TestObserver_SharedLifecycle(t *testing.T) {
	obs := &recordingObserver{}
	Subscribe(obs)
	defer Unsubscribe(obs)

	a := NewShared(&thing{name: "x"})
	b := a.Clone()
	a.Drop()
	b.Drop()

	expectTypes(t, obs.types(), []EventType{
		EventCreated,
		EventRetained,
		EventReleased,
		EventDestroyed,
		EventFreed,
	})

	if obs.events[1].Strong != 2 {
		t.Fatalf("Expected strong 2 after clone, got %d", obs.events[1].Strong)
	}
	if obs.events[2].Strong != 1 {
		t.Fatalf("Expected strong 1 after first drop, got %d", obs.events[2].Strong)
	}
	for _, e := range obs.events[1:] {
		if e.ID != obs.events[0].ID {
			t.Fatal("All events should carry the allocation's ID")
		}
	}
}

func TestObserver_WeakDelaysBlockNotValue(t *testing.T) {
	obs := &recordingObserver{}
	Subscribe(obs)
	defer Unsubscribe(obs)

	a := NewShared(&thing{name: "x"})
	w := a.Downgrade()
	a.Drop()
	w.Drop()

	expectTypes(t, obs.types(), []EventType{
		EventCreated,   // adopt
		EventRetained,  // downgrade, weak 1
		EventDestroyed, // strong hit zero; block pinned by weak
		EventFreed,     // weak release detaches the block
	})
}

func TestObserver_UniqueLifecycle(t *testing.T) {
	obs := &recordingObserver{}
	Subscribe(obs)
	defer Unsubscribe(obs)

	u := NewUnique(&thing{name: "x"})
	u.Drop()

	expectTypes(t, obs.types(), []EventType{
		EventCreated,
		EventDestroyed,
		EventFreed,
	})
}

func TestObserver_UniqueRelease(t *testing.T) {
	obs := &recordingObserver{}
	Subscribe(obs)
	defer Unsubscribe(obs)

	u := NewUnique(&thing{name: "x"})
	u.Release()

	// A released value leaves tracking without being destroyed.
	expectTypes(t, obs.types(), []EventType{
		EventCreated,
		EventFreed,
	})
}

func TestObserver_Unsubscribe(t *testing.T) {
	obs := &recordingObserver{}
	Subscribe(obs)
	Unsubscribe(obs)

	u := NewUnique(&thing{name: "x"})
	u.Drop()

	if len(obs.events) != 0 {
		t.Fatalf("Expected no events after Unsubscribe, got %d", len(obs.events))
	}
}

func TestObserver_DistinctIDs(t *testing.T) {
	obs := &recordingObserver{}
	Subscribe(obs)
	defer Unsubscribe(obs)

	a := NewShared(&thing{name: "x"})
	b := NewShared(&thing{name: "y"})

	if obs.events[0].ID == obs.events[1].ID {
		t.Fatal("Distinct allocations must have distinct IDs")
	}

	a.Drop()
	b.Drop()
}
