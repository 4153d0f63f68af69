package handle

import (
	"testing"
)

type thing struct {
	name  string
	drops int
}

func (t *thing) Drop() {
	t.drops++
}

func TestUnique_Basic(t *testing.T) {
	v := &thing{name: "a"}
	u := NewUnique(v)

	if u.Empty() {
		t.Fatal("Expected non-empty handle")
	}
	if u.Get() != v {
		t.Fatal("Get returned wrong pointer")
	}
	if u.Value().name != "a" {
		t.Fatalf("Expected 'a', got %q", u.Value().name)
	}

	u.Drop()
	if v.drops != 1 {
		t.Fatalf("Expected 1 drop, got %d", v.drops)
	}
	if !u.Empty() || u.Get() != nil {
		t.Fatal("Expected empty handle after Drop")
	}

	// Second Drop must be a no-op
	u.Drop()
	if v.drops != 1 {
		t.Fatalf("Expected 1 drop after double Drop, got %d", v.drops)
	}
}

func TestUnique_ZeroValueEmpty(t *testing.T) {
	var u Unique[thing]
	if !u.Empty() {
		t.Fatal("Zero value should be empty")
	}
	u.Drop() // must not panic
	if u.Release() != nil {
		t.Fatal("Release on empty handle should return nil")
	}
}

func TestUnique_ExplicitDestructor(t *testing.T) {
	dropped := 0
	u := NewUniqueDrop(&thing{name: "a"}, func(v *thing) { dropped++ })

	u.Drop()
	if dropped != 1 {
		t.Fatalf("Expected explicit destructor to run once, got %d", dropped)
	}
}

func TestUnique_Release(t *testing.T) {
	v := &thing{name: "a"}
	u := NewUnique(v)

	got := u.Release()
	if got != v {
		t.Fatal("Release returned wrong pointer")
	}
	if !u.Empty() {
		t.Fatal("Expected empty handle after Release")
	}

	u.Drop()
	if v.drops != 0 {
		t.Fatal("Drop after Release must not destroy the released value")
	}
}

func TestUnique_Reset(t *testing.T) {
	a := &thing{name: "a"}
	b := &thing{name: "b"}
	u := NewUnique(a)

	u.Reset(b)
	if a.drops != 1 {
		t.Fatalf("Expected old value destroyed on Reset, got %d drops", a.drops)
	}
	if u.Get() != b {
		t.Fatal("Expected handle to own the new value")
	}

	u.Reset(nil)
	if b.drops != 1 {
		t.Fatal("Expected Reset(nil) to destroy the owned value")
	}
	if !u.Empty() {
		t.Fatal("Expected empty handle after Reset(nil)")
	}
}

func TestUnique_ResetKeepsDestructor(t *testing.T) {
	dropped := 0
	u := NewUniqueDrop(&thing{name: "a"}, func(v *thing) { dropped++ })

	u.Reset(&thing{name: "b"})
	u.Drop()
	if dropped != 2 {
		t.Fatalf("Expected destructor to carry over to new value, got %d", dropped)
	}
}

func TestUnique_Move(t *testing.T) {
	v := &thing{name: "a"}
	u := NewUnique(v)

	m := u.Move()
	if !u.Empty() {
		t.Fatal("Expected source empty after Move")
	}
	if m.Get() != v {
		t.Fatal("Expected destination to hold original pointer")
	}

	// Destroying the emptied source must not affect the moved-to value
	u.Drop()
	if v.drops != 0 {
		t.Fatal("Source Drop destroyed the moved value")
	}

	m.Drop()
	if v.drops != 1 {
		t.Fatalf("Expected 1 drop, got %d", v.drops)
	}
}

func TestUnique_MoveFrom(t *testing.T) {
	a := &thing{name: "a"}
	b := &thing{name: "b"}
	ua := NewUnique(a)
	ub := NewUnique(b)

	ua.MoveFrom(ub)
	if a.drops != 1 {
		t.Fatal("Expected current value destroyed before steal")
	}
	if ua.Get() != b || !ub.Empty() {
		t.Fatal("Expected ownership transferred from src")
	}

	// Self move-assignment is a no-op
	ua.MoveFrom(ua)
	if ua.Get() != b || b.drops != 0 {
		t.Fatal("Self MoveFrom changed state")
	}

	ua.Drop()
}

func TestUnique_Swap(t *testing.T) {
	a := &thing{name: "a"}
	b := &thing{name: "b"}
	ua := NewUnique(a)
	ub := NewUnique(b)

	ua.Swap(ub)
	if ua.Get() != b || ub.Get() != a {
		t.Fatal("Swap did not exchange pointers")
	}
	if a.drops != 0 || b.drops != 0 {
		t.Fatal("Swap must not destroy anything")
	}

	ua.Drop()
	ub.Drop()
	if a.drops != 1 || b.drops != 1 {
		t.Fatal("Expected both values destroyed exactly once")
	}
}

func TestUnique_ValuePanicsWhenEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Expected panic from Value on empty handle")
		}
	}()
	var u Unique[thing]
	_ = u.Value()
}
