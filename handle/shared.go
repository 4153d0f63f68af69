package handle

// Shared is a reference-counted shared-ownership handle. Any number of
// Shared handles may alias one value through a common count block; the
// value's destructor runs exactly once, when the last of them drops its
// stake. The zero value is an empty handle.
type Shared[T any] struct {
	_   noCopy
	obj *T
	ref *refCount
}

// NewShared adopts obj into a fresh ownership chain with use count 1.
// A nil obj yields an empty handle.
func NewShared[T any](obj *T) *Shared[T] {
	return NewSharedDrop(obj, nil)
}

// NewSharedDrop is NewShared with an explicit destructor, run once when
// the last owning handle releases the value.
func NewSharedDrop[T any](obj *T, drop func(*T)) *Shared[T] {
	s := &Shared[T]{}
	s.adopt(obj, drop)
	return s
}

func (s *Shared[T]) adopt(obj *T, drop func(*T)) {
	if obj == nil {
		return
	}
	ref := &refCount{id: nextID(), strong: 1}
	ref.destroy = func() { runDrop(obj, drop) }
	s.obj = obj
	s.ref = ref
	notify(Event{Type: EventCreated, ID: ref.id, Strong: 1})
}

// Get returns the shared pointer without affecting ownership, or nil
// for an empty handle.
func (s *Shared[T]) Get() *T {
	return s.obj
}

// Value dereferences the shared pointer. It panics on an empty handle.
func (s *Shared[T]) Value() T {
	return *s.obj
}

// Empty reports whether the handle owns nothing.
func (s *Shared[T]) Empty() bool {
	return s.obj == nil
}

// UseCount returns the number of Shared handles co-owning the value, or
// zero for an empty handle.
func (s *Shared[T]) UseCount() int {
	if s.ref == nil {
		return 0
	}
	return int(s.ref.strongCount())
}

// Clone returns a new handle sharing ownership of the same value,
// incrementing the strong count. Cloning an empty handle yields another
// empty handle.
func (s *Shared[T]) Clone() *Shared[T] {
	c := &Shared[T]{obj: s.obj, ref: s.ref}
	if s.ref != nil {
		s.ref.addStrong()
		notify(Event{Type: EventRetained, ID: s.ref.id, Strong: s.ref.strongCount(), Weak: s.ref.weakCount()})
	}
	return c
}

// Move transfers this handle's ownership stake to a fresh handle without
// touching the counts. The receiver becomes empty.
func (s *Shared[T]) Move() *Shared[T] {
	m := &Shared[T]{obj: s.obj, ref: s.ref}
	s.obj = nil
	s.ref = nil
	return m
}

// Assign replaces this handle's stake with a share of src's, releasing
// the current one first. Self-assignment is a no-op.
func (s *Shared[T]) Assign(src *Shared[T]) {
	if s == src {
		return
	}
	s.release()
	s.obj = src.obj
	s.ref = src.ref
	if s.ref != nil {
		s.ref.addStrong()
		notify(Event{Type: EventRetained, ID: s.ref.id, Strong: s.ref.strongCount(), Weak: s.ref.weakCount()})
	}
}

// MoveFrom releases this handle's stake and steals src's, leaving src
// empty. The counts are unchanged. MoveFrom on itself is a no-op.
func (s *Shared[T]) MoveFrom(src *Shared[T]) {
	if s == src {
		return
	}
	s.release()
	s.obj = src.obj
	s.ref = src.ref
	src.obj = nil
	src.ref = nil
}

// Reset releases this handle's ownership stake and empties the handle.
func (s *Shared[T]) Reset() {
	s.release()
	s.obj = nil
	s.ref = nil
}

// ResetTo releases the current stake and adopts obj into a fresh
// ownership chain, like NewShared. Supply a custom destructor by
// constructing with NewSharedDrop instead.
func (s *Shared[T]) ResetTo(obj *T) {
	s.Reset()
	s.adopt(obj, nil)
}

// Swap exchanges the stakes of two handles. No counts change.
func (s *Shared[T]) Swap(other *Shared[T]) {
	s.obj, other.obj = other.obj, s.obj
	s.ref, other.ref = other.ref, s.ref
}

// Downgrade returns a Weak handle observing this handle's value without
// keeping it alive. Downgrading an empty handle yields an empty Weak.
func (s *Shared[T]) Downgrade() *Weak[T] {
	w := &Weak[T]{obj: s.obj, ref: s.ref}
	if s.ref != nil {
		s.ref.addWeak()
		notify(Event{Type: EventRetained, ID: s.ref.id, Strong: s.ref.strongCount(), Weak: s.ref.weakCount()})
	}
	return w
}

// Drop releases this handle's ownership stake. It is the handle's
// destructor and should be deferred at the adoption site; the value is
// destroyed when the last stake is dropped. Dropping an empty handle is
// a no-op, so calling Drop twice is safe.
func (s *Shared[T]) Drop() {
	s.Reset()
}

// release implements the central release algorithm: decrement strong,
// run the destructor when strong hits zero, and detach the count block
// once the weak count is also zero. With strong owners remaining, value
// and block are left untouched.
func (s *Shared[T]) release() {
	if s.obj == nil || s.ref == nil {
		return
	}
	ref := s.ref
	if n := ref.removeStrong(); n == 0 {
		ref.destroy()
		ref.destroy = nil
		notify(Event{Type: EventDestroyed, ID: ref.id, Weak: ref.weakCount()})
		if ref.weakCount() == 0 {
			notify(Event{Type: EventFreed, ID: ref.id})
		}
	} else {
		notify(Event{Type: EventReleased, ID: ref.id, Strong: n, Weak: ref.weakCount()})
	}
}
