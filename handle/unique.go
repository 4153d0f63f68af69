package handle

// Unique is an exclusive-ownership handle over a heap value. At most one
// live Unique handle points at a given value; ownership is transferred
// with Move, MoveFrom, or Release, never by copying. The zero value is
// an empty handle.
type Unique[T any] struct {
	_    noCopy
	id   uint64
	obj  *T
	drop func(*T)
}

// NewUnique adopts obj as the handle's exclusively owned value. A nil
// obj yields an empty handle.
func NewUnique[T any](obj *T) *Unique[T] {
	return NewUniqueDrop(obj, nil)
}

// NewUniqueDrop is NewUnique with an explicit destructor, run once when
// the owned value is destroyed.
func NewUniqueDrop[T any](obj *T, drop func(*T)) *Unique[T] {
	u := &Unique[T]{drop: drop}
	u.adopt(obj)
	return u
}

func (u *Unique[T]) adopt(obj *T) {
	u.obj = obj
	if obj == nil {
		u.id = 0
		return
	}
	u.id = nextID()
	notify(Event{Type: EventCreated, ID: u.id, Strong: 1})
}

// Get returns the owned pointer without affecting ownership, or nil for
// an empty handle.
func (u *Unique[T]) Get() *T {
	return u.obj
}

// Value dereferences the owned pointer. It panics on an empty handle.
func (u *Unique[T]) Value() T {
	return *u.obj
}

// Empty reports whether the handle owns nothing.
func (u *Unique[T]) Empty() bool {
	return u.obj == nil
}

// Release relinquishes ownership and returns the raw pointer. The caller
// becomes responsible for the value's cleanup; the handle is left empty.
func (u *Unique[T]) Release() *T {
	obj := u.obj
	if obj != nil {
		notify(Event{Type: EventFreed, ID: u.id})
	}
	u.obj = nil
	u.id = 0
	return obj
}

// Reset destroys the currently owned value, if any, and adopts obj.
// Reset(nil) just empties the handle. The handle's destructor, if one
// was supplied at construction, carries over to the new value.
func (u *Unique[T]) Reset(obj *T) {
	u.destroy()
	u.adopt(obj)
}

// Swap exchanges the owned values of two handles. No destructors run.
func (u *Unique[T]) Swap(other *Unique[T]) {
	u.id, other.id = other.id, u.id
	u.obj, other.obj = other.obj, u.obj
	u.drop, other.drop = other.drop, u.drop
}

// Move transfers ownership to a fresh handle, leaving the receiver
// empty. Destroying the emptied source later is a no-op.
func (u *Unique[T]) Move() *Unique[T] {
	moved := &Unique[T]{id: u.id, obj: u.obj, drop: u.drop}
	u.id = 0
	u.obj = nil
	return moved
}

// MoveFrom destroys the currently owned value and steals ownership from
// src, leaving src empty. MoveFrom on itself is a no-op.
func (u *Unique[T]) MoveFrom(src *Unique[T]) {
	if u == src {
		return
	}
	u.destroy()
	u.id, u.obj, u.drop = src.id, src.obj, src.drop
	src.id = 0
	src.obj = nil
}

// Drop destroys the owned value. It is the handle's destructor and
// should be deferred at the adoption site. Dropping an empty handle is
// a no-op, so calling Drop twice is safe.
func (u *Unique[T]) Drop() {
	u.destroy()
}

func (u *Unique[T]) destroy() {
	if u.obj == nil {
		return
	}
	runDrop(u.obj, u.drop)
	notify(Event{Type: EventDestroyed, ID: u.id})
	notify(Event{Type: EventFreed, ID: u.id})
	u.obj = nil
	u.id = 0
}
