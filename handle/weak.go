package handle

// Weak is a non-owning observer handle over a shared value. It counts on
// the weak side of the count block only, so it never keeps the value
// alive; it answers liveness queries and promotes back to shared
// ownership with Lock while the value lives. The zero value is an empty
// handle. Weak handles are created with Shared.Downgrade.
type Weak[T any] struct {
	_   noCopy
	obj *T
	ref *refCount
}

// Expired reports whether the observed value has been destroyed. An
// empty handle is expired.
func (w *Weak[T]) Expired() bool {
	return w.UseCount() == 0
}

// UseCount returns the number of Shared handles currently owning the
// observed value, or zero for an empty handle. Weak handles are not
// counted.
func (w *Weak[T]) UseCount() int {
	if w.ref == nil {
		return 0
	}
	return int(w.ref.strongCount())
}

// Empty reports whether the handle observes nothing.
func (w *Weak[T]) Empty() bool {
	return w.ref == nil
}

// Lock promotes the weak handle to shared ownership. It returns an empty
// Shared handle when the value is already destroyed; otherwise the
// returned handle adds one strong owner. This is the only way to reach
// the value through a Weak handle, and it never resurrects a destroyed
// value. The check-then-retain is sound only under the package's
// single-goroutine protocol.
func (w *Weak[T]) Lock() *Shared[T] {
	if w.Expired() {
		return &Shared[T]{}
	}
	w.ref.addStrong()
	notify(Event{Type: EventRetained, ID: w.ref.id, Strong: w.ref.strongCount(), Weak: w.ref.weakCount()})
	return &Shared[T]{obj: w.obj, ref: w.ref}
}

// Clone returns a new Weak handle observing the same value,
// incrementing the weak count.
func (w *Weak[T]) Clone() *Weak[T] {
	c := &Weak[T]{obj: w.obj, ref: w.ref}
	if w.ref != nil {
		w.ref.addWeak()
		notify(Event{Type: EventRetained, ID: w.ref.id, Strong: w.ref.strongCount(), Weak: w.ref.weakCount()})
	}
	return c
}

// Move transfers this handle's weak reference to a fresh handle without
// touching the counts. The receiver becomes empty.
func (w *Weak[T]) Move() *Weak[T] {
	m := &Weak[T]{obj: w.obj, ref: w.ref}
	w.obj = nil
	w.ref = nil
	return m
}

// Assign replaces this handle's weak reference with one to src's value,
// releasing the current reference first. Self-assignment is a no-op.
func (w *Weak[T]) Assign(src *Weak[T]) {
	if w == src {
		return
	}
	w.release()
	w.obj = src.obj
	w.ref = src.ref
	if w.ref != nil {
		w.ref.addWeak()
		notify(Event{Type: EventRetained, ID: w.ref.id, Strong: w.ref.strongCount(), Weak: w.ref.weakCount()})
	}
}

// AssignShared points this handle at the value owned by src, releasing
// the current weak reference first. src keeps its ownership stake.
func (w *Weak[T]) AssignShared(src *Shared[T]) {
	w.release()
	w.obj = src.obj
	w.ref = src.ref
	if w.ref != nil {
		w.ref.addWeak()
		notify(Event{Type: EventRetained, ID: w.ref.id, Strong: w.ref.strongCount(), Weak: w.ref.weakCount()})
	}
}

// MoveFrom releases this handle's weak reference and steals src's,
// leaving src empty. The counts are unchanged. MoveFrom on itself is a
// no-op.
func (w *Weak[T]) MoveFrom(src *Weak[T]) {
	if w == src {
		return
	}
	w.release()
	w.obj = src.obj
	w.ref = src.ref
	src.obj = nil
	src.ref = nil
}

// Reset releases the weak reference and empties the handle.
func (w *Weak[T]) Reset() {
	w.release()
	w.obj = nil
	w.ref = nil
}

// Swap exchanges the weak references of two handles. No counts change.
func (w *Weak[T]) Swap(other *Weak[T]) {
	w.obj, other.obj = other.obj, w.obj
	w.ref, other.ref = other.ref, w.ref
}

// Drop releases the weak reference. It is the handle's destructor and
// should be deferred at the downgrade site. Dropping an empty handle is
// a no-op, so calling Drop twice is safe.
func (w *Weak[T]) Drop() {
	w.Reset()
}

// release implements the weak release algorithm: decrement weak, and
// detach the count block only when this release brings weak to zero
// after the strong count already reached zero. Whichever side reaches
// zero last frees the block.
func (w *Weak[T]) release() {
	if w.ref == nil {
		return
	}
	ref := w.ref
	n := ref.removeWeak()
	if n == 0 && ref.strongCount() == 0 {
		notify(Event{Type: EventFreed, ID: ref.id})
	} else {
		notify(Event{Type: EventReleased, ID: ref.id, Strong: ref.strongCount(), Weak: n})
	}
}
