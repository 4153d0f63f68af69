// Package pointers provides explicit ownership handles for heap values.
//
// Go's garbage collector reclaims memory, but values that wrap external
// state (file descriptors, C allocations, pooled buffers, subprocess
// handles) still need a deterministic "destroyed exactly once, at the
// right moment" protocol. This library implements that protocol with
// three handle kinds over a *T:
//
//	handle.Unique[T] - exclusive ownership, move-only
//	handle.Shared[T] - shared ownership with strong reference counting
//	handle.Weak[T]   - non-owning observer over a shared value
//
// # Architecture Overview
//
// The library is organized into a small set of packages:
//
//	pointers/     Root package with the Dropper cleanup interface
//	├── handle/   The three handle kinds and the shared count block
//	└── track/    Live-allocation registry for leak debugging
//
// # Quick Start
//
// Wrap a value in a shared handle and let co-owners keep it alive:
//
//	f := openThing()
//	a := handle.NewShared(f)
//	defer a.Drop()
//
//	b := a.Clone() // use count 2
//	defer b.Drop()
//
//	w := a.Downgrade() // does not keep f alive
//	defer w.Drop()
//
// The value is destroyed exactly once, when the last Shared handle
// referencing it is dropped or reset. A Weak handle never delays that;
// it only answers Expired and, while the value lives, promotes back to
// shared ownership via Lock.
//
// # Destruction
//
// "Destroy" means running the value's destructor. By default that is the
// value's Drop method if it implements pointers.Dropper; constructors
// with the Drop suffix take an explicit func(*T) instead. After the
// destructor runs, the handles release their references and the garbage
// collector reclaims the memory as usual.
//
// # Threading
//
// Reference counts are plain integers. Handles that share a value must be
// manipulated from one goroutine, or under external synchronization.
// Cycles between Shared handles are never collected; break them with a
// Weak handle on one side.
package pointers

// Dropper is optionally implemented by values that need cleanup when the
// last owning handle lets go of them.
type Dropper interface {
	Drop()
}
