// Package handle implements ownership handles with reference counting.
//
// Three handle kinds manage one heap value:
//
//	Unique[T] - sole owner; ownership moves, it is never copied
//	Shared[T] - co-owner; the value lives while any Shared handle does
//	Weak[T]   - observer; never keeps the value alive, can promote
//
// # Ownership Protocol
//
// Every handle has an explicit destructor, Drop, which must run when the
// handle goes out of scope:
//
//	u := handle.NewUnique(&conn{})
//	defer u.Drop()
//
// Shared handles alias one value through a shared count block holding a
// strong and a weak counter. Dropping a Shared handle decrements strong;
// the value's destructor runs exactly when strong hits zero, and the
// block itself is detached only once the weak count is also zero. A Weak
// handle counts on the weak side only, so it never delays destruction:
//
//	s := handle.NewShared(&conn{})
//	w := s.Downgrade()
//	s.Drop()            // conn destroyed here
//	w.Expired()         // true
//	w.Lock().Empty()    // true; Lock never resurrects a destroyed value
//
// # Moves and Copies
//
// Handles are used through pointers and must not be copied as struct
// values; go vet's copylocks check flags such copies. Ownership transfer
// is explicit: Move empties the source and returns a fresh handle,
// MoveFrom steals into an existing one, Clone (Shared and Weak only)
// adds a new counted reference.
//
// # Contract
//
// Get on an empty handle returns nil and Value panics; callers are
// responsible for checking Empty where emptiness is possible. Adopting
// the same *T into two independent ownership chains is a caller error
// and leads to a double destructor run. Counters are plain integers:
// handles sharing a block must stay on one goroutine or be externally
// synchronized.
//
// # Observability
//
// Lifecycle transitions fan out to registered Observers and, when a
// logger is installed with SetLogger, to debug-level zap logs. See the
// track package for a ready-made live-allocation registry.
package handle
