// Package track maintains the live set of handle allocations.
//
// A Registry observes handle lifecycle events and keeps one record per
// allocation from adoption until its count block is detached. It is a
// debugging aid: inspect it in tests or tooling to find leaks and
// half-dead allocations (destroyed values whose block is pinned by Weak
// handles).
//
//	reg := track.New()
//	handle.Subscribe(reg)
//	defer handle.Unsubscribe(reg)
//
//	// ... exercise code under test ...
//
//	if err := reg.Close(); err != nil {
//	    log.Fatalf("leaked: %v", err)
//	}
//
// Recording stops at Close; a registry is not reusable afterwards.
package track
