package handle

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// EventType classifies handle lifecycle transitions.
type EventType uint8

const (
	// EventCreated fires when a handle adopts a value into a new
	// ownership chain.
	EventCreated EventType = iota
	// EventRetained fires when a chain gains a reference, strong or weak.
	EventRetained
	// EventReleased fires when a chain loses a reference but stays alive.
	EventReleased
	// EventDestroyed fires when the strong count hits zero and the
	// value's destructor runs.
	EventDestroyed
	// EventFreed fires when the allocation leaves the tracking system:
	// its count block is detached, or a Unique handle released its raw
	// pointer to the caller.
	EventFreed
)

func (t EventType) String() string {
	switch t {
	case EventCreated:
		return "created"
	case EventRetained:
		return "retained"
	case EventReleased:
		return "released"
	case EventDestroyed:
		return "destroyed"
	case EventFreed:
		return "freed"
	default:
		return "unknown"
	}
}

// Event describes one transition in an allocation's lifecycle. ID is
// process-unique per adopted value; Strong and Weak carry the counts
// after the transition.
type Event struct {
	ID     uint64
	Strong uint32
	Weak   uint32
	Type   EventType
}

// Observer receives lifecycle events for every handle in the process.
type Observer interface {
	OnHandleEvent(Event)
}

var (
	obsMu     sync.RWMutex
	observers []Observer
	lastID    atomic.Uint64
)

func nextID() uint64 {
	return lastID.Add(1)
}

// Subscribe registers an observer for handle lifecycle events.
func Subscribe(o Observer) {
	obsMu.Lock()
	defer obsMu.Unlock()
	observers = append(observers, o)
}

// Unsubscribe removes a previously registered observer.
func Unsubscribe(o Observer) {
	obsMu.Lock()
	defer obsMu.Unlock()
	for i, obs := range observers {
		if obs == o {
			observers = append(observers[:i], observers[i+1:]...)
			return
		}
	}
}

func notify(e Event) {
	if ce := Logger().Check(zap.DebugLevel, "handle event"); ce != nil {
		ce.Write(
			zap.Stringer("event", e.Type),
			zap.Uint64("id", e.ID),
			zap.Uint32("strong", e.Strong),
			zap.Uint32("weak", e.Weak),
		)
	}

	obsMu.RLock()
	defer obsMu.RUnlock()
	for _, o := range observers {
		o.OnHandleEvent(e)
	}
}
