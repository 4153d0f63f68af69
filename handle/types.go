package handle

import (
	"github.com/gostkin/pointers"
)

// noCopy is embedded in every handle so that go vet's copylocks check
// rejects struct-value copies. Copying a handle would duplicate an
// ownership stake without adjusting the counts.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// runDrop executes a value's destructor: the explicit drop func when one
// was supplied, otherwise the value's own Drop method if it implements
// pointers.Dropper. Values with neither are simply released to the GC.
func runDrop[T any](obj *T, drop func(*T)) {
	if drop != nil {
		drop(obj)
		return
	}
	if d, ok := any(obj).(pointers.Dropper); ok {
		d.Drop()
	}
}
