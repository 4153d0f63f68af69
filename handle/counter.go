package handle

// refCount is the count block shared by every Shared and Weak handle
// aliasing one value. It is created by the first Shared handle over a
// value and detached by whichever release drives both counters to zero.
// Consumers never see this type; the handles uphold the counting
// protocol, so the counters need no bounds checks.
type refCount struct {
	id      uint64
	strong  uint32
	weak    uint32
	destroy func()
}

func (c *refCount) addStrong() {
	c.strong++
}

// removeStrong decrements the strong count and returns the new value.
func (c *refCount) removeStrong() uint32 {
	c.strong--
	return c.strong
}

func (c *refCount) strongCount() uint32 {
	return c.strong
}

func (c *refCount) addWeak() {
	c.weak++
}

// removeWeak decrements the weak count and returns the new value.
func (c *refCount) removeWeak() uint32 {
	c.weak--
	return c.weak
}

func (c *refCount) weakCount() uint32 {
	return c.weak
}
