package contracts

// Counter issues strictly increasing uint64 IDs starting at 1. Each registry
// embeds its own counter; namespaces never share state, so proposal IDs and
// listing IDs advance independently.
//
// Counter is not safe for concurrent use on its own. Registries call Next
// while holding their own mutex.
type Counter struct {
	last uint64
}

func (c *Counter) Next() uint64 {
	c.last++
	return c.last
}

// Last reports the most recently issued ID, or 0 if none was issued yet.
func (c *Counter) Last() uint64 {
	return c.last
}
