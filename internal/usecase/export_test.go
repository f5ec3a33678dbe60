package usecase

// TestGateway exposes the coordinator's gateway so the external test
// package can reach the stub it was constructed with.
func (c *Coordinator) TestGateway() OrderGateway { return c.gateway }

// TestForceSelect inserts an id directly into the selection set,
// bypassing Select's validation, for external test packages.
func (c *Coordinator) TestForceSelect(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selection[id] = struct{}{}
}
