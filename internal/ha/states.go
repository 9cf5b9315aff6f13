package ha

import (
	"context"
	"fmt"
)

// GetStates fetches the state of every entity known to the hub.
func (c *Client) GetStates(ctx context.Context) ([]Entity, error) {
	var states []Entity
	if err := c.get(ctx, "/api/states", &states); err != nil {
		return nil, fmt.Errorf("get states: %w", err)
	}
	return states, nil
}

// GetInstanceInfo fetches hub metadata. The exporter calls this before
// the states fetch as a connectivity and authentication probe.
func (c *Client) GetInstanceInfo(ctx context.Context) (*InstanceInfo, error) {
	var info InstanceInfo
	if err := c.get(ctx, "/api/config", &info); err != nil {
		return nil, fmt.Errorf("get instance info: %w", err)
	}
	return &info, nil
}
