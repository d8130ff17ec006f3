package daemon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()
	m.IncEventsSent()
	m.IncEventsSent()
	m.IncEventsReceived()
	m.IncEventsDropped()
	m.IncBroadcasts()
	m.SetConnectedClients(4)

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.EventsSent)
	assert.Equal(t, int64(1), snap.EventsReceived)
	assert.Equal(t, int64(1), snap.EventsDropped)
	assert.Equal(t, int64(1), snap.Broadcasts)
	assert.Equal(t, int32(4), snap.ConnectedClients)
	assert.Equal(t, m.StartTime, snap.StartTime)
	assert.NotEmpty(t, snap.Uptime)
}
