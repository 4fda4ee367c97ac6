package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSLAWindowPerPriority(t *testing.T) {
	cases := []struct {
		priority TicketPriority
		want     time.Duration
	}{
		{TicketPriorityHigh, 24 * time.Hour},
		{TicketPriorityMedium, 48 * time.Hour},
		{TicketPriorityLow, 72 * time.Hour},
	}
	for _, tc := range cases {
		window, ok := tc.priority.SLAWindow()
		require.True(t, ok, "priority %s", tc.priority)
		assert.Equal(t, tc.want, window)
	}
}

func TestSLAWindowRejectsUnknownPriority(t *testing.T) {
	_, ok := TicketPriority("URGENT").SLAWindow()
	assert.False(t, ok)

	_, ok = TicketPriority("").SLAWindow()
	assert.False(t, ok)
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, TicketStatusResolved.Terminal())
	assert.True(t, TicketStatusClosed.Terminal())
	assert.False(t, TicketStatusOpen.Terminal())
	assert.False(t, TicketStatusInProgress.Terminal())
}

func TestStatusAndTypeValidity(t *testing.T) {
	for _, s := range []TicketStatus{TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed} {
		assert.True(t, s.Valid())
	}
	assert.False(t, TicketStatus("CANCELLED").Valid())

	for _, typ := range []TicketType{TicketTypeBug, TicketTypeFeature, TicketTypeMaintenance, TicketTypeSupport} {
		assert.True(t, typ.Valid())
	}
	assert.False(t, TicketType("INCIDENT").Valid())
}
