package models

import "time"

// DriverEventType names a change to a driver's eligibility-relevant state
type DriverEventType string

const (
	DriverEventApproved     DriverEventType = "APPROVED"
	DriverEventRejected     DriverEventType = "REJECTED"
	DriverEventSuspended    DriverEventType = "SUSPENDED"
	DriverEventReactivated  DriverEventType = "REACTIVATED"
	DriverEventDeleted      DriverEventType = "DELETED"
	DriverEventCapabilities DriverEventType = "CAPABILITIES_UPDATED"
)

// DriverEvent is published after a driver mutation commits
type DriverEvent struct {
	DriverID   string          `json:"driver_id"`
	Type       DriverEventType `json:"type"`
	OccurredAt time.Time       `json:"occurred_at"`
	// Source identifies the publishing replica so it can skip its own events
	Source string `json:"source,omitempty"`
}
