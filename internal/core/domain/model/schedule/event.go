package schedule

import (
	"time"

	"scheduling/internal/core/domain/model/kernel"
)

// EventType doubles as the message routing key.
type EventType string

const (
	EventAssigned  EventType = "schedule.assigned"
	EventCancelled EventType = "schedule.cancelled"
	EventCompleted EventType = "schedule.completed"
)

// Event describes a schedule lifecycle change.
type Event struct {
	Type       EventType
	ScheduleID kernel.UUID
	DriverID   kernel.UUID
	RouteID    kernel.UUID
	Status     Status
	OccurredAt time.Time
}

func (s *Schedule) record(eventType EventType, now time.Time) {
	s.events = append(s.events, Event{
		Type:       eventType,
		ScheduleID: s.id,
		DriverID:   s.driverID,
		RouteID:    s.routeID,
		Status:     s.status,
		OccurredAt: now,
	})
}

// DomainEvents returns the events recorded since the aggregate was loaded or last cleared.
func (s *Schedule) DomainEvents() []Event {
	return s.events
}

func (s *Schedule) ClearDomainEvents() {
	s.events = nil
}
