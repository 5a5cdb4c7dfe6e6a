package models

import (
	"time"
)

// ServiceType represents the pricing tier of a detailing service
type ServiceType string

const (
	ServiceQuick   ServiceType = "Quick"
	ServiceFull    ServiceType = "Full"
	ServicePremium ServiceType = "Premium"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "Scheduled"
	StatusCompleted AppointmentStatus = "Completed"
	StatusCancelled AppointmentStatus = "Cancelled"
	StatusNoShow    AppointmentStatus = "No Show"
)

// Appointment represents a scheduled detailing service instance
type Appointment struct {
	BaseModel
	CustomerID  uint              `gorm:"not null;index" json:"customerId"`
	DateTime    time.Time         `gorm:"not null" json:"dateTime"`
	ServiceType ServiceType       `gorm:"size:20;not null" json:"serviceType"`
	Status      AppointmentStatus `gorm:"size:20;default:'Scheduled'" json:"status"`
	Notes       string            `gorm:"type:text" json:"notes,omitempty"`

	// Relations
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

// CanTransitionTo reports whether the appointment status state machine
// allows moving from the current status to next. Scheduled may move to
// any terminal state; a state may always "move" to itself (no-op), which
// keeps transition endpoints idempotent.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	if s == next {
		return true
	}
	if s != StatusScheduled {
		return false
	}
	switch next {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}
