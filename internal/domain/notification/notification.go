// Package notification models the side effects of access-state transitions.
// Workflow use cases build Effect values after the state write commits; a
// dispatcher delivers them best effort. Delivery failure never rolls back or
// delays the access decision.
package notification

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventType classifies a notification.
type EventType string

const (
	EventAccessRequested      EventType = "access_requested"
	EventAccessApproved       EventType = "access_approved"
	EventAccessRejected       EventType = "access_rejected"
	EventAccessRevoked        EventType = "access_revoked"
	EventSubscriptionExtended EventType = "subscription_extended"
)

var ValidEventTypes = map[EventType]bool{
	EventAccessRequested:      true,
	EventAccessApproved:       true,
	EventAccessRejected:       true,
	EventAccessRevoked:        true,
	EventSubscriptionExtended: true,
}

// Effect is a pending notification produced by a workflow transition.
type Effect struct {
	RecipientID uint
	EventType   EventType
	Title       string
	Message     string
}

// Notification is a delivered in-app notification row.
type Notification struct {
	id          uint
	uuid        string
	recipientID uint
	eventType   EventType
	title       string
	message     string
	read        bool
	createdAt   time.Time
}

// NewNotification materializes an effect for in-app delivery.
func NewNotification(effect Effect, now time.Time) (*Notification, error) {
	if effect.RecipientID == 0 {
		return nil, fmt.Errorf("recipient ID is required")
	}
	if !ValidEventTypes[effect.EventType] {
		return nil, fmt.Errorf("invalid event type: %s", effect.EventType)
	}

	return &Notification{
		uuid:        uuid.NewString(),
		recipientID: effect.RecipientID,
		eventType:   effect.EventType,
		title:       effect.Title,
		message:     effect.Message,
		createdAt:   now,
	}, nil
}

// ReconstructNotification reconstructs a notification from persistence.
func ReconstructNotification(id uint, uid string, recipientID uint, eventType EventType, title, message string, read bool, createdAt time.Time) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if !ValidEventTypes[eventType] {
		return nil, fmt.Errorf("invalid event type: %s", eventType)
	}
	return &Notification{
		id:          id,
		uuid:        uid,
		recipientID: recipientID,
		eventType:   eventType,
		title:       title,
		message:     message,
		read:        read,
		createdAt:   createdAt,
	}, nil
}

func (n *Notification) ID() uint             { return n.id }
func (n *Notification) UUID() string         { return n.uuid }
func (n *Notification) RecipientID() uint    { return n.recipientID }
func (n *Notification) EventType() EventType { return n.eventType }
func (n *Notification) Title() string        { return n.title }
func (n *Notification) Message() string      { return n.message }
func (n *Notification) Read() bool           { return n.read }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

// SetID sets the notification ID (only for persistence layer use)
func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

// MarkRead marks the notification as read.
func (n *Notification) MarkRead() {
	n.read = true
}
