// Package events publishes archive and account lifecycle events for
// downstream consumers.
package events

import (
	"context"
	"time"
)

const (
	TypeArchiveSubmitted = "archive.submitted"
	TypeArchiveApproved  = "archive.approved"
	TypeArchiveDeleted   = "archive.deleted"
	TypeAccountDeleted   = "account.deleted"
)

type Event struct {
	Type       string    `json:"type"`
	UserID     string    `json:"user_id"`
	ArchiveID  string    `json:"archive_id,omitempty"`
	Status     string    `json:"status,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher delivers events. Callers treat failures as non-fatal: the
// database write has already committed by the time an event is published.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
