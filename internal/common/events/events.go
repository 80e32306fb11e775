// Package events carries collection change notifications from the services to
// connected dashboards, which re-request the affected collection.
package events

import (
	"context"
	"time"
)

type Action string

const (
	ActionCreated  Action = "created"
	ActionUpdated  Action = "updated"
	ActionDeleted  Action = "deleted"
	ActionResolved Action = "resolved"
)

// Change describes a committed mutation of one record
type Change struct {
	Collection string    `json:"collection"`
	Action     Action    `json:"action"`
	ID         string    `json:"id"`
	At         time.Time `json:"at"`
}

// Notifier fans change events out to subscribers
type Notifier interface {
	Notify(ctx context.Context, change Change)
}

// Nop discards every change
type Nop struct{}

func (Nop) Notify(context.Context, Change) {}
