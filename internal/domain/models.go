package domain

import "time"

type EventID string

// Event is one analytics record. TenantID, UserName and Email come from the
// request's client principal. IdentityErr is set when that principal was
// incomplete and the tags were degraded; it is never persisted.
type Event struct {
	ID        EventID
	Action    string
	TenantID  string
	UserName  string
	Email     string
	CreatedAt time.Time
	Score     *int

	IdentityErr error
}
