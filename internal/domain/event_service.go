package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/meetwonka/authinfo/internal/auth"
)

type eventService struct {
	events EventRepository
	now    func() time.Time
	newID  func() string
}

type EventServiceOption func(*eventService)

func WithClock(now func() time.Time) EventServiceOption {
	return func(s *eventService) {
		s.now = now
	}
}

func WithIDGenerator(newID func() string) EventServiceOption {
	return func(s *eventService) {
		s.newID = newID
	}
}

func NewEventService(events EventRepository, opts ...EventServiceOption) EventService {
	s := &eventService{
		events: events,
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Record stores an event tagged with the caller's identity. Missing or
// incomplete auth info never blocks recording; it only degrades the tags.
func (s *eventService) Record(ctx context.Context, input RecordEventInput) (Event, error) {
	action := strings.TrimSpace(input.Action)
	if action == "" {
		return Event{}, fmt.Errorf("%w: action is required", ErrInvalidInput)
	}

	tags, tagsErr := auth.ExtractTags(input.AuthInfo)

	return s.events.Insert(ctx, Event{
		ID:          EventID(s.newID()),
		Action:      action,
		TenantID:    tags.TenantID,
		UserName:    tags.UserName,
		Email:       tags.Email,
		CreatedAt:   s.now().UTC(),
		IdentityErr: tagsErr,
	})
}

func (s *eventService) Score(ctx context.Context, id EventID, input ScoreEventInput) error {
	if _, err := uuid.Parse(string(id)); err != nil {
		return fmt.Errorf("%w: invalid event id", ErrInvalidInput)
	}

	updated, err := s.events.UpdateScore(ctx, id, input.Score)
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotFound
	}
	return nil
}
