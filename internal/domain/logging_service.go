package domain

import (
	"context"
	"log/slog"
)

type loggingEventService struct {
	logger *slog.Logger
	next   EventService
}

func NewLoggingEventService(logger *slog.Logger, next EventService) EventService {
	if logger == nil || next == nil {
		return next
	}

	return &loggingEventService{
		logger: logger,
		next:   next,
	}
}

func (s *loggingEventService) Record(ctx context.Context, input RecordEventInput) (Event, error) {
	event, err := s.next.Record(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "record event failed", "action", input.Action, "err", err.Error())
		return Event{}, err
	}

	if event.IdentityErr != nil {
		s.logger.WarnContext(ctx, "received incomplete auth info", "id", string(event.ID), "action", event.Action, "err", event.IdentityErr.Error())
	}

	s.logger.InfoContext(ctx, "event recorded", "id", string(event.ID), "action", event.Action, "tenant_id", event.TenantID)
	return event, nil
}

func (s *loggingEventService) Score(ctx context.Context, id EventID, input ScoreEventInput) error {
	err := s.next.Score(ctx, id, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "score event failed", "id", string(id), "err", err.Error())
		return err
	}

	s.logger.DebugContext(ctx, "event scored", "id", string(id), "score", input.Score)
	return nil
}
