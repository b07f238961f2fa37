package domain

import "context"

type EventService interface {
	Record(ctx context.Context, input RecordEventInput) (Event, error)
	Score(ctx context.Context, id EventID, input ScoreEventInput) error
}
