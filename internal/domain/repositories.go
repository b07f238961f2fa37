package domain

import "context"

type EventRepository interface {
	Insert(ctx context.Context, event Event) (Event, error)
	UpdateScore(ctx context.Context, id EventID, score int) (bool, error)
}
