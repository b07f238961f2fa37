package domain

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"testing"

	"github.com/meetwonka/authinfo/internal/auth"
)

type captureHandler struct {
	records []slog.Record
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool {
	return true
}

func (h *captureHandler) Handle(_ context.Context, record slog.Record) error {
	clone := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(attr slog.Attr) bool {
		clone.AddAttrs(attr)
		return true
	})
	h.records = append(h.records, clone)
	return nil
}

func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler {
	return h
}

func (h *captureHandler) WithGroup(string) slog.Handler {
	return h
}

type stubEventService struct {
	recordFn func(context.Context, RecordEventInput) (Event, error)
	scoreFn  func(context.Context, EventID, ScoreEventInput) error
}

func (s stubEventService) Record(ctx context.Context, input RecordEventInput) (Event, error) {
	if s.recordFn == nil {
		return Event{}, nil
	}
	return s.recordFn(ctx, input)
}

func (s stubEventService) Score(ctx context.Context, id EventID, input ScoreEventInput) error {
	if s.scoreFn == nil {
		return nil
	}
	return s.scoreFn(ctx, id, input)
}

func TestLoggingEventServiceLogsRecord(t *testing.T) {
	handler := &captureHandler{}
	service := NewLoggingEventService(slog.New(handler), stubEventService{
		recordFn: func(_ context.Context, input RecordEventInput) (Event, error) {
			return Event{ID: "event-1", Action: input.Action}, nil
		},
	})

	info := auth.ExampleAuthInfo().AuthInfo
	_, err := service.Record(context.Background(), RecordEventInput{Action: "chat", AuthInfo: &info})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(handler.records) != 1 {
		t.Fatalf("expected 1 log record, got %d", len(handler.records))
	}
	if handler.records[0].Level != slog.LevelInfo || handler.records[0].Message != "event recorded" {
		t.Fatalf("unexpected log record: level=%v message=%q", handler.records[0].Level, handler.records[0].Message)
	}
}

func TestLoggingEventServiceWarnsOnIncompleteAuthInfo(t *testing.T) {
	handler := &captureHandler{}
	service := NewLoggingEventService(slog.New(handler), stubEventService{
		recordFn: func(_ context.Context, input RecordEventInput) (Event, error) {
			return Event{ID: "event-2", Action: input.Action, IdentityErr: auth.ErrMissingClaims}, nil
		},
	})

	_, err := service.Record(context.Background(), RecordEventInput{
		Action:   "chat",
		AuthInfo: &auth.AuthInfo{ClientPrincipal: &auth.ClientPrincipal{UserDetails: "x@example.com"}},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	messages := make([]string, 0, len(handler.records))
	for _, record := range handler.records {
		messages = append(messages, record.Message)
	}
	if !slices.Equal(messages, []string{"received incomplete auth info", "event recorded"}) {
		t.Fatalf("unexpected messages: %q", messages)
	}
	if handler.records[0].Level != slog.LevelWarn {
		t.Fatalf("expected warn level, got %v", handler.records[0].Level)
	}
}

func TestLoggingEventServiceLogsErrors(t *testing.T) {
	handler := &captureHandler{}
	service := NewLoggingEventService(slog.New(handler), stubEventService{
		scoreFn: func(context.Context, EventID, ScoreEventInput) error {
			return ErrNotFound
		},
	})

	err := service.Score(context.Background(), "event-1", ScoreEventInput{Score: 4})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if len(handler.records) != 1 {
		t.Fatalf("expected 1 log record, got %d", len(handler.records))
	}
	if handler.records[0].Level != slog.LevelError || handler.records[0].Message != "score event failed" {
		t.Fatalf("unexpected log record: level=%v message=%q", handler.records[0].Level, handler.records[0].Message)
	}
}

func TestNewLoggingEventServiceReturnsNextWhenLoggerNil(t *testing.T) {
	called := false
	next := stubEventService{
		recordFn: func(context.Context, RecordEventInput) (Event, error) {
			called = true
			return Event{ID: "event-99"}, nil
		},
	}
	wrapped := NewLoggingEventService(nil, next)
	event, err := wrapped.Record(context.Background(), RecordEventInput{Action: "chat"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !called {
		t.Fatal("expected wrapped service to delegate to next")
	}
	if event.ID != "event-99" {
		t.Fatalf("unexpected event id: %s", event.ID)
	}
}

func TestLoggingEventServiceDoesNotWarnForCompleteAuthInfo(t *testing.T) {
	handler := &captureHandler{}
	service := NewLoggingEventService(slog.New(handler), stubEventService{
		recordFn: func(_ context.Context, input RecordEventInput) (Event, error) {
			return Event{ID: "event-3", Action: input.Action}, nil
		},
	})

	if _, err := service.Record(context.Background(), RecordEventInput{Action: "chat"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for _, record := range handler.records {
		if record.Level == slog.LevelWarn {
			t.Fatalf("unexpected warning: %q", record.Message)
		}
	}
}
