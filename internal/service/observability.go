package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// UseCaseEvent is one service call observed end to end. UserID is the subject
// profile; Status carries the regeneration outcome when the use case has one.
type UseCaseEvent struct {
	Name      string
	UserID    string
	Status    string
	Forced    bool
	Duration  time.Duration
	Err       error
	StartedAt time.Time
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver writes service use-case events to the provided writer.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := make([]any, 0, 12)
	attrs = append(attrs,
		"use_case", event.Name,
		"user_id", event.UserID,
		"duration_ms", event.Duration.Milliseconds(),
	)
	if event.Status != "" {
		attrs = append(attrs, "status", event.Status)
	}
	if event.Forced {
		attrs = append(attrs, "forced", true)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "service_use_case", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "service_use_case", attrs...)
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}
