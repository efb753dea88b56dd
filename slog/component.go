package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/uidoc"
)

// Ensure LoggingComponentService implements uidoc.ComponentService.
var _ uidoc.ComponentService = (*LoggingComponentService)(nil)

// LoggingComponentService wraps a ComponentService with per-operation logging.
type LoggingComponentService struct {
	next   uidoc.ComponentService
	logger *slog.Logger
}

// NewLoggingComponentService creates a new LoggingComponentService.
func NewLoggingComponentService(next uidoc.ComponentService, logger *slog.Logger) *LoggingComponentService {
	return &LoggingComponentService{next: next, logger: logger}
}

// ListComponents delegates to the wrapped service and logs the operation.
func (s *LoggingComponentService) ListComponents(ctx context.Context) (components []*uidoc.Component, err error) {
	defer func(begin time.Time) {
		s.logger.Info("list components",
			"count", len(components),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ListComponents(ctx)
}

// GetComponentDetails delegates to the wrapped service and logs the operation.
func (s *LoggingComponentService) GetComponentDetails(ctx context.Context, name string) (detail *uidoc.ComponentDetail, err error) {
	defer func(begin time.Time) {
		s.logger.Info("component details",
			"name", name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.GetComponentDetails(ctx, name)
}

// GetComponentExamples delegates to the wrapped service and logs the operation.
func (s *LoggingComponentService) GetComponentExamples(ctx context.Context, name string) (examples []*uidoc.Example, err error) {
	defer func(begin time.Time) {
		s.logger.Info("component examples",
			"name", name,
			"count", len(examples),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.GetComponentExamples(ctx, name)
}

// SearchComponents delegates to the wrapped service and logs the operation.
func (s *LoggingComponentService) SearchComponents(ctx context.Context, query string) (components []*uidoc.Component, err error) {
	defer func(begin time.Time) {
		s.logger.Info("component search",
			"query", query,
			"count", len(components),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchComponents(ctx, query)
}
