package analysis

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ayush/bemestar-report/internal/models"
	"github.com/ayush/bemestar-report/internal/store"
)

// EventPublisher is notified after a report is saved.
type EventPublisher interface {
	ReportCreated(ctx context.Context, r *models.Report) error
}

// Service runs the analysis pipeline: prompt, generation, persistence.
type Service struct {
	gen    Generator
	store  store.ReportStore
	events EventPublisher
	logger *zap.Logger
	newID  func() string
}

// NewService wires the pipeline. events may be nil.
func NewService(gen Generator, reports store.ReportStore, events EventPublisher, logger *zap.Logger) *Service {
	return &Service{
		gen:    gen,
		store:  reports,
		events: events,
		logger: logger,
		newID:  uuid.NewString,
	}
}

// Analyze generates a report for in and persists it. Nothing is saved when
// generation fails.
func (s *Service) Analyze(ctx context.Context, in models.UserInput) (*models.Report, error) {
	text, err := s.gen.Generate(ctx, BuildPrompt(in))
	if err != nil {
		return nil, fmt.Errorf("generate report: %w", err)
	}

	report := &models.Report{
		ID:       s.newID(),
		UserName: in.DisplayName(),
		Input:    in,
		Text:     text,
	}
	if err := s.store.Save(ctx, report); err != nil {
		return nil, fmt.Errorf("save report: %w", err)
	}
	s.logger.Info("report generated and saved", zap.String("id", report.ID))

	if s.events != nil {
		if err := s.events.ReportCreated(ctx, report); err != nil {
			s.logger.Warn("publish report event", zap.String("id", report.ID), zap.Error(err))
		}
	}
	return report, nil
}

// Find returns the stored report for id. found is false when none exists.
func (s *Service) Find(ctx context.Context, id string) (*models.Report, bool, error) {
	return s.store.FindByID(ctx, id)
}
