// Package store holds the persistence backends for reports and the other
// stateful collaborators: MinIO for static assets and Redis for events.
package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/ayush/bemestar-report/internal/models"
)

// ReportStore persists reports. FindByID reports a missing id with
// found == false and a nil error.
type ReportStore interface {
	Save(ctx context.Context, r *models.Report) error
	FindByID(ctx context.Context, id string) (r *models.Report, found bool, err error)
}

// validID reports whether id can match a stored report.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
