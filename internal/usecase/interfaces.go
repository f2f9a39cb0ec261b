package usecase

import (
	"context"

	"github.com/Baby-Ty/Dreamspace-sub000/internal/entities"
)

// ReportUsecaseInterface abstracts report generation for the delivery layer.
type ReportUsecaseInterface interface {
	GenerateReport(ctx context.Context, cfg entities.ReportConfig) (entities.ReportArtifact, error)
	RosterPreview(ctx context.Context, selection entities.TeamSelection) ([]entities.User, error)
}

// DirectoryUsecaseInterface abstracts roster/team lookups.
type DirectoryUsecaseInterface interface {
	Teams(ctx context.Context) ([]entities.Team, error)
}
