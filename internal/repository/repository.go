// Package repository provides factory for data sources.
package repository

import (
	"context"
	"fmt"

	"github.com/Baby-Ty/Dreamspace-sub000/config"
	"github.com/Baby-Ty/Dreamspace-sub000/internal/entities"
	"github.com/Baby-Ty/Dreamspace-sub000/internal/repository/memory"
	"github.com/Baby-Ty/Dreamspace-sub000/internal/repository/postgres"

	"go.uber.org/zap"
)

// DataSource aggregates all persistence interfaces the report engine reads
// from. The engine is agnostic to which backend stands behind it.
type DataSource interface {
	LifecycleInterface
	DirectoryInterface
	DreamInterface
	MeetingInterface
	EngagementInterface
}

// New constructs a data source backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (DataSource, error) {
	switch name {
	case "postgres":
		return postgres.New(ctx, log, cfg), nil
	case "memory":
		return memory.New(log), nil
	default:
		return nil, fmt.Errorf("%w: %s", entities.ErrUnknownBackend, name)
	}
}
