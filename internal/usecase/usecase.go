package usecase

import (
	"context"
	"time"

	"github.com/Baby-Ty/Dreamspace-sub000/internal/repository"
	"github.com/Baby-Ty/Dreamspace-sub000/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	ReportUsecaseInterface
	DirectoryUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.DataSource, timeout time.Duration, maxConcurrency int) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout, maxConcurrency)
}
