package domain

import (
	"context"
	"time"

	"github.com/Baby-Ty/Dreamspace-sub000/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx            context.Context
	log            *zap.SugaredLogger
	repo           repository.DataSource
	timeout        time.Duration
	maxConcurrency int
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.DataSource,
	timeout time.Duration,
	maxConcurrency int,
) *Usecase {
	if maxConcurrency <= 0 {
		maxConcurrency = 1
	}
	return &Usecase{
		ctx:            ctx,
		log:            log,
		repo:           repo,
		timeout:        timeout,
		maxConcurrency: maxConcurrency,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
