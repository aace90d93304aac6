// Package notification orchestrates intake and retrieval of notification
// records: normalization, persistence with explicit deadlines, and bounded
// retries for the idempotent read path.
package notification

import (
	"context"
	"time"

	"github.com/chatwith-notifications/internal/domain"
	"github.com/chatwith-notifications/internal/infrastructure/dynamo"
	"github.com/chatwith-notifications/internal/observability/metrics"
	"github.com/chatwith-notifications/internal/pkg/backoff"
	"github.com/chatwith-notifications/internal/pkg/logger"
	"go.uber.org/zap"
)

// Repository is the minimal persistence interface the service requires.
type Repository interface {
	Insert(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	List(ctx context.Context, p dynamo.ListParams) ([]domain.Notification, int, error)
}

type Service interface {
	Create(ctx context.Context, in domain.NotificationInput) (*domain.Notification, error)
	List(ctx context.Context, p dynamo.ListParams) ([]domain.Notification, int, error)
}

// Options bound every store call. MaxRetries applies to reads only.
type Options struct {
	StoreTimeout   time.Duration
	MaxRetries     int
	RetryBaseDelay time.Duration
}

type service struct {
	repo Repository
	opts Options
}

func NewService(repo Repository, opts Options) Service {
	if opts.StoreTimeout <= 0 {
		opts.StoreTimeout = 5 * time.Second
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 1
	}
	return &service{repo: repo, opts: opts}
}

// Create normalizes the validated input and inserts it. The insert runs
// under a deadline but is never retried: without an idempotency key a retry
// could store a duplicate submission.
func (s *service) Create(ctx context.Context, in domain.NotificationInput) (*domain.Notification, error) {
	n := in.Normalize(time.Now().UTC())

	ctx, cancel := context.WithTimeout(ctx, s.opts.StoreTimeout)
	defer cancel()

	stored, err := s.repo.Insert(ctx, n)
	if err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("insert").Inc()
		return nil, err
	}
	metrics.NotificationsCreatedTotal.Inc()
	return stored, nil
}

// List fetches a page of notifications. Reads are idempotent, so transient
// store failures are retried with exponential backoff up to MaxRetries
// attempts, each under its own deadline.
func (s *service) List(ctx context.Context, p dynamo.ListParams) ([]domain.Notification, int, error) {
	var lastErr error
	for attempt := 1; attempt <= s.opts.MaxRetries; attempt++ {
		if d := backoff.Delay(attempt, s.opts.RetryBaseDelay); d > 0 {
			select {
			case <-time.After(d):
			case <-ctx.Done():
				return nil, 0, ctx.Err()
			}
		}

		attemptCtx, cancel := context.WithTimeout(ctx, s.opts.StoreTimeout)
		rows, count, err := s.repo.List(attemptCtx, p)
		cancel()
		if err == nil {
			return rows, count, nil
		}
		lastErr = err
		logger.L().Warn("list notifications attempt failed",
			zap.Int("attempt", attempt), zap.Error(err))
	}
	metrics.StoreErrorsTotal.WithLabelValues("list").Inc()
	return nil, 0, lastErr
}
