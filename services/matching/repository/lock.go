package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/barengan/internal/pkg/constants"
	"github.com/piresc/barengan/internal/pkg/models"
)

// AcquireFanoutLock takes the short per-trip lock that serializes fan-out across instances
func (r *MatchingRepo) AcquireFanoutLock(ctx context.Context, tripID string, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf(constants.KeyFanoutLock, tripID)
	ok, err := r.redisClient.SetNX(ctx, key, models.Now().Unix(), ttl)
	if err != nil {
		return false, models.Transient(fmt.Errorf("failed to acquire fanout lock: %w", err))
	}
	return ok, nil
}

// ReleaseFanoutLock drops the per-trip fan-out lock
func (r *MatchingRepo) ReleaseFanoutLock(ctx context.Context, tripID string) error {
	key := fmt.Sprintf(constants.KeyFanoutLock, tripID)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return models.Transient(fmt.Errorf("failed to release fanout lock: %w", err))
	}
	return nil
}

// IncrRequeueAttempt counts requeues of a trip that found no candidates
func (r *MatchingRepo) IncrRequeueAttempt(ctx context.Context, tripID string, ttl time.Duration) (int64, error) {
	key := fmt.Sprintf(constants.KeyRequeueAttempt, tripID)
	n, err := r.redisClient.Incr(ctx, key, ttl)
	if err != nil {
		return 0, models.Transient(fmt.Errorf("failed to count requeue attempt: %w", err))
	}
	return n, nil
}
