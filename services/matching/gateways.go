package matching

import (
	"context"

	"github.com/piresc/barengan/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/barengan/services/matching MatchingGW

// MatchingGW publishes events back onto the intake queue
type MatchingGW interface {
	PublishRequeue(ctx context.Context, envelope *models.EventEnvelope) error
}
