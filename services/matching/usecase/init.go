package usecase

import (
	"github.com/piresc/barengan/internal/pkg/models"
	"github.com/piresc/barengan/services/matching"
)

// MatchingUC implements the matching use case interface
type MatchingUC struct {
	cfg  *models.Config
	repo matching.MatchingRepo
	gw   matching.MatchingGW
}

// NewMatchingUC creates a new matching use case
func NewMatchingUC(
	cfg *models.Config,
	repo matching.MatchingRepo,
	gw matching.MatchingGW,
) *MatchingUC {
	return &MatchingUC{
		cfg:  cfg,
		repo: repo,
		gw:   gw,
	}
}
