package ports

import (
	"context"

	"loyalty-pass-service/internal/core/domain"
)

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

// LoyaltyRepository stores loyalty records by user ID.
type LoyaltyRepository interface {
	// Save replaces the record for userID wholesale.
	Save(ctx context.Context, userID string, record domain.LoyaltyRecord) error
	// Get returns nil, nil when the user is unknown.
	Get(ctx context.Context, userID string) (*domain.LoyaltyRecord, error)
}
