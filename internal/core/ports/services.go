package ports

import (
	"context"

	"loyalty-pass-service/internal/core/domain"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

// PassSigner turns a template plus per-user fields into a signed archive.
type PassSigner interface {
	Sign(ctx context.Context, template *domain.PassTemplate, creds *domain.Credentials, fields domain.PassFields) ([]byte, error)
}

// TemplateLoader reads the pass template used for every pass.
type TemplateLoader interface {
	Load(ctx context.Context) (*domain.PassTemplate, error)
}

// --- Service Ports (Business Logic) ---

// LoyaltyInput holds the validated request values. Nil means absent.
type LoyaltyInput struct {
	CurrentPoints *int64
	TotalPoints   *int64
	Prizes        *int64
}

// LoyaltyService defines the user data store operations.
type LoyaltyService interface {
	Create(ctx context.Context, userID string, in LoyaltyInput) (*domain.LoyaltyRecord, error)
	Update(ctx context.Context, userID string, in LoyaltyInput) (*domain.LoyaltyRecord, error)
	Get(ctx context.Context, userID string) (*domain.LoyaltyRecord, error)
}

// PassGenerator builds a signed pass for a user's current record.
type PassGenerator interface {
	Generate(ctx context.Context, userID string, record *domain.LoyaltyRecord) (*domain.PassArtifact, error)
}
