package service

import (
	"context"

	"loyalty-pass-service/internal/core/domain"
	"loyalty-pass-service/internal/core/ports"
	"loyalty-pass-service/pkg/apperror"

	"github.com/rs/zerolog"
)

// LoyaltyServiceImpl implements ports.LoyaltyService.
type LoyaltyServiceImpl struct {
	repo    ports.LoyaltyRepository
	metrics ports.MetricsRecorder
	log     zerolog.Logger
}

// NewLoyaltyService creates a new LoyaltyServiceImpl. m may be nil.
func NewLoyaltyService(repo ports.LoyaltyRepository, m ports.MetricsRecorder, log zerolog.Logger) *LoyaltyServiceImpl {
	return &LoyaltyServiceImpl{
		repo:    repo,
		metrics: recorderOrNop(m),
		log:     log,
	}
}

// Create overwrites the user's record; absent fields become 0.
func (s *LoyaltyServiceImpl) Create(ctx context.Context, userID string, in ports.LoyaltyInput) (*domain.LoyaltyRecord, error) {
	return s.save(ctx, "create", userID, in)
}

// Update overwrites the user's record. currentPoints is required; the
// other fields default to 0 like Create.
func (s *LoyaltyServiceImpl) Update(ctx context.Context, userID string, in ports.LoyaltyInput) (*domain.LoyaltyRecord, error) {
	if in.CurrentPoints == nil {
		return nil, apperror.ErrMissingCurrentPoints()
	}
	return s.save(ctx, "update", userID, in)
}

// Get returns the user's record or LOY_002.
func (s *LoyaltyServiceImpl) Get(ctx context.Context, userID string) (*domain.LoyaltyRecord, error) {
	rec, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if rec == nil {
		return nil, apperror.ErrUserNotFound()
	}
	return rec, nil
}

func (s *LoyaltyServiceImpl) save(ctx context.Context, op, userID string, in ports.LoyaltyInput) (*domain.LoyaltyRecord, error) {
	rec := domain.NewLoyaltyRecord(in.CurrentPoints, in.TotalPoints, in.Prizes)
	if err := s.repo.Save(ctx, userID, rec); err != nil {
		return nil, apperror.InternalError(err)
	}
	s.metrics.IncrementRecordWrite(op)

	s.log.Debug().
		Str("operation", op).
		Str("user_id", userID).
		Int64("current_points", rec.CurrentPoints).
		Int64("total_points", rec.TotalPoints).
		Int64("prizes", rec.Prizes).
		Msg("loyalty record saved")

	return &rec, nil
}
