package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"loyalty-pass-service/internal/core/domain"
	"loyalty-pass-service/internal/core/ports"
	"loyalty-pass-service/pkg/apperror"

	"github.com/rs/zerolog"
)

// Field labels shown on the pass.
const (
	labelCurrentPoints = "Current Points"
	labelTotalPoints   = "Total Points"
	labelPrizes        = "Prizes Earned"
)

// PassServiceImpl implements ports.PassGenerator.
type PassServiceImpl struct {
	creds     *domain.Credentials
	templates ports.TemplateLoader
	signer    ports.PassSigner
	metrics   ports.MetricsRecorder
	log       zerolog.Logger
}

// NewPassService creates a new PassServiceImpl. creds are shared read-only
// by every call; m may be nil.
func NewPassService(
	creds *domain.Credentials,
	templates ports.TemplateLoader,
	signer ports.PassSigner,
	m ports.MetricsRecorder,
	log zerolog.Logger,
) *PassServiceImpl {
	return &PassServiceImpl{
		creds:     creds,
		templates: templates,
		signer:    signer,
		metrics:   recorderOrNop(m),
		log:       log,
	}
}

// Generate builds a signed pass for userID from record. Every failure is
// reported as SYS_002 with the cause wrapped.
func (s *PassServiceImpl) Generate(ctx context.Context, userID string, record *domain.LoyaltyRecord) (*domain.PassArtifact, error) {
	start := time.Now()

	data, err := s.build(ctx, userID, record)
	if err != nil {
		s.metrics.ObservePass(ports.PassOutcomeFailure, time.Since(start), 0)
		return nil, apperror.ErrPassGeneration(err)
	}
	s.metrics.ObservePass(ports.PassOutcomeSuccess, time.Since(start), len(data))

	s.log.Info().
		Str("user_id", userID).
		Int("size", len(data)).
		Dur("latency", time.Since(start)).
		Msg("pass generated")

	return &domain.PassArtifact{SerialNumber: userID, Data: data}, nil
}

func (s *PassServiceImpl) build(ctx context.Context, userID string, record *domain.LoyaltyRecord) ([]byte, error) {
	if record == nil {
		return nil, fmt.Errorf("no loyalty data for user %s", userID)
	}
	if !s.creds.Complete() {
		return nil, fmt.Errorf("signing credentials not loaded: missing %v", s.creds.Missing())
	}

	tmpl, err := s.templates.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading template: %w", err)
	}

	data, err := s.signer.Sign(ctx, tmpl, s.creds, BuildPassFields(userID, *record))
	if err != nil {
		return nil, fmt.Errorf("signing pass: %w", err)
	}
	if len(data) == 0 {
		return nil, errors.New("signer returned an empty archive")
	}
	return data, nil
}

// BuildPassFields maps a loyalty record onto the generic pass layout: one
// primary field, two secondary fields and a QR code carrying the user ID.
func BuildPassFields(userID string, record domain.LoyaltyRecord) domain.PassFields {
	return domain.PassFields{
		SerialNumber: userID,
		Style:        domain.PassStyleGeneric,
		PrimaryFields: []domain.PassField{
			{Key: "currentPoints", Label: labelCurrentPoints, Value: record.CurrentPoints},
		},
		SecondaryFields: []domain.PassField{
			{Key: "totalPoints", Label: labelTotalPoints, Value: record.TotalPoints},
			{Key: "prizes", Label: labelPrizes, Value: record.Prizes},
		},
		Barcode: domain.Barcode{
			Message:         userID,
			Format:          domain.BarcodeFormatQR,
			MessageEncoding: domain.BarcodeEncodingLatin1,
			AltText:         userID,
		},
	}
}
