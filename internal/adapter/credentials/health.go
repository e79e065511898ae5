package credentials

import (
	"context"
	"fmt"
	"strings"

	"loyalty-pass-service/internal/core/domain"
)

// HealthCheck implements ports.HealthChecker for the loaded credentials.
type HealthCheck struct {
	creds *domain.Credentials
}

// NewHealthCheck creates a credentials health checker.
func NewHealthCheck(creds *domain.Credentials) *HealthCheck {
	return &HealthCheck{creds: creds}
}

// Ping fails when any signing artifact is missing.
func (h *HealthCheck) Ping(_ context.Context) error {
	if h.creds.Complete() {
		return nil
	}
	return fmt.Errorf("missing %s", strings.Join(h.creds.Missing(), ", "))
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "pass_credentials"
}
