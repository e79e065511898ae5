package ports

import "time"

//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks

// Pass generation outcomes reported to MetricsRecorder.
const (
	PassOutcomeSuccess = "success"
	PassOutcomeFailure = "failure"
)

// MetricsRecorder receives service-level measurements.
type MetricsRecorder interface {
	// IncrementRecordWrite counts one store write ("create" or "update").
	IncrementRecordWrite(operation string)
	// ObservePass records one generation attempt; size is 0 on failure.
	ObservePass(outcome string, d time.Duration, size int)
}
