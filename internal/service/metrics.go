package service

import (
	"time"

	"loyalty-pass-service/internal/core/ports"
)

type nopRecorder struct{}

func (nopRecorder) IncrementRecordWrite(string)            {}
func (nopRecorder) ObservePass(string, time.Duration, int) {}

func recorderOrNop(m ports.MetricsRecorder) ports.MetricsRecorder {
	if m == nil {
		return nopRecorder{}
	}
	return m
}
