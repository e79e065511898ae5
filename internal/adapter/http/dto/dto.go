package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"loyalty-pass-service/internal/core/domain"
	"loyalty-pass-service/internal/core/ports"
)

// PassURI binds the :userId path segment.
type PassURI struct {
	UserID string `uri:"userId" binding:"required,user_id"`
}

// Points is a point count that accepts a JSON number or a numeric string.
// Values are read in base 10; fractions and values outside int64 are rejected.
type Points int64

// UnmarshalJSON parses an integral number or a string holding one.
func (p *Points) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	var s string
	switch v := raw.(type) {
	case json.Number:
		s = v.String()
	case string:
		s = strings.TrimSpace(v)
	default:
		return fmt.Errorf("invalid point value %s", string(b))
	}

	n, err := parsePoints(s)
	if err != nil {
		return fmt.Errorf("invalid point value %s: %w", string(b), err)
	}
	*p = Points(n)
	return nil
}

// maxPointsFloat is 2^63, the first float64 above the int64 range.
const maxPointsFloat = float64(1 << 63)

func parsePoints(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return n, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, errOutOfRange
	}

	// Exponent and trailing-zero forms such as 1e3 or 5.0.
	if strings.ContainsAny(s, "xX_") {
		return 0, errNotInteger
	}
	f, ferr := strconv.ParseFloat(s, 64)
	if ferr != nil && !errors.Is(ferr, strconv.ErrRange) {
		return 0, errNotInteger
	}
	if ferr != nil || f >= maxPointsFloat || f < -maxPointsFloat {
		return 0, errOutOfRange
	}
	if f != math.Trunc(f) {
		return 0, errNotInteger
	}
	return int64(f), nil
}

var (
	errNotInteger = errors.New("not an integer")
	errOutOfRange = errors.New("out of range")
)

func (p *Points) int64Ptr() *int64 {
	if p == nil {
		return nil
	}
	v := int64(*p)
	return &v
}

// LoyaltyRequest is the request body for POST and PUT /pass/:userId.
// A nil field was absent (or null) in the request.
type LoyaltyRequest struct {
	CurrentPoints *Points `json:"currentPoints"`
	TotalPoints   *Points `json:"totalPoints"`
	Prizes        *Points `json:"prizes"`
}

// ToInput converts the request to the service input.
func (r LoyaltyRequest) ToInput() ports.LoyaltyInput {
	return ports.LoyaltyInput{
		CurrentPoints: r.CurrentPoints.int64Ptr(),
		TotalPoints:   r.TotalPoints.int64Ptr(),
		Prizes:        r.Prizes.int64Ptr(),
	}
}

// LoyaltyResponse is the stored record as returned to clients.
type LoyaltyResponse struct {
	CurrentPoints int64 `json:"currentPoints"`
	TotalPoints   int64 `json:"totalPoints"`
	Prizes        int64 `json:"prizes"`
}

// ToLoyaltyResponse converts a domain record.
func ToLoyaltyResponse(rec *domain.LoyaltyRecord) LoyaltyResponse {
	return LoyaltyResponse{
		CurrentPoints: rec.CurrentPoints,
		TotalPoints:   rec.TotalPoints,
		Prizes:        rec.Prizes,
	}
}
