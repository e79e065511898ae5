package domain

// LoyaltyRecord is the point balance kept for one user.
type LoyaltyRecord struct {
	CurrentPoints int64 `json:"currentPoints"`
	TotalPoints   int64 `json:"totalPoints"`
	Prizes        int64 `json:"prizes"`
}

// NewLoyaltyRecord builds a record from optional values; absent ones are 0.
func NewLoyaltyRecord(currentPoints, totalPoints, prizes *int64) LoyaltyRecord {
	return LoyaltyRecord{
		CurrentPoints: valueOrZero(currentPoints),
		TotalPoints:   valueOrZero(totalPoints),
		Prizes:        valueOrZero(prizes),
	}
}

func valueOrZero(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
