package history

import "time"

type RecordResponse struct {
	ID         string    `json:"id"`
	FoodID     string    `json:"food_id"`
	RecordedAt time.Time `json:"recorded_at"`
}
