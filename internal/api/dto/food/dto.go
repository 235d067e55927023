package food

import "time"

type AddFoodRequest struct {
	Name       string `json:"name"`
	CategoryID string `json:"category_id,omitempty"` // По умолчанию "default"
}

type FoodResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	CategoryID string    `json:"category_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}

type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}
