package converter

import (
	"food_wheel/internal/api/dto/food"
	"food_wheel/internal/model"
)

func ToFoodModel(userID string, req food.AddFoodRequest) *model.Food {
	return &model.Food{
		UserID:     userID,
		CategoryID: req.CategoryID,
		Name:       req.Name,
	}
}

func ToFoodResponse(f model.Food) food.FoodResponse {
	return food.FoodResponse{
		ID:         f.ID,
		UserID:     f.UserID,
		CategoryID: f.CategoryID,
		Name:       f.Name,
		CreatedAt:  f.CreatedAt,
	}
}

func ToFoodResponses(foods []model.Food) []food.FoodResponse {
	result := make([]food.FoodResponse, len(foods))
	for i, f := range foods {
		result[i] = ToFoodResponse(f)
	}
	return result
}
