package model

import "time"

// DefaultCategoryID Категория, которую получает еда без явной категории
const DefaultCategoryID = "default"

type Food struct {
	ID         string
	UserID     string
	CategoryID string
	Name       string
	CreatedAt  time.Time
}

// ToItem переводит еду в сектор колеса
func (f Food) ToItem() Item {
	return Item{
		ID:   f.ID,
		Name: f.Name,
	}
}

// FoodsToCandidates Собирает набор кандидатов в порядке списка
func FoodsToCandidates(foods []Food) CandidateSet {
	out := make(CandidateSet, len(foods))
	for i, f := range foods {
		out[i] = f.ToItem()
	}
	return out
}

// LatestFood Возвращает последнюю добавленную еду.
// При равном CreatedAt побеждает та, что дальше в списке
func LatestFood(foods []Food) (Food, bool) {
	if len(foods) == 0 {
		return Food{}, false
	}
	latest := foods[0]
	for _, f := range foods[1:] {
		if !latest.CreatedAt.After(f.CreatedAt) {
			latest = f
		}
	}
	return latest, true
}
