package wheel

import (
	"fmt"
	"food_wheel/internal/model"
)

// Select выбирает победителя равновероятно среди кандидатов.
// При меньше чем двух кандидатах энтропия не тратится
func Select(candidates model.CandidateSet, rng RNG) (model.Item, int, error) {
	n := len(candidates)
	if n < model.MinCandidates {
		return model.Item{}, 0, model.ErrInsufficientCandidates
	}

	idx := rng.IntN(n)
	if idx < 0 || idx >= n {
		return model.Item{}, 0, fmt.Errorf("rng returned %d outside [0, %d)", idx, n)
	}

	return candidates[idx], idx, nil
}
