package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCandidateSet_Validate(t *testing.T) {
	assert.ErrorIs(t, CandidateSet{}.Validate(), ErrInsufficientCandidates)
	assert.ErrorIs(t, CandidateSet{{ID: "a"}}.Validate(), ErrInsufficientCandidates)
	assert.ErrorIs(t, CandidateSet{{ID: "a"}, {ID: "a"}}.Validate(), ErrDuplicateCandidate)
	assert.NoError(t, CandidateSet{{ID: "a"}, {ID: "b"}}.Validate())
}

func TestLatestFood(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, ok := LatestFood(nil)
	assert.False(t, ok)

	latest, ok := LatestFood([]Food{
		{ID: "1", CreatedAt: base.Add(time.Hour)},
		{ID: "2", CreatedAt: base},
	})
	assert.True(t, ok)
	assert.Equal(t, "1", latest.ID)

	// Без времени создания побеждает последний в списке
	latest, _ = LatestFood([]Food{{ID: "1"}, {ID: "2"}, {ID: "3"}})
	assert.Equal(t, "3", latest.ID)
}

func TestFoodsToCandidates(t *testing.T) {
	set := FoodsToCandidates([]Food{{ID: "1", Name: "Adobo"}, {ID: "2", Name: "Tinola"}})
	assert.Equal(t, CandidateSet{{ID: "1", Name: "Adobo"}, {ID: "2", Name: "Tinola"}}, set)
}
