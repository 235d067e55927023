package food

import (
	"math/rand/v2"
)

// DefaultSuggestionCount Сколько подсказок отдается по умолчанию
const DefaultSuggestionCount = 5

var suggestionPool = []string{
	"Lechon Manok", "Liempo", "Sinigang", "Adobo", "Tinola",
	"Ngohiong", "Puso", "Ginabot", "Larang", "Balbacua",
	"Jollibee", "McDo", "KFC", "Chowking", "Mang Inasal",
	"Pizza", "Burger", "Fries", "Shawarma", "Sisig",
	"Batchoy", "Lomi", "Pancit Canton", "Bihon", "Bam-i",
	"Siomai", "Tempura", "Kwek-kwek", "Isaw", "Fishball",
	"Halo-halo", "Milk Tea", "Samgyupsal", "Ramen", "Sushi",
}

// Suggestions n разных случайных блюд из встроенного списка (Fisher-Yates)
func (s *serv) Suggestions(n int) []string {
	if n <= 0 {
		return []string{}
	}
	if n > len(suggestionPool) {
		n = len(suggestionPool)
	}

	pool := make([]string, len(suggestionPool))
	copy(pool, suggestionPool)
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	return pool[:n]
}
