package model

import "fmt"

// MinCandidates Минимальное количество кандидатов для запуска колеса
const MinCandidates = 2

// Item - один сектор колеса
type Item struct {
	ID   string
	Name string
}

// CandidateSet - упорядоченный набор кандидатов.
// Порядок задает положение секторов: элемент i занимает сектор i
type CandidateSet []Item

// Validate проверяет, что кандидатов не меньше двух и id не повторяются
func (c CandidateSet) Validate() error {
	if len(c) < MinCandidates {
		return ErrInsufficientCandidates
	}

	seen := make(map[string]struct{}, len(c))
	for _, item := range c {
		if _, ok := seen[item.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateCandidate, item.ID)
		}
		seen[item.ID] = struct{}{}
	}

	return nil
}

// Clone возвращает копию набора, чтобы порядок не поменялся снаружи во время спина
func (c CandidateSet) Clone() CandidateSet {
	if c == nil {
		return nil
	}
	out := make(CandidateSet, len(c))
	copy(out, c)
	return out
}
