package model

import "errors"

var (
	// ErrInsufficientCandidates - на колесе меньше двух кандидатов
	ErrInsufficientCandidates = errors.New("at least 2 candidates are required to spin")
	// ErrDuplicateCandidate - id кандидата встречается в наборе дважды
	ErrDuplicateCandidate = errors.New("duplicate candidate id")
	// ErrAlreadySpinning - повторный старт во время вращения
	ErrAlreadySpinning = errors.New("wheel is already spinning")
	// ErrRemoteWrite - не удалось записать историю в хранилище
	ErrRemoteWrite = errors.New("remote history write failed")
	ErrInvalidGeometry = errors.New("invalid wheel geometry")

	ErrFoodNotFound  = errors.New("food not found")
	ErrEmptyFoodName = errors.New("food name is required")
	ErrUnauthorized  = errors.New("unauthorized")
)
