package wheel

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
)

// RNG Источник случайных индексов
type RNG interface {
	// IntN возвращает равномерно распределенное число из [0, n)
	IntN(n int) int
}

// MathRNG использует math/rand/v2: ограниченная выборка без смещения по модулю
type MathRNG struct{}

func (MathRNG) IntN(n int) int { return mrand.IntN(n) }

// CryptoRNG использует crypto/rand.Int, который отбрасывает значения вне диапазона
type CryptoRNG struct{}

func (CryptoRNG) IntN(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand.Reader не возвращает ошибок начиная с Go 1.24
		panic("crypto rng: " + err.Error())
	}
	return int(v.Int64())
}
