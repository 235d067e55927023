package config

import (
	"log/slog"
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// Драйверы хранилища еды и истории
const (
	StoreDriverRemote   = "remote"
	StoreDriverPostgres = "postgres"
)

// Источники случайности для колеса
const (
	RNGMath   = "math"
	RNGCrypto = "crypto"
)

type WheelConfig interface {
	FullTurns() int
	SpinDuration() time.Duration
	FrameRate() int
	RNG() string
}

type StoreConfig interface {
	Driver() string
	BaseURL() string
	Timeout() time.Duration
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
}

type LogConfig interface {
	Level() slog.Level
}
