package env

import (
	"errors"
	"fmt"
	"food_wheel/internal/config"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	wheelConfigPathEnvName = "WHEEL_CONFIG"
	defaultWheelConfigPath = "config.yaml"

	// Значения по умолчанию: 5 полных оборотов за 4 секунды
	defaultFullTurns    = 5
	defaultSpinDuration = 4000 * time.Millisecond
	defaultFrameRate    = 30
	maxFrameRate        = 120
)

type wheelConfig struct {
	fullTurns    int
	spinDuration time.Duration
	frameRate    int
	rng          string
}

// wheelFile - секция wheel в config.yaml
type wheelFile struct {
	Wheel struct {
		FullTurns    *int   `yaml:"full_turns"`
		SpinDuration string `yaml:"spin_duration"`
		FrameRate    *int   `yaml:"frame_rate"`
		RNG          string `yaml:"rng"`
	} `yaml:"wheel"`
}

// NewWheelConfig читает путь к YAML из WHEEL_CONFIG, по умолчанию config.yaml
func NewWheelConfig() (config.WheelConfig, error) {
	path := os.Getenv(wheelConfigPathEnvName)
	if len(path) == 0 {
		path = defaultWheelConfigPath
	}
	return NewWheelConfigFromYAML(path)
}

// NewWheelConfigFromYAML Загружает настройки колеса.
// Если файла нет - возвращаются значения по умолчанию
func NewWheelConfigFromYAML(path string) (config.WheelConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultWheelConfig(), nil
		}
		return nil, fmt.Errorf("read wheel config: %w", err)
	}
	return parseWheelConfig(raw)
}

// DefaultWheelConfig Настройки колеса по умолчанию
func DefaultWheelConfig() config.WheelConfig {
	return &wheelConfig{
		fullTurns:    defaultFullTurns,
		spinDuration: defaultSpinDuration,
		frameRate:    defaultFrameRate,
		rng:          config.RNGMath,
	}
}

func parseWheelConfig(raw []byte) (*wheelConfig, error) {
	var f wheelFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse wheel config: %w", err)
	}

	cfg := &wheelConfig{
		fullTurns:    defaultFullTurns,
		spinDuration: defaultSpinDuration,
		frameRate:    defaultFrameRate,
		rng:          config.RNGMath,
	}

	if f.Wheel.FullTurns != nil {
		if *f.Wheel.FullTurns < 1 {
			return nil, fmt.Errorf("full_turns must be positive, got %d", *f.Wheel.FullTurns)
		}
		cfg.fullTurns = *f.Wheel.FullTurns
	}

	if len(f.Wheel.SpinDuration) != 0 {
		d, err := time.ParseDuration(f.Wheel.SpinDuration)
		if err != nil {
			return nil, fmt.Errorf("invalid spin_duration: %w", err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("spin_duration must be positive, got %s", d)
		}
		cfg.spinDuration = d
	}

	if f.Wheel.FrameRate != nil {
		if *f.Wheel.FrameRate < 1 || *f.Wheel.FrameRate > maxFrameRate {
			return nil, fmt.Errorf("frame_rate must be between 1 and %d, got %d", maxFrameRate, *f.Wheel.FrameRate)
		}
		cfg.frameRate = *f.Wheel.FrameRate
	}

	switch f.Wheel.RNG {
	case "":
	case config.RNGMath, config.RNGCrypto:
		cfg.rng = f.Wheel.RNG
	default:
		return nil, fmt.Errorf("unknown rng %q", f.Wheel.RNG)
	}

	return cfg, nil
}

func (cfg *wheelConfig) FullTurns() int {
	return cfg.fullTurns
}

func (cfg *wheelConfig) SpinDuration() time.Duration {
	return cfg.spinDuration
}

// FrameRate Частота кадров, с которой стрим отдает угол во время вращения
func (cfg *wheelConfig) FrameRate() int {
	return cfg.frameRate
}

func (cfg *wheelConfig) RNG() string {
	return cfg.rng
}
