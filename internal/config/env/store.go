package env

import (
	"errors"
	"fmt"
	"food_wheel/internal/config"
	"os"
	"strings"
	"time"
)

const (
	storeDriverEnvName  = "STORE_DRIVER"
	storeBaseURLEnvName = "STORE_BASE_URL"
	storeTimeoutEnvName = "STORE_TIMEOUT"

	defaultStoreTimeout = 10 * time.Second
)

type storeConfig struct {
	driver  string
	baseURL string
	timeout time.Duration
}

func NewStoreConfig() (config.StoreConfig, error) {
	driver := strings.ToLower(os.Getenv(storeDriverEnvName))
	if len(driver) == 0 {
		driver = config.StoreDriverRemote
	}

	cfg := &storeConfig{
		driver:  driver,
		baseURL: strings.TrimRight(os.Getenv(storeBaseURLEnvName), "/"),
		timeout: defaultStoreTimeout,
	}

	if raw := os.Getenv(storeTimeoutEnvName); len(raw) != 0 {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid store timeout: %w", err)
		}
		cfg.timeout = d
	}

	switch driver {
	case config.StoreDriverRemote:
		if len(cfg.baseURL) == 0 {
			return nil, errors.New("store base url not found")
		}
	case config.StoreDriverPostgres:
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}

	return cfg, nil
}

func (cfg *storeConfig) Driver() string {
	return cfg.driver
}

func (cfg *storeConfig) BaseURL() string {
	return cfg.baseURL
}

// Timeout Таймаут HTTP клиента для чтения списков. На запись истории не влияет
func (cfg *storeConfig) Timeout() time.Duration {
	return cfg.timeout
}
