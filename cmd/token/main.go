// Выпускает access токен для локальной отладки API
package main

import (
	"flag"
	"fmt"
	"food_wheel/internal/config"
	"food_wheel/internal/config/env"
	"food_wheel/pkg/token"
	"log/slog"
	"os"
	"time"
)

func main() {
	userID := flag.String("user", "", "user id (token subject)")
	name := flag.String("name", "", "user display name")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	_ = config.Load(".env")

	jwtCfg, err := env.NewJWTConfig()
	if err != nil {
		slog.Error("failed to get jwt config", "error", err)
		os.Exit(1)
	}

	tok, err := token.GenerateAccessToken(*userID, *name, jwtCfg.AccessTokenSecretKey(), *ttl)
	if err != nil {
		slog.Error("failed to generate token", "error", err)
		os.Exit(1)
	}

	fmt.Println(tok)
}
