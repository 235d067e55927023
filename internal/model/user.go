package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims - claims access токена. Subject содержит id пользователя
type UserClaims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}
