package middleware

import (
	"context"
	"food_wheel/pkg/resp"
	"food_wheel/pkg/token"
	"log/slog"
	"net/http"
	"strings"
)

type ctxKey int

const userIDKey ctxKey = iota

// accessTokenQuery Браузерный websocket не умеет слать заголовки, токен идет в query
const accessTokenQuery = "access_token"

// Auth проверяет access токен и кладет id пользователя в контекст
func Auth(secretKey []byte, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				resp.WriteError(w, http.StatusUnauthorized, "missing access token")
				return
			}

			claims, err := token.VerifyToken(raw, secretKey)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected", "error", err)
				resp.WriteError(w, http.StatusUnauthorized, "invalid access token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), claims.Subject)))
		})
	}
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if after, ok := strings.CutPrefix(h, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return r.URL.Query().Get(accessTokenQuery)
}
