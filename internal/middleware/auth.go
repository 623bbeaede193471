package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"wheel_backend/internal/config"
	"wheel_backend/pkg/token"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// Auth - проверяет Bearer access токен и кладет ID пользователя в контекст
func Auth(jwtConfig config.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, "missing token", http.StatusUnauthorized)
				return
			}

			claims, err := token.VerifyToken(
				strings.TrimPrefix(header, "Bearer "),
				jwtConfig.AccessTokenSecretKey(),
			)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			userID, err := strconv.Atoi(claims.ID)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext - ID пользователя, положенный Auth middleware
func UserIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	return id, ok
}
