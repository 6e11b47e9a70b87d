package middleware

import (
	"PassKeeper/internal/token"
	"context"
	"net/http"
	"strings"
)

type contextKey string

const (
	userIDKey    contextKey = "user_id"
	userEmailKey contextKey = "user_email"
)

// WithAuth — шлюз аутентификации для защищённых маршрутов.
// Требует заголовок Authorization: Bearer <token>; при успехе кладёт
// user_id и email в контекст, иначе отвечает 401 и до хендлера не доходит.
// Причина отказа (нет токена / подпись / истёк) клиенту не сообщается.
func WithAuth(tm *token.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			scheme, raw, ok := strings.Cut(authHeader, " ")
			if !ok || scheme != "Bearer" || raw == "" {
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			claims, err := tm.Verify(raw)
			if err != nil {
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			ctx = context.WithValue(ctx, userEmailKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext возвращает ID пользователя, установленный WithAuth.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// GetUserEmailFromContext возвращает email пользователя, установленный WithAuth.
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(userEmailKey).(string)
	return email, ok
}
