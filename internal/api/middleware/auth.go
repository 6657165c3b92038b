package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-OrderIntakeService/internal/api/handlers"
)

const (
	// UserIDHeader заголовок с ID пользователя, проставляемый шлюзом
	UserIDHeader = "X-User-ID"

	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidUserID = "некорректный ID пользователя"
)

type userIDKey struct{}

// Auth извлекает ID пользователя из заголовка X-User-ID и кладет его в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(UserIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// WithUserID кладет ID пользователя в контекст
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserID достает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}
