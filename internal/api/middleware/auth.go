package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
)

// Заголовки выставляет gateway после аутентификации
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"

	RoleAdmin = "admin"
)

const (
	msgMissingUserID = "falta el identificador de usuario"
	msgInvalidUserID = "identificador de usuario inválido"
)

type contextKey string

const (
	userIDKey  contextKey = "userID"
	isAdminKey contextKey = "isAdmin"
)

// Auth требует X-User-ID (UUID) и кладет пользователя и роль в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.Header.Get(HeaderUserID))
		if raw == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		isAdmin := strings.EqualFold(strings.TrimSpace(r.Header.Get(HeaderUserRole)), RoleAdmin)

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, isAdminKey, isAdmin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth кладет пользователя в контекст, если заголовки переданы.
// Анонимный запрос проходит дальше, некорректный X-User-ID дает 401
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.TrimSpace(r.Header.Get(HeaderUserID)) == "" {
			next.ServeHTTP(w, r)
			return
		}
		Auth(next).ServeHTTP(w, r)
	})
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok
}

// IsAdmin возвращает true для пользователя с ролью admin
func IsAdmin(ctx context.Context) bool {
	isAdmin, _ := ctx.Value(isAdminKey).(bool)
	return isAdmin
}

// WithUser кладет пользователя в контекст, используется в тестах обработчиков
func WithUser(ctx context.Context, userID uuid.UUID, isAdmin bool) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, isAdminKey, isAdmin)
}
