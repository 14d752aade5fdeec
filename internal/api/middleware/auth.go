package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

const (
	// HeaderUsername имя пользователя, проставленное вышестоящим шлюзом
	HeaderUsername = "X-Username"

	// HeaderStaff флаг персонала, проставленный вышестоящим шлюзом
	HeaderStaff = "X-Staff"
)

const msgMissingUsername = "отсутствует имя пользователя"

type contextKey string

const (
	usernameKey contextKey = "username"
	staffKey    contextKey = "staff"
)

// Auth извлекает идентичность запроса из заголовков шлюза
// Аутентификация выполняется выше по стеку: здесь заголовкам доверяем,
// отсутствие имени пользователя - 401
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username := r.Header.Get(HeaderUsername)
		if username == "" {
			handlers.RespondUnauthorized(w, msgMissingUsername)
			return
		}

		ctx := context.WithValue(r.Context(), usernameKey, username)
		ctx = context.WithValue(ctx, staffKey, r.Header.Get(HeaderStaff) == "true")

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUsername возвращает имя пользователя из контекста запроса
func GetUsername(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameKey).(string)
	return username, ok
}

// IsStaff возвращает true, если запрос выполнен от имени персонала
func IsStaff(ctx context.Context) bool {
	staff, ok := ctx.Value(staffKey).(bool)
	return ok && staff
}

// RequireStaff пропускает только запросы персонала
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsStaff(r.Context()) {
			handlers.RespondForbidden(w, "доступ только для персонала")
			return
		}
		next.ServeHTTP(w, r)
	})
}
