package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/api/handlers"
)

const (
	// HeaderUserID ID пользователя, проставляется gateway после проверки токена
	HeaderUserID = "X-User-ID"
	// HeaderUserRole роль пользователя (ADMIN / SOCIO / EXTERNO)
	HeaderUserRole = "X-User-Role"

	roleAdmin = "admin"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	userRoleKey
)

// Auth требует X-User-ID и кладет пользователя в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(HeaderUserID))
		if userID == "" {
			handlers.RespondUnauthorized(w, "se requiere autenticación")
			return
		}

		role := strings.ToLower(strings.TrimSpace(r.Header.Get(HeaderUserRole)))

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, userRoleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly пропускает только администраторов. Ставится после Auth.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if role, _ := r.Context().Value(userRoleKey).(string); role != roleAdmin {
			handlers.RespondForbidden(w, "acceso restringido a administradores")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserIDFromContext ID пользователя, проставленный Auth
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// OptionalUser как Auth, но без X-User-ID запрос проходит анонимно
func OptionalUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID := strings.TrimSpace(r.Header.Get(HeaderUserID)); userID != "" {
			r = r.WithContext(context.WithValue(r.Context(), userIDKey, userID))
		}
		next.ServeHTTP(w, r)
	})
}
