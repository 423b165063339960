package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/api/handlers"
)

const (
	// HeaderAPIKey заголовок с ключом партнерского приложения
	HeaderAPIKey = "X-API-Key"

	msgMissingAPIKey = "отсутствует API ключ"
	msgInvalidAPIKey = "неверный API ключ"
	msgMissingToken  = "отсутствует токен администратора"
	msgInvalidToken  = "неверный токен администратора"
)

// APIKey пропускает запросы с одним из разрешенных ключей в X-API-Key
// Пустой список ключей закрывает доступ полностью
func APIKey(keys []string) mux.MiddlewareFunc {
	allowed := make([][]byte, 0, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			allowed = append(allowed, []byte(k))
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := strings.TrimSpace(r.Header.Get(HeaderAPIKey))
			if key == "" {
				handlers.RespondUnauthorized(w, msgMissingAPIKey)
				return
			}
			if !matchesAny([]byte(key), allowed) {
				handlers.RespondForbidden(w, msgInvalidAPIKey)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AdminToken пропускает запросы с "Authorization: Bearer <token>"
func AdminToken(token string) mux.MiddlewareFunc {
	expected := []byte(strings.TrimSpace(token))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			provided, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(provided) == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}
			if len(expected) == 0 || subtle.ConstantTimeCompare([]byte(strings.TrimSpace(provided)), expected) != 1 {
				handlers.RespondForbidden(w, msgInvalidToken)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func matchesAny(key []byte, allowed [][]byte) bool {
	found := false
	for _, a := range allowed {
		if subtle.ConstantTimeCompare(key, a) == 1 {
			found = true
		}
	}
	return found
}
