package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/SMC-BookingAvailability/internal/api/handlers"
)

const (
	// AdminTokenHeader заголовок с токеном администратора
	AdminTokenHeader = "X-Admin-Token"

	msgUnauthorized = "требуется токен администратора"
)

// AdminToken пропускает только запросы с корректным X-Admin-Token
// Пустой token запрещает доступ ко всем защищённым маршрутам
func AdminToken(token string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(AdminTokenHeader)
			if token == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				logger.Warn("%s %s - Unauthorized admin request from %s", r.Method, r.URL.Path, ClientIP(r))
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
