package middleware

import (
	"net/http"
	"strings"

	"github.com/dazos/cfo-copilot-api/pkg/apiErrors"
)

// AppPasswordMiddleware gates every /api/ route behind a shared app password.
// When no password is configured the middleware is a pass-through.
func AppPasswordMiddleware(password string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if password == "" || !strings.HasPrefix(r.URL.Path, "/api/") {
				next.ServeHTTP(w, r)
				return
			}

			supplied := r.Header.Get("X-App-Password")
			if supplied != password {
				apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Missing or invalid app password", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
