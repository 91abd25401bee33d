package middleware

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// AuthMiddleware lets a request through only when the Authorization header is accepted by the auth service.
// Preflight requests are never checked.
func (mw *Middleware) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		if err := mw.authService.ValidateToken(r.Context(), r.Header.Get("Authorization")); err != nil {
			mw.logger.Warn("Request rejected by auth gate",
				gecho.Field("error", err),
				gecho.Field("path", r.URL.Path),
			)
			gecho.Unauthorized(w, gecho.WithMessage("Token expired or invalid"), gecho.Send())
			return
		}

		next.ServeHTTP(w, r)
	})
}
