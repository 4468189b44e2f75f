package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/review-relay/internal/config"
)

// CORS returns middleware that handles Cross-Origin Resource Sharing.
// Every response carries the allow headers; preflight OPTIONS requests are
// answered with 200 and never reach the wrapped handler.
func CORS(cfg config.CORSConfig) Middleware {
	origins := strings.Split(cfg.AllowedOrigins, ",")
	methods := cfg.AllowedMethods
	headers := cfg.AllowedHeaders

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if allow := allowOrigin(r.Header.Get("Origin"), origins); allow != "" {
				w.Header().Set("Access-Control-Allow-Origin", allow)
			}
			w.Header().Set("Access-Control-Allow-Methods", methods)
			w.Header().Set("Access-Control-Allow-Headers", headers)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// allowOrigin returns the Access-Control-Allow-Origin value for origin, or
// "" when the origin is not permitted. A wildcard entry allows any caller.
func allowOrigin(origin string, allowed []string) string {
	for _, a := range allowed {
		a = strings.TrimSpace(a)
		if a == "*" {
			return "*"
		}
		if origin != "" && a == origin {
			return origin
		}
	}
	return ""
}
