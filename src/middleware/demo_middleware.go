package middleware

import (
	"net/http"
)

// DemoModeMiddleware locks the public demo instance down to reads plus
// the handful of POSTs needed to actually try the app.
func DemoModeMiddleware(isDemo bool) func(http.Handler) http.Handler {
	allowedPosts := map[string]bool{
		"/api/auth/login":    true,
		"/api/auth/register": true,
		"/api/chat/message":  true,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if role, ok := r.Context().Value("role").(string); ok && role == "admin" {
				next.ServeHTTP(w, r)
				return
			}

			if isDemo && r.Method != http.MethodGet {
				if r.Method == http.MethodPost && allowedPosts[r.URL.Path] {
					next.ServeHTTP(w, r)
					return
				}
				http.Error(w, "Demo mode: only GET requests are allowed", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
