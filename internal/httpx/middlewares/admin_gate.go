package middlewares

import (
	"encoding/json"
	"net/http"
)

const headerAdminPassword = "X-Admin-Password"

// AdminGate guards the admin routes with a plaintext password comparison —
// the storefront's access gate, nothing stronger. An empty configured
// password keeps the admin surface closed entirely.
func AdminGate(password string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if password == "" || r.Header.Get(headerAdminPassword) != password {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
