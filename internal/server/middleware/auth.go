// Package middleware provides HTTP middleware for authentication and request tracing.
package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
)

// RequireSecret creates middleware that rejects requests whose Authorization
// header does not exactly equal secret. The request body is never read on rejection.
func RequireSecret(secret string) func(http.Handler) http.Handler {
	expected := []byte(secret)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !validSecret(expected, r.Header.Get("Authorization")) {
				unauthorized(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func validSecret(expected []byte, provided string) bool {
	if len(expected) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(expected, []byte(provided)) == 1
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}
