package controller

import (
	"net/http"
	"strings"
)

const (
	corsAllowHeaders = "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Request-Id"
	corsAllowMethods = "GET, POST, PATCH, DELETE, OPTIONS"
	// the shopping list download name is read from Content-Disposition
	corsExposeHeaders = "Content-Disposition, X-Request-Id"
)

// WithCORS returns a middleware that sets CORS headers on every response and
// answers OPTIONS preflight requests with 204 No Content. With no origins any
// origin is allowed; otherwise only listed origins are echoed back and other
// cross-origin requests get no CORS headers.
func WithCORS(next http.Handler, origins ...string) http.Handler {
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[strings.TrimRight(o, "/")] = struct{}{}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()

		origin := r.Header.Get("Origin")
		switch _, ok := allowed[origin]; {
		case len(allowed) == 0:
			h.Set("Access-Control-Allow-Origin", "*")
		case ok:
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Add("Vary", "Origin")
		}

		if h.Get("Access-Control-Allow-Origin") != "" {
			h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
			h.Set("Access-Control-Allow-Methods", corsAllowMethods)
			h.Set("Access-Control-Expose-Headers", corsExposeHeaders)
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	})
}
