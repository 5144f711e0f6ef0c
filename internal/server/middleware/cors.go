package middleware

import "net/http"

// CORS returns middleware that stamps a route's CORS contract on every
// response: wildcard origin, the route's exact method list, and
// Content-Type as the only allowed request header. The method list is
// deliberately explicit, never "*" — browsers gate the real request on
// it. Preflight requests short-circuit to 204 with no body.
func CORS(methods string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", "*")
			h.Set("Access-Control-Allow-Methods", methods)
			h.Set("Access-Control-Allow-Headers", "Content-Type")

			if r.Method == http.MethodOptions {
				h.Set("Access-Control-Max-Age", "86400")
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
