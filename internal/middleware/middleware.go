package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	handlers "wuddevdet/internal/handler"
	"wuddevdet/internal/models"
	"wuddevdet/internal/service"
)

type Middleware func(http.Handler) http.Handler

// AuthMiddleware turns an optional bearer token into the request's session.
// Requests without a token continue as guests; a bad token is rejected.
func AuthMiddleware(tokens service.TokenService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			// Checking the "Bearer <token>" format
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				handlers.WriteError(w, "Invalid token format", http.StatusUnauthorized)
				return
			}

			session, err := tokens.Parse(parts[1])
			if err != nil {
				handlers.WriteError(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(service.WithSession(r.Context(), session)))
		})
	}
}

// RoleMiddleware lets through sessions whose role grants at least required.
// Guests get 401, logged-in users without the role get 403.
func RoleMiddleware(required models.Role) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := service.SessionFromContext(r.Context())

			if session.Role() == models.RoleGuest && required != models.RoleGuest {
				handlers.WriteError(w, "Login required", http.StatusUnauthorized)
				return
			}

			if !session.AtLeast(required) {
				handlers.WriteError(w, "Access denied", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		log.Printf("%s %s %d %s", r.Method, r.RequestURI, rec.status, time.Since(start))
	})
}

// Chain wraps h so that the first middleware listed runs innermost.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
