package router

import (
	"net/http"

	"github.com/gorilla/mux"
	handlers "wuddevdet/internal/handler"
	"wuddevdet/internal/middleware"
	"wuddevdet/internal/models"
)

// New builds the API routes and wraps them in the logging, CORS and auth
// middleware. Gated routes additionally check the session's role.
func New(h *handlers.Handlers) http.Handler {
	r := mux.NewRouter()

	member := middleware.RoleMiddleware(models.RoleMember)
	admin := middleware.RoleMiddleware(models.RoleAdmin)

	r.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/tables", h.TablesHandler).Methods(http.MethodGet)

	r.HandleFunc("/api/auth/login", h.Login).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/signup", h.Signup).Methods(http.MethodPost)

	r.HandleFunc("/api/session", h.GetSession).Methods(http.MethodGet)
	r.HandleFunc("/api/session/toggle-login", h.ToggleLogin).Methods(http.MethodPost)
	r.HandleFunc("/api/session/toggle-admin", h.ToggleAdmin).Methods(http.MethodPost)

	r.HandleFunc("/api/board", h.GetBoard).Methods(http.MethodGet)
	r.Handle("/api/board/posts", member(http.HandlerFunc(h.CreatePost))).Methods(http.MethodPost)
	r.Handle("/api/board/posts/{id}", admin(http.HandlerFunc(h.DeletePost))).Methods(http.MethodDelete)
	r.Handle("/api/board/posts/{id}/pin", admin(http.HandlerFunc(h.TogglePin))).Methods(http.MethodPost)
	r.Handle("/api/board/posts/{id}/comments", member(http.HandlerFunc(h.AddComment))).Methods(http.MethodPost)
	r.HandleFunc("/api/board/guest-messages", h.SubmitGuestMessage).Methods(http.MethodPost)
	r.Handle("/api/board/guest-messages/{id}/responded", admin(http.HandlerFunc(h.ToggleGuestMessageResponded))).Methods(http.MethodPost)

	r.Handle("/api/me/avatar", member(http.HandlerFunc(h.UploadAvatar))).Methods(http.MethodPost)

	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, "Not found", http.StatusNotFound)
	})

	return middleware.Chain(
		r,
		middleware.AuthMiddleware(h.TokenService),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)
}
