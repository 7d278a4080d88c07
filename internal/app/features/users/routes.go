// internal/app/features/users/routes.go
package users

import (
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.HandleList)
	r.Post("/admin", h.HandleCreateByAdmin)
	r.Get("/{userId}", h.HandleGet)
	r.Put("/{userId}", h.HandleUpdate)
	r.Put("/{userId}/role", h.HandleUpdateRole)
	r.Delete("/{userId}", h.HandleDelete)

	return r
}
