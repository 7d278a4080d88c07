// internal/app/features/tasks/routes.go
package tasks

import (
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleCreate)
	r.Post("/group", h.HandleCreateGroupTask)
	r.Get("/", h.HandleListAll)
	r.Get("/{userId}", h.HandleListForUser)
	r.Put("/{taskId}", h.HandleUpdate)
	r.Delete("/{taskId}", h.HandleDelete)

	return r
}
