// internal/app/features/groups/routes.go
package groups

import (
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleCreate)
	r.Get("/", h.HandleListAll)
	r.Get("/{userId}", h.HandleListForUser)
	r.Put("/{groupId}", h.HandleUpdate)
	r.Post("/{groupId}/users", h.HandleAddMember)
	r.Delete("/{groupId}/users/{userId}", h.HandleRemoveMember)
	r.Delete("/{groupId}", h.HandleDelete)

	return r
}
