// internal/app/features/users/list.go
package users

import (
	"context"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/httpx"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
)

// HandleList serves GET /api/users: every account except the caller's
// own, as wire summaries.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	requester, err := h.requester(ctx, r)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to list users")
		return
	}

	list, err := h.Users.List(ctx, requester.ID)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to list users")
		return
	}

	views := make([]userView, 0, len(list))
	for _, u := range list {
		views = append(views, toUserView(u))
	}
	httpx.JSON(w, http.StatusOK, views)
}
