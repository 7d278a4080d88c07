// internal/app/features/users/get.go
package users

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/apperr"
	"github.com/dalemusser/taskhub/internal/app/system/httpx"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleGet serves GET /api/users/{userId}. Any authenticated caller may
// look up any account's summary.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "userId")
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to get user")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpx.Error(w, h.Log, apperr.NotFoundf("user not found"), "failed to get user")
			return
		}
		httpx.Error(w, h.Log, err, "failed to get user")
		return
	}

	httpx.JSON(w, http.StatusOK, toUserView(*u))
}
