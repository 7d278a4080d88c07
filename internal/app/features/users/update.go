// internal/app/features/users/update.go
package users

import (
	"context"
	"errors"
	"net/http"

	userstore "github.com/dalemusser/taskhub/internal/app/store/users"
	"github.com/dalemusser/taskhub/internal/app/system/apperr"
	"github.com/dalemusser/taskhub/internal/app/system/authz"
	"github.com/dalemusser/taskhub/internal/app/system/httpx"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
)

type updateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// HandleUpdate serves PUT /api/users/{userId}: profile update by the
// user themself or an admin. Only non-empty fields are applied.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "userId")
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to update user")
		return
	}

	var req updateUserRequest
	if err := httpx.Decode(w, r, &req); err != nil {
		httpx.Error(w, h.Log, err, "failed to update user")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	target, err := h.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpx.Error(w, h.Log, apperr.NotFoundf("user not found"), "failed to update user")
			return
		}
		httpx.Error(w, h.Log, err, "failed to update user")
		return
	}

	requester, err := h.requester(ctx, r)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to update user")
		return
	}
	if !authz.CanUpdateUserProfile(*requester, *target) {
		httpx.Error(w, h.Log, apperr.Forbiddenf("you do not have permission to update this user"), "failed to update user")
		return
	}

	if err := h.Users.UpdateProfile(ctx, id, req.Username, req.Email); err != nil {
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			httpx.Error(w, h.Log, apperr.Conflictf("email is already registered"), "failed to update user")
			return
		}
		httpx.Error(w, h.Log, err, "failed to update user")
		return
	}

	updated, err := h.Users.GetByID(ctx, id)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to update user")
		return
	}

	httpx.JSON(w, http.StatusOK, userResponse{
		Message: "user updated successfully",
		User:    toUserView(*updated),
	})
}
