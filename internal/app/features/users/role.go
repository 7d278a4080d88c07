// internal/app/features/users/role.go
package users

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/apperr"
	"github.com/dalemusser/taskhub/internal/app/system/authz"
	"github.com/dalemusser/taskhub/internal/app/system/httpx"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

type updateRoleRequest struct {
	Role string `json:"role"`
}

// HandleUpdateRole serves PUT /api/users/{userId}/role: admin-only role
// change, restricted to the recognized roles.
func (h *Handler) HandleUpdateRole(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	requester, err := h.requester(ctx, r)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to update role")
		return
	}
	if !authz.CanManageUser(*requester, models.User{}) {
		httpx.Error(w, h.Log, apperr.Forbiddenf("you do not have permission to change roles"), "failed to update role")
		return
	}

	var req updateRoleRequest
	if err := httpx.Decode(w, r, &req); err != nil {
		httpx.Error(w, h.Log, err, "failed to update role")
		return
	}
	if !models.ValidRole(req.Role) {
		httpx.Error(w, h.Log, apperr.Validationf("invalid role"), "failed to update role")
		return
	}

	id, err := httpx.PathID(r, "userId")
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to update role")
		return
	}
	if _, err := h.Users.GetByID(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpx.Error(w, h.Log, apperr.NotFoundf("user not found"), "failed to update role")
			return
		}
		httpx.Error(w, h.Log, err, "failed to update role")
		return
	}

	if err := h.Users.UpdateRole(ctx, id, req.Role); err != nil {
		httpx.Error(w, h.Log, err, "failed to update role")
		return
	}

	updated, err := h.Users.GetByID(ctx, id)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to update role")
		return
	}

	httpx.JSON(w, http.StatusOK, userResponse{
		Message: "user role updated successfully",
		User:    toUserView(*updated),
	})
}
