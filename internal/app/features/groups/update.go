// internal/app/features/groups/update.go
package groups

import (
	"context"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/apperr"
	"github.com/dalemusser/taskhub/internal/app/system/authz"
	"github.com/dalemusser/taskhub/internal/app/system/httpx"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type updateGroupRequest struct {
	Name    *string   `json:"name"`
	Members *[]string `json:"user"`
}

// HandleUpdate serves PUT /api/groups/{groupId}: owner or admin may
// rename the group and/or replace its member list outright.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	groupID, err := httpx.PathID(r, "groupId")
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to update group")
		return
	}

	var req updateGroupRequest
	if err := httpx.Decode(w, r, &req); err != nil {
		httpx.Error(w, h.Log, err, "failed to update group")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	group, err := h.loadGroup(ctx, groupID)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to update group")
		return
	}

	requester, err := h.requester(ctx, r)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to update group")
		return
	}
	if !authz.CanManageGroup(*requester, *group) {
		httpx.Error(w, h.Log, apperr.Forbiddenf("you do not have permission to update this group"), "failed to update group")
		return
	}

	var members *[]primitive.ObjectID
	if req.Members != nil {
		converted := make([]primitive.ObjectID, 0, len(*req.Members))
		for _, raw := range *req.Members {
			id, err := primitive.ObjectIDFromHex(raw)
			if err != nil {
				httpx.Error(w, h.Log, apperr.Validationf("invalid user entry"), "failed to update group")
				return
			}
			converted = append(converted, id)
		}
		members = &converted
	}

	if err := h.Groups.UpdateInfo(ctx, groupID, req.Name, members); err != nil {
		httpx.Error(w, h.Log, err, "failed to update group")
		return
	}

	updated, err := h.loadGroup(ctx, groupID)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to update group")
		return
	}
	view, err := h.hydratedView(ctx, h.DB, *updated)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to update group")
		return
	}

	httpx.JSON(w, http.StatusOK, groupResponse{
		Message: "group updated successfully",
		Group:   view,
	})
}
