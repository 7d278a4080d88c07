// internal/app/features/groups/members.go
package groups

import (
	"context"
	"errors"
	"net/http"

	groupstore "github.com/dalemusser/taskhub/internal/app/store/groups"
	"github.com/dalemusser/taskhub/internal/app/system/apperr"
	"github.com/dalemusser/taskhub/internal/app/system/authz"
	"github.com/dalemusser/taskhub/internal/app/system/httpx"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type addMemberRequest struct {
	UserID string `json:"userId"`
}

// HandleAddMember serves POST /api/groups/{groupId}/users: owner or
// admin adds a user. The membership write is a single conditional
// update, so concurrent adds of different users cannot lose each other.
func (h *Handler) HandleAddMember(w http.ResponseWriter, r *http.Request) {
	groupID, err := httpx.PathID(r, "groupId")
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to add user to group")
		return
	}

	var req addMemberRequest
	if err := httpx.Decode(w, r, &req); err != nil {
		httpx.Error(w, h.Log, err, "failed to add user to group")
		return
	}
	if req.UserID == "" {
		httpx.Error(w, h.Log, apperr.Validationf("userId is required"), "failed to add user to group")
		return
	}
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		httpx.Error(w, h.Log, apperr.Validationf("invalid userId"), "failed to add user to group")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	group, err := h.loadGroup(ctx, groupID)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to add user to group")
		return
	}

	requester, err := h.requester(ctx, r)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to add user to group")
		return
	}
	if !authz.CanManageGroup(*requester, *group) {
		httpx.Error(w, h.Log, apperr.Forbiddenf("you do not have permission to add users to this group"), "failed to add user to group")
		return
	}

	if err := h.Groups.AddMember(ctx, groupID, userID); err != nil {
		switch {
		case errors.Is(err, groupstore.ErrAlreadyMember):
			httpx.Error(w, h.Log, apperr.Conflictf("the user is already in the group"), "failed to add user to group")
		case errors.Is(err, mongo.ErrNoDocuments):
			httpx.Error(w, h.Log, apperr.NotFoundf("group not found"), "failed to add user to group")
		default:
			httpx.Error(w, h.Log, err, "failed to add user to group")
		}
		return
	}

	h.respondWithGroup(ctx, w, groupID, "user added to group successfully")
}

// HandleRemoveMember serves DELETE /api/groups/{groupId}/users/{userId}:
// owner, admin, or the member leaving on their own.
func (h *Handler) HandleRemoveMember(w http.ResponseWriter, r *http.Request) {
	groupID, err := httpx.PathID(r, "groupId")
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to remove user from group")
		return
	}
	targetHex := chi.URLParam(r, "userId")
	targetID, err := primitive.ObjectIDFromHex(targetHex)
	if err != nil {
		httpx.Error(w, h.Log, apperr.Validationf("invalid userId"), "failed to remove user from group")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	group, err := h.loadGroup(ctx, groupID)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to remove user from group")
		return
	}

	requester, err := h.requester(ctx, r)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to remove user from group")
		return
	}
	if !authz.CanRemoveGroupMember(*requester, *group, targetHex) {
		httpx.Error(w, h.Log, apperr.Forbiddenf("you do not have permission to remove users from this group"), "failed to remove user from group")
		return
	}

	if err := h.Groups.RemoveMember(ctx, groupID, targetID); err != nil {
		switch {
		case errors.Is(err, groupstore.ErrNotMember):
			httpx.Error(w, h.Log, apperr.Conflictf("the user is not in the group"), "failed to remove user from group")
		case errors.Is(err, mongo.ErrNoDocuments):
			httpx.Error(w, h.Log, apperr.NotFoundf("group not found"), "failed to remove user from group")
		default:
			httpx.Error(w, h.Log, err, "failed to remove user from group")
		}
		return
	}

	h.respondWithGroup(ctx, w, groupID, "user removed from group successfully")
}

// respondWithGroup reloads the group and writes the {message, group}
// body with hydrated members.
func (h *Handler) respondWithGroup(ctx context.Context, w http.ResponseWriter, groupID primitive.ObjectID, message string) {
	group, err := h.loadGroup(ctx, groupID)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to load group")
		return
	}
	view, err := h.hydratedView(ctx, h.DB, *group)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to load group")
		return
	}
	httpx.JSON(w, http.StatusOK, groupResponse{Message: message, Group: view})
}
