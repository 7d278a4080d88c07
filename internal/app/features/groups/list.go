// internal/app/features/groups/list.go
package groups

import (
	"context"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/store/queries/hydrate"
	"github.com/dalemusser/taskhub/internal/app/system/apperr"
	"github.com/dalemusser/taskhub/internal/app/system/httpx"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleListForUser serves GET /api/groups/{userId}: the union of groups
// the user owns or belongs to. Callers may only list their own groups;
// member references are hydrated, the owner stays raw.
func (h *Handler) HandleListForUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	requester, err := h.requester(ctx, r)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to list groups")
		return
	}

	userID, err := httpx.PathID(r, "userId")
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to list groups")
		return
	}
	if userID != requester.ID {
		httpx.Error(w, h.Log, apperr.Forbiddenf("not authorized to view these groups"), "failed to list groups")
		return
	}

	list, err := h.Groups.ListForUser(ctx, userID)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to list groups")
		return
	}

	var memberIDs []primitive.ObjectID
	for _, g := range list {
		memberIDs = append(memberIDs, g.MemberIDs...)
	}
	users, err := hydrate.UserSummaries(ctx, h.DB, memberIDs)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to list groups")
		return
	}

	views := make([]groupView, 0, len(list))
	for _, g := range list {
		views = append(views, newGroupView(g, users))
	}
	httpx.JSON(w, http.StatusOK, views)
}

// HandleListAll serves GET /api/groups: the admin view of every group,
// with owner and member references hydrated.
func (h *Handler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	requester, err := h.requester(ctx, r)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to list all groups")
		return
	}
	if !requester.IsAdmin() {
		httpx.Error(w, h.Log, apperr.Forbiddenf("not authorized for this action"), "failed to list all groups")
		return
	}

	list, err := h.Groups.ListAll(ctx)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to list all groups")
		return
	}

	var userIDs []primitive.ObjectID
	for _, g := range list {
		userIDs = append(userIDs, g.OwnerID)
		userIDs = append(userIDs, g.MemberIDs...)
	}
	users, err := hydrate.UserSummaries(ctx, h.DB, userIDs)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to list all groups")
		return
	}

	views := make([]groupView, 0, len(list))
	for _, g := range list {
		views = append(views, newGroupView(g, users))
	}
	httpx.JSON(w, http.StatusOK, views)
}
