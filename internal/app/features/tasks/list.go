// internal/app/features/tasks/list.go
package tasks

import (
	"context"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/store/queries/hydrate"
	"github.com/dalemusser/taskhub/internal/app/system/apperr"
	"github.com/dalemusser/taskhub/internal/app/system/httpx"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleListForUser serves GET /api/tasks/{userId}: the union of tasks
// the user owns or is assigned to. Callers may only list their own
// tasks; assignee references are hydrated, owner and group stay raw.
func (h *Handler) HandleListForUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	requester, err := h.requester(ctx, r)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to list tasks")
		return
	}

	userID, err := httpx.PathID(r, "userId")
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to list tasks")
		return
	}
	if userID != requester.ID {
		httpx.Error(w, h.Log, apperr.Forbiddenf("not authorized to view these tasks"), "failed to list tasks")
		return
	}

	list, err := h.Tasks.ListForUser(ctx, userID)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to list tasks")
		return
	}

	users, err := hydrate.UserSummaries(ctx, h.DB, assigneeIDs(list))
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to list tasks")
		return
	}

	views := make([]taskView, 0, len(list))
	for _, t := range list {
		views = append(views, newTaskView(t, users, nil))
	}
	httpx.JSON(w, http.StatusOK, views)
}

// HandleListAll serves GET /api/tasks: the admin view of every task,
// with owner, group, and assignee references all hydrated.
func (h *Handler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	requester, err := h.requester(ctx, r)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to list all tasks")
		return
	}
	if !requester.IsAdmin() {
		httpx.Error(w, h.Log, apperr.Forbiddenf("not authorized for this action"), "failed to list all tasks")
		return
	}

	list, err := h.Tasks.ListAll(ctx)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to list all tasks")
		return
	}

	userIDs := assigneeIDs(list)
	var groupIDs []primitive.ObjectID
	for _, t := range list {
		userIDs = append(userIDs, t.OwnerID)
		if t.GroupID != nil {
			groupIDs = append(groupIDs, *t.GroupID)
		}
	}

	users, err := hydrate.UserSummaries(ctx, h.DB, userIDs)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to list all tasks")
		return
	}
	groups, err := hydrate.GroupSummaries(ctx, h.DB, groupIDs)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to list all tasks")
		return
	}

	views := make([]taskView, 0, len(list))
	for _, t := range list {
		views = append(views, newTaskView(t, users, groups))
	}
	httpx.JSON(w, http.StatusOK, views)
}
