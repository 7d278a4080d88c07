// internal/app/features/tasks/creategroup.go
package tasks

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/store/queries/hydrate"
	"github.com/dalemusser/taskhub/internal/app/system/apperr"
	"github.com/dalemusser/taskhub/internal/app/system/authz"
	"github.com/dalemusser/taskhub/internal/app/system/httpx"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleCreateGroupTask serves POST /api/tasks/group: a task bound to an
// existing group, permitted to the group's owner or members. Note there
// is deliberately no admin bypass on this route.
func (h *Handler) HandleCreateGroupTask(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	requester, err := h.requester(ctx, r)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to create group task")
		return
	}

	var req createTaskRequest
	if err := httpx.Decode(w, r, &req); err != nil {
		httpx.Error(w, h.Log, err, "failed to create group task")
		return
	}
	groupID, assignees, err := req.validate(true)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to create group task")
		return
	}

	group, err := h.Groups.GetByID(ctx, *groupID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpx.Error(w, h.Log, apperr.NotFoundf("group not found"), "failed to create group task")
			return
		}
		httpx.Error(w, h.Log, err, "failed to create group task")
		return
	}
	if !authz.CanCreateGroupTask(*requester, *group) {
		httpx.Error(w, h.Log, apperr.Forbiddenf("you do not have permission to create tasks in this group"), "failed to create group task")
		return
	}

	task, err := h.Tasks.Create(ctx, models.Task{
		Name:        req.Name,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      req.Status,
		Category:    req.Category,
		OwnerID:     requester.ID,
		GroupID:     groupID,
		AssignedTo:  assignees,
	})
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to create group task")
		return
	}

	users, err := hydrate.UserSummaries(ctx, h.DB, task.AssignedTo)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to create group task")
		return
	}

	httpx.JSON(w, http.StatusCreated, taskResponse{
		Message: "group task created successfully",
		Task:    newTaskView(task, users, nil),
	})
}
