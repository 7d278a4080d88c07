// internal/app/features/tasks/update.go
package tasks

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dalemusser/taskhub/internal/app/store/queries/hydrate"
	taskstore "github.com/dalemusser/taskhub/internal/app/store/tasks"
	"github.com/dalemusser/taskhub/internal/app/system/apperr"
	"github.com/dalemusser/taskhub/internal/app/system/authz"
	"github.com/dalemusser/taskhub/internal/app/system/httpx"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// updateTaskRequest uses pointers so that an absent field and an
// explicit zero value are distinguishable: the permission check cares
// about which fields the caller tried to touch.
type updateTaskRequest struct {
	Name        *string    `json:"name_task"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dead_line"`
	Status      *string    `json:"status"`
	Category    *string    `json:"category"`
	AssignedTo  *[]string  `json:"assignedTo"`
}

// fields lists the allow-list names of the fields the request carries.
func (req updateTaskRequest) fields() []authz.TaskField {
	var out []authz.TaskField
	if req.Name != nil {
		out = append(out, authz.TaskName)
	}
	if req.Description != nil {
		out = append(out, authz.TaskDescription)
	}
	if req.DueDate != nil {
		out = append(out, authz.TaskDueDate)
	}
	if req.Status != nil {
		out = append(out, authz.TaskStatus)
	}
	if req.Category != nil {
		out = append(out, authz.TaskCategory)
	}
	if req.AssignedTo != nil {
		out = append(out, authz.TaskAssignedTo)
	}
	return out
}

// HandleUpdate serves PUT /api/tasks/{taskId}. Creators and admins may
// patch any allow-listed field; a caller who is merely assigned may
// change the status and nothing else.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	taskID, err := httpx.PathID(r, "taskId")
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to update task")
		return
	}

	var req updateTaskRequest
	if err := httpx.Decode(w, r, &req); err != nil {
		httpx.Error(w, h.Log, err, "failed to update task")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	task, err := h.Tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpx.Error(w, h.Log, apperr.NotFoundf("task not found"), "failed to update task")
			return
		}
		httpx.Error(w, h.Log, err, "failed to update task")
		return
	}

	requester, err := h.requester(ctx, r)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to update task")
		return
	}

	edit := authz.CanEditTask(*requester, *task)
	if !edit.Allowed {
		httpx.Error(w, h.Log, apperr.Forbiddenf("you do not have permission to update this task"), "failed to update task")
		return
	}
	for _, f := range req.fields() {
		if !edit.Permits(f) {
			httpx.Error(w, h.Log, apperr.Forbiddenf("you may only update the status of this task"), "failed to update task")
			return
		}
	}

	if req.Status != nil && !models.ValidStatus(*req.Status) {
		httpx.Error(w, h.Log, apperr.Validationf("invalid status"), "failed to update task")
		return
	}

	patch := taskstore.Patch{
		Name:        req.Name,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      req.Status,
		Category:    req.Category,
	}
	if req.AssignedTo != nil {
		assignees := make([]primitive.ObjectID, 0, len(*req.AssignedTo))
		for _, raw := range *req.AssignedTo {
			id, err := primitive.ObjectIDFromHex(raw)
			if err != nil {
				httpx.Error(w, h.Log, apperr.Validationf("invalid assignedTo entry"), "failed to update task")
				return
			}
			assignees = append(assignees, id)
		}
		patch.AssignedTo = &assignees
	}

	updated, err := h.Tasks.Update(ctx, taskID, patch)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to update task")
		return
	}

	users, err := hydrate.UserSummaries(ctx, h.DB, updated.AssignedTo)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to update task")
		return
	}

	httpx.JSON(w, http.StatusOK, taskResponse{
		Message: "task updated successfully",
		Task:    newTaskView(*updated, users, nil),
	})
}
