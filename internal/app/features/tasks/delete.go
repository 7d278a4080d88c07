// internal/app/features/tasks/delete.go
package tasks

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/apperr"
	"github.com/dalemusser/taskhub/internal/app/system/authz"
	"github.com/dalemusser/taskhub/internal/app/system/httpx"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleDelete serves DELETE /api/tasks/{taskId}. Creator or admin only;
// being assigned does not grant deletion.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	taskID, err := httpx.PathID(r, "taskId")
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to delete task")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	task, err := h.Tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpx.Error(w, h.Log, apperr.NotFoundf("task not found"), "failed to delete task")
			return
		}
		httpx.Error(w, h.Log, err, "failed to delete task")
		return
	}

	requester, err := h.requester(ctx, r)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to delete task")
		return
	}
	if !authz.CanDeleteTask(*requester, *task) {
		httpx.Error(w, h.Log, apperr.Forbiddenf("you do not have permission to delete this task"), "failed to delete task")
		return
	}

	if _, err := h.Tasks.Delete(ctx, taskID); err != nil {
		httpx.Error(w, h.Log, err, "failed to delete task")
		return
	}

	httpx.Message(w, http.StatusOK, "task deleted successfully")
}
