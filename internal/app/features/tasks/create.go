// internal/app/features/tasks/create.go
package tasks

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/taskhub/internal/app/store/queries/hydrate"
	"github.com/dalemusser/taskhub/internal/app/system/apperr"
	"github.com/dalemusser/taskhub/internal/app/system/httpx"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type createTaskRequest struct {
	Name        string    `json:"name_task"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dead_line"`
	Status      string    `json:"status"`
	Category    string    `json:"category"`
	GroupID     string    `json:"groupId"`
	AssignedTo  []string  `json:"assignedTo"`
}

// validate checks the common create-task fields and converts the string
// IDs. requireGroup distinguishes the group-task route, where groupId is
// mandatory.
func (req createTaskRequest) validate(requireGroup bool) (*primitive.ObjectID, []primitive.ObjectID, error) {
	if req.Name == "" || req.Description == "" || req.DueDate.IsZero() {
		return nil, nil, apperr.Validationf("name, description and deadline are required")
	}
	if requireGroup && req.GroupID == "" {
		return nil, nil, apperr.Validationf("groupId is required for a group task")
	}
	if req.Status != "" && !models.ValidStatus(req.Status) {
		return nil, nil, apperr.Validationf("invalid status")
	}

	var groupID *primitive.ObjectID
	if req.GroupID != "" {
		id, err := primitive.ObjectIDFromHex(req.GroupID)
		if err != nil {
			return nil, nil, apperr.Validationf("invalid groupId")
		}
		groupID = &id
	}

	assignees := make([]primitive.ObjectID, 0, len(req.AssignedTo))
	for _, raw := range req.AssignedTo {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return nil, nil, apperr.Validationf("invalid assignedTo entry")
		}
		assignees = append(assignees, id)
	}
	return groupID, assignees, nil
}

// HandleCreate serves POST /api/tasks: a personal task owned by the
// caller. An optional groupId tag is stored as-is on this route; the
// /tasks/group route is the one that enforces group membership.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	requester, err := h.requester(ctx, r)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to create task")
		return
	}

	var req createTaskRequest
	if err := httpx.Decode(w, r, &req); err != nil {
		httpx.Error(w, h.Log, err, "failed to create task")
		return
	}
	groupID, assignees, err := req.validate(false)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to create task")
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
		httpx.Error(w, h.Log, err, "failed to create task")
		return
	}

	users, err := hydrate.UserSummaries(ctx, h.DB, task.AssignedTo)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to create task")
		return
	}

	httpx.JSON(w, http.StatusCreated, taskResponse{
		Message: "task created successfully",
		Task:    newTaskView(task, users, nil),
	})
}
