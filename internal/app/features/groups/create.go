// internal/app/features/groups/create.go
package groups

import (
	"context"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/apperr"
	"github.com/dalemusser/taskhub/internal/app/system/httpx"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type createGroupRequest struct {
	Name    string   `json:"name"`
	Members []string `json:"user"`
}

// HandleCreate serves POST /api/groups: a group owned by the caller with
// an optional initial member list. The response echoes the stored group
// without hydration, matching the original create behavior.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	requester, err := h.requester(ctx, r)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to create group")
		return
	}

	var req createGroupRequest
	if err := httpx.Decode(w, r, &req); err != nil {
		httpx.Error(w, h.Log, err, "failed to create group")
		return
	}
	if req.Name == "" {
		httpx.Error(w, h.Log, apperr.Validationf("group name is required"), "failed to create group")
		return
	}

	members := make([]primitive.ObjectID, 0, len(req.Members))
	for _, raw := range req.Members {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			httpx.Error(w, h.Log, apperr.Validationf("invalid user entry"), "failed to create group")
			return
		}
		members = append(members, id)
	}

	g, err := h.Groups.Create(ctx, req.Name, requester.ID, members)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to create group")
		return
	}

	httpx.JSON(w, http.StatusCreated, groupResponse{
		Message: "group created successfully",
		Group:   newGroupView(g, nil),
	})
}
