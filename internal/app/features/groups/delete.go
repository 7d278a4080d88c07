// internal/app/features/groups/delete.go
package groups

import (
	"context"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/apperr"
	"github.com/dalemusser/taskhub/internal/app/system/authz"
	"github.com/dalemusser/taskhub/internal/app/system/httpx"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"github.com/dalemusser/taskhub/internal/app/system/txn"
	"go.uber.org/zap"
)

// HandleDelete serves DELETE /api/groups/{groupId}: owner or admin. The
// group's tasks go with it, so both deletes run as one cascade.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	groupID, err := httpx.PathID(r, "groupId")
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to delete group")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	group, err := h.loadGroup(ctx, groupID)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to delete group")
		return
	}

	requester, err := h.requester(ctx, r)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to delete group")
		return
	}
	if !authz.CanManageGroup(*requester, *group) {
		httpx.Error(w, h.Log, apperr.Forbiddenf("you do not have permission to delete this group"), "failed to delete group")
		return
	}

	err = txn.WithTransaction(ctx, h.DB.Client(), h.Log, func(ctx context.Context) error {
		tasks, err := h.Tasks.DeleteByGroup(ctx, groupID)
		if err != nil {
			return err
		}
		if _, err := h.Groups.Delete(ctx, groupID); err != nil {
			return err
		}
		h.Log.Info("deleted group",
			zap.String("group_id", groupID.Hex()),
			zap.Int64("tasks_removed", tasks))
		return nil
	})
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to delete group")
		return
	}

	httpx.Message(w, http.StatusOK, "group deleted successfully")
}
