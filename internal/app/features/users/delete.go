// internal/app/features/users/delete.go
package users

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/apperr"
	"github.com/dalemusser/taskhub/internal/app/system/authz"
	"github.com/dalemusser/taskhub/internal/app/system/httpx"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"github.com/dalemusser/taskhub/internal/app/system/txn"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleDelete serves DELETE /api/users/{userId}: admin-only. The
// account, its owned tasks, and its group memberships go together, so
// the three writes run as one cascade.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	requester, err := h.requester(ctx, r)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to delete user")
		return
	}
	if !authz.CanManageUser(*requester, models.User{}) {
		httpx.Error(w, h.Log, apperr.Forbiddenf("you do not have permission to delete users"), "failed to delete user")
		return
	}

	id, err := httpx.PathID(r, "userId")
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to delete user")
		return
	}
	if _, err := h.Users.GetByID(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpx.Error(w, h.Log, apperr.NotFoundf("user not found"), "failed to delete user")
			return
		}
		httpx.Error(w, h.Log, err, "failed to delete user")
		return
	}

	err = txn.WithTransaction(ctx, h.DB.Client(), h.Log, func(ctx context.Context) error {
		tasks, err := h.Tasks.DeleteByOwner(ctx, id)
		if err != nil {
			return err
		}
		memberships, err := h.Groups.PullMemberFromAll(ctx, id)
		if err != nil {
			return err
		}
		if _, err := h.Users.Delete(ctx, id); err != nil {
			return err
		}
		h.Log.Info("deleted user",
			zap.String("user_id", id.Hex()),
			zap.Int64("tasks_removed", tasks),
			zap.Int64("memberships_removed", memberships))
		return nil
	})
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to delete user")
		return
	}

	httpx.Message(w, http.StatusOK, "user deleted successfully")
}
