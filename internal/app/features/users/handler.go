// internal/app/features/users/handler.go
package users

import (
	"context"
	"errors"
	"net/http"

	groupstore "github.com/dalemusser/taskhub/internal/app/store/groups"
	taskstore "github.com/dalemusser/taskhub/internal/app/store/tasks"
	userstore "github.com/dalemusser/taskhub/internal/app/store/users"
	"github.com/dalemusser/taskhub/internal/app/system/apperr"
	"github.com/dalemusser/taskhub/internal/app/system/auth"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level handler for user administration. It holds
// the task and group stores as well because deleting a user cascades
// into both collections.
type Handler struct {
	DB     *mongo.Database
	Log    *zap.Logger
	Users  *userstore.Store
	Tasks  *taskstore.Store
	Groups *groupstore.Store
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Log:    logger,
		Users:  userstore.New(db),
		Tasks:  taskstore.New(db),
		Groups: groupstore.New(db),
	}
}

// requester loads the full user document behind the verified token
// identity. The account may have been deleted after the token was
// issued.
func (h *Handler) requester(ctx context.Context, r *http.Request) (*models.User, error) {
	su, ok := auth.CurrentUser(r)
	if !ok {
		return nil, apperr.New(apperr.Unauthorized, "access denied: no token provided")
	}
	id, err := primitive.ObjectIDFromHex(su.ID)
	if err != nil {
		return nil, apperr.New(apperr.Auth, "invalid token")
	}
	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFoundf("authenticated user not found")
		}
		return nil, err
	}
	return u, nil
}
