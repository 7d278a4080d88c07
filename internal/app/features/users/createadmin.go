// internal/app/features/users/createadmin.go
package users

import (
	"context"
	"errors"
	"net/http"

	userstore "github.com/dalemusser/taskhub/internal/app/store/users"
	"github.com/dalemusser/taskhub/internal/app/system/apperr"
	"github.com/dalemusser/taskhub/internal/app/system/authutil"
	"github.com/dalemusser/taskhub/internal/app/system/authz"
	"github.com/dalemusser/taskhub/internal/app/system/httpx"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"github.com/dalemusser/taskhub/internal/domain/models"
)

type createUserRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// HandleCreateByAdmin serves POST /api/users/admin: admin-only account
// creation with an optional role, defaulting to "user".
func (h *Handler) HandleCreateByAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	requester, err := h.requester(ctx, r)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to create user")
		return
	}
	if !authz.CanManageUser(*requester, models.User{}) {
		httpx.Error(w, h.Log, apperr.Forbiddenf("you do not have permission to create users"), "failed to create user")
		return
	}

	var req createUserRequest
	if err := httpx.Decode(w, r, &req); err != nil {
		httpx.Error(w, h.Log, err, "failed to create user")
		return
	}
	if req.Email == "" || req.Username == "" || req.Password == "" {
		httpx.Error(w, h.Log, apperr.Validationf("all fields are required"), "failed to create user")
		return
	}
	if req.Role != "" && !models.ValidRole(req.Role) {
		httpx.Error(w, h.Log, apperr.Validationf("invalid role"), "failed to create user")
		return
	}

	hash, err := authutil.HashPassword(req.Password)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to create user")
		return
	}

	_, err = h.Users.Create(ctx, models.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hash,
		Role:         req.Role,
	})
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			httpx.Error(w, h.Log, apperr.Conflictf("email is already registered"), "failed to create user")
			return
		}
		httpx.Error(w, h.Log, err, "failed to create user")
		return
	}

	httpx.Message(w, http.StatusCreated, "user created successfully")
}
