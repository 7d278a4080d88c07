// internal/app/features/register/register.go
package register

import (
	"context"
	"errors"
	"net/http"

	userstore "github.com/dalemusser/taskhub/internal/app/store/users"
	"github.com/dalemusser/taskhub/internal/app/system/apperr"
	"github.com/dalemusser/taskhub/internal/app/system/authutil"
	"github.com/dalemusser/taskhub/internal/app/system/httpx"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"github.com/dalemusser/taskhub/internal/domain/models"
)

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// HandleRegister serves POST /api/register. New accounts always get the
// "user" role; admin accounts are created by an admin or seeded at
// startup.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpx.Decode(w, r, &req); err != nil {
		httpx.Error(w, h.Log, err, "failed to register user")
		return
	}
	if req.Email == "" || req.Username == "" || req.Password == "" {
		httpx.Error(w, h.Log, apperr.Validationf("all fields are required"), "failed to register user")
		return
	}

	hash, err := authutil.HashPassword(req.Password)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to register user")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.Create(ctx, models.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hash,
		Role:         models.RoleUser,
	})
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			httpx.Error(w, h.Log, apperr.Conflictf("email is already registered"), "failed to register user")
			return
		}
		httpx.Error(w, h.Log, err, "failed to register user")
		return
	}

	httpx.JSON(w, http.StatusCreated, registerResponse{
		Message: "user registered successfully",
		UserID:  u.ID.Hex(),
	})
}
