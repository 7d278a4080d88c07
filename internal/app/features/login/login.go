// internal/app/features/login/login.go
package login

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/apperr"
	"github.com/dalemusser/taskhub/internal/app/system/authutil"
	"github.com/dalemusser/taskhub/internal/app/system/httpx"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message  string `json:"message"`
	Token    string `json:"token"`
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// HandleLogin serves POST /api/login. Unknown email and wrong password
// are both 400, with distinct messages matching the original client's
// expectations.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.Decode(w, r, &req); err != nil {
		httpx.Error(w, h.Log, err, "failed to log in")
		return
	}
	if req.Email == "" || req.Password == "" {
		httpx.Error(w, h.Log, apperr.Validationf("email and password are required"), "failed to log in")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpx.Error(w, h.Log, apperr.New(apperr.Auth, "user not found"), "failed to log in")
			return
		}
		httpx.Error(w, h.Log, err, "failed to log in")
		return
	}

	if !authutil.CheckPassword(req.Password, u.PasswordHash) {
		httpx.Error(w, h.Log, apperr.New(apperr.Auth, "incorrect password"), "failed to log in")
		return
	}

	token, err := h.Issuer.Issue(u.ID.Hex(), u.Email)
	if err != nil {
		httpx.Error(w, h.Log, err, "failed to log in")
		return
	}

	httpx.JSON(w, http.StatusOK, loginResponse{
		Message:  "login successful",
		Token:    token,
		UserID:   u.ID.Hex(),
		Email:    u.Email,
		Username: u.Username,
		Role:     u.Role,
	})
}
