// internal/app/features/users/types.go
package users

import (
	"github.com/dalemusser/taskhub/internal/domain/models"
)

// userView is the wire projection of a user document. The password hash
// never leaves the store layer's model, and the model's json tags hide
// it anyway; the view pins the exact field set the original API emits.
type userView struct {
	ID       string `json:"_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func toUserView(u models.User) userView {
	return userView{
		ID:       u.ID.Hex(),
		Email:    u.Email,
		Username: u.Username,
		Role:     u.Role,
	}
}

// userResponse is the {message, user} body returned by the update and
// role routes.
type userResponse struct {
	Message string   `json:"message"`
	User    userView `json:"user"`
}
