// internal/app/features/login/handler.go
package login

import (
	userstore "github.com/dalemusser/taskhub/internal/app/store/users"
	"github.com/dalemusser/taskhub/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves credential login and token issuance.
type Handler struct {
	DB     *mongo.Database
	Log    *zap.Logger
	Issuer *auth.Issuer
	Users  *userstore.Store
}

func NewHandler(db *mongo.Database, issuer *auth.Issuer, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Log:    logger,
		Issuer: issuer,
		Users:  userstore.New(db),
	}
}
