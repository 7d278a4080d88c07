// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	userstore "github.com/dalemusser/taskhub/internal/app/store/users"
	"github.com/dalemusser/taskhub/internal/app/system/authutil"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
// TaskHub uses it to seed the initial admin account so a fresh
// deployment is administrable without poking the database by hand.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return seedAdmin(ctx, appCfg, deps, logger)
}

// seedAdmin creates the configured admin account when the users
// collection has no admin yet. Seeding is skipped when no admin
// password is configured, and when any admin already exists.
func seedAdmin(ctx context.Context, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.AdminPassword == "" {
		logger.Info("admin seeding disabled, no admin_password configured")
		return nil
	}

	users := userstore.New(deps.TaskHubMongoDatabase)

	n, err := users.CountAdmins(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		logger.Debug("admin account already exists, skipping seed")
		return nil
	}

	hash, err := authutil.HashPassword(appCfg.AdminPassword)
	if err != nil {
		return err
	}

	u, err := users.Create(ctx, models.User{
		Email:        appCfg.AdminEmail,
		Username:     appCfg.AdminUsername,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	})
	if err != nil {
		return err
	}

	logger.Info("seeded initial admin account",
		zap.String("user_id", u.ID.Hex()),
		zap.String("email", u.Email))
	return nil
}
