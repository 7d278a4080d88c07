// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	groupsfeature "github.com/dalemusser/taskhub/internal/app/features/groups"
	healthfeature "github.com/dalemusser/taskhub/internal/app/features/health"
	loginfeature "github.com/dalemusser/taskhub/internal/app/features/login"
	registerfeature "github.com/dalemusser/taskhub/internal/app/features/register"
	tasksfeature "github.com/dalemusser/taskhub/internal/app/features/tasks"
	usersfeature "github.com/dalemusser/taskhub/internal/app/features/users"
	"github.com/dalemusser/taskhub/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE
// app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and Startup have completed. TaskHub mounts the two public routes
// (register, login) and the health endpoint directly, and groups every
// /api/users, /api/tasks, and /api/groups route behind the bearer-token
// middleware.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	issuer := auth.NewIssuer(appCfg.JWTSecret, appCfg.JWTIssuer, appCfg.TokenTTL)

	db := deps.TaskHubMongoDatabase

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.TaskHubMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Public authentication surface
	registerHandler := registerfeature.NewHandler(db, logger)
	r.Mount("/api/register", registerfeature.Routes(registerHandler))

	loginHandler := loginfeature.NewHandler(db, issuer, logger)
	r.Mount("/api/login", loginfeature.Routes(loginHandler))

	// Everything else requires a verified bearer token.
	r.Group(func(pr chi.Router) {
		pr.Use(issuer.RequireAuth)

		usersHandler := usersfeature.NewHandler(db, logger)
		pr.Mount("/api/users", usersfeature.Routes(usersHandler))

		tasksHandler := tasksfeature.NewHandler(db, logger)
		pr.Mount("/api/tasks", tasksfeature.Routes(tasksHandler))

		groupsHandler := groupsfeature.NewHandler(db, logger)
		pr.Mount("/api/groups", groupsfeature.Routes(groupsHandler))
	})

	return r, nil
}
