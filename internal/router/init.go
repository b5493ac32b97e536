package router

import (
	userapp "github.com/agrosense/identity-service/internal/application"
	"github.com/agrosense/identity-service/internal/container"
	pginfra "github.com/agrosense/identity-service/internal/infrastructure/postgres"
	handlers "github.com/agrosense/identity-service/internal/interface/http"
	"github.com/agrosense/identity-service/internal/router/modules"
)

// InitModules constructs the service with its collaborators and
// registers every feature module. Called once during startup.
func InitModules(r *Registry) {
	repo := pginfra.NewUserRepository(container.GetPGPool())

	service := userapp.NewService(
		repo,
		container.GetHasher(),
		container.GetJWT(),
		container.GetLogger(),
	)

	authHandler := handlers.NewAuthHandler(service, container.GetLogger())
	userHandler := handlers.NewUserHandler(service, container.GetLogger())

	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewUserModule(userHandler, container.GetJWT()))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
