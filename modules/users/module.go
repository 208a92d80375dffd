// Package users provides account registration and login.
// This is the public API for the users bounded context.
package users

import (
	"log/slog"
	"net/http"

	"github.com/Ron9508/bookstore-backend/internal/platform/httpserver"
	"github.com/Ron9508/bookstore-backend/modules/shared/events"
	"github.com/Ron9508/bookstore-backend/modules/users/application/commands"
	"github.com/Ron9508/bookstore-backend/modules/users/application/queries"
	"github.com/Ron9508/bookstore-backend/modules/users/domain"
	httphandler "github.com/Ron9508/bookstore-backend/modules/users/infrastructure/http"
)

// Module is the public API for the users bounded context.
type Module interface {
	// RegisterRoutes registers the module's HTTP routes to the given mux.
	RegisterRoutes(mux *http.ServeMux, requireAuth httpserver.MiddlewareFunc)
}

// Config holds the module configuration.
type Config struct {
	Repository       domain.UserRepository
	CredentialIssuer commands.CredentialIssuer
	EventPublisher   events.Publisher
	Logger           *slog.Logger
}

type module struct {
	registerUser *commands.RegisterUserHandler
	login        *commands.LoginHandler
	getProfile   *queries.GetProfileHandler
}

// New creates a new users module.
func New(cfg Config) Module {
	return &module{
		registerUser: commands.NewRegisterUserHandler(cfg.Repository, cfg.EventPublisher, cfg.Logger),
		login:        commands.NewLoginHandler(cfg.Repository, cfg.CredentialIssuer),
		getProfile:   queries.NewGetProfileHandler(cfg.Repository),
	}
}

func (m *module) RegisterRoutes(mux *http.ServeMux, requireAuth httpserver.MiddlewareFunc) {
	httphandler.RegisterRoutes(mux, requireAuth, m.registerUser, m.login, m.getProfile)
}
