package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/agrosense/identity-service/internal/interface/http"
	"github.com/agrosense/identity-service/internal/interface/middleware"
	"github.com/agrosense/identity-service/pkg/helpers"
)

// UserModule wires authenticated user queries behind bearer-token auth.
// GET /users
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.BearerAuth(m.JWT))
	{
		auth.GET("/users", m.Handler.List)
	}
}
