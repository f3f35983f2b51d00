package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/job-portal-api/internal/domain/entity"
	handlers "github.com/oksasatya/job-portal-api/internal/interface/http"
	"github.com/oksasatya/job-portal-api/internal/interface/middleware"
	"github.com/oksasatya/job-portal-api/pkg/helpers"
)

// CompanyModule wires /company routes; all of them require a session.
type CompanyModule struct {
	Handler *handlers.CompanyHandler
	rdb     *redis.Client
	jwt     *helpers.JWTManager
}

func NewCompanyModule(h *handlers.CompanyHandler, rdb *redis.Client, jwt *helpers.JWTManager) *CompanyModule {
	return &CompanyModule{Handler: h, rdb: rdb, jwt: jwt}
}

func (m *CompanyModule) Register(rg *gin.RouterGroup) {
	g := protected(rg, "/company", m.rdb, m.jwt)
	recruiter := middleware.RequireRole(entity.RoleRecruiter)
	g.POST("/register", recruiter, m.Handler.Register)
	g.GET("/get", m.Handler.List)
	g.GET("/get/:id", m.Handler.Get)
	g.PUT("/update/:id", recruiter, m.Handler.Update)
}
