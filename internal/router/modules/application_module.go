package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/job-portal-api/internal/domain/entity"
	handlers "github.com/oksasatya/job-portal-api/internal/interface/http"
	"github.com/oksasatya/job-portal-api/internal/interface/middleware"
	"github.com/oksasatya/job-portal-api/pkg/helpers"
)

// ApplicationModule wires /application routes. Ownership of jobs is checked
// by the service, roles are checked here.
type ApplicationModule struct {
	Handler *handlers.ApplicationHandler
	rdb     *redis.Client
	jwt     *helpers.JWTManager
}

func NewApplicationModule(h *handlers.ApplicationHandler, rdb *redis.Client, jwt *helpers.JWTManager) *ApplicationModule {
	return &ApplicationModule{Handler: h, rdb: rdb, jwt: jwt}
}

func (m *ApplicationModule) Register(rg *gin.RouterGroup) {
	g := protected(rg, "/application", m.rdb, m.jwt)
	student := middleware.RequireRole(entity.RoleStudent)
	recruiter := middleware.RequireRole(entity.RoleRecruiter)

	g.GET("/apply/:jobId", student, m.Handler.Apply)
	g.POST("/apply/:jobId", student, m.Handler.Apply)
	g.GET("/get", m.Handler.ListMine)
	g.GET("/:jobId/applicants", recruiter, m.Handler.Applicants)
	g.GET("/:jobId/applicants/export", recruiter, m.Handler.ExportApplicants)
	g.POST("/status/:id/update", recruiter, m.Handler.UpdateStatus)
}
