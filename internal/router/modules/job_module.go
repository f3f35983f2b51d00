package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/job-portal-api/internal/domain/entity"
	handlers "github.com/oksasatya/job-portal-api/internal/interface/http"
	"github.com/oksasatya/job-portal-api/internal/interface/middleware"
	"github.com/oksasatya/job-portal-api/pkg/helpers"
)

type JobModule struct {
	Handler *handlers.JobHandler
	rdb     *redis.Client
	jwt     *helpers.JWTManager
}

func NewJobModule(h *handlers.JobHandler, rdb *redis.Client, jwt *helpers.JWTManager) *JobModule {
	return &JobModule{Handler: h, rdb: rdb, jwt: jwt}
}

func (m *JobModule) Register(rg *gin.RouterGroup) {
	g := protected(rg, "/job", m.rdb, m.jwt)
	g.POST("/post", middleware.RequireRole(entity.RoleRecruiter), m.Handler.Post)
	g.GET("/get", m.Handler.List)
	g.GET("/get/:id", m.Handler.Get)
	g.GET("/getadminJobs", m.Handler.AdminJobs)
}
