package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/job-portal-api/internal/interface/http"
	"github.com/oksasatya/job-portal-api/internal/interface/middleware"
	"github.com/oksasatya/job-portal-api/pkg/helpers"
)

// UserModule wires account routes.
// Public: POST /user/register, POST /user/login
// Protected: GET|POST /user/logout, GET /user/profile, POST /user/profile/update
type UserModule struct {
	Handler *handlers.UserHandler
	rdb     *redis.Client
	jwt     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, rdb *redis.Client, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, rdb: rdb, jwt: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(m.rdb, 10, time.Minute, middleware.KeyByIPAndPath(), nil) // 10 req/min per IP
	loginLimiter := middleware.RateLimit(m.rdb, 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	pub := rg.Group("/user")
	pub.POST("/register", registerLimiter, m.Handler.Register)
	pub.POST("/login", loginLimiter, m.Handler.Login)

	auth := protected(rg, "/user", m.rdb, m.jwt)
	{
		auth.GET("/logout", m.Handler.Logout)
		auth.POST("/logout", m.Handler.Logout)
		auth.GET("/profile", m.Handler.GetProfile)
		auth.POST("/profile/update", m.Handler.UpdateProfile)
	}
}
