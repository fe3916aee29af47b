package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/config"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/api/handler"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/api/middleware"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/pkg/jwt"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/pkg/redis"
)

// Setup builds the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(10 << 20))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// authentication (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// routes requiring authentication
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// admin-only management surface
			admin := authorized.Group("/admin")
			admin.Use(middleware.RoleAuth("admin"))
			{
				admin.GET("/dashboard", h.Dashboard.AdminStats)

				admin.POST("/users", h.User.Create)
				admin.GET("/users", h.User.List)
				admin.GET("/users/:id", h.User.GetByID)
				admin.PUT("/users/:id", h.User.Update)

				admin.POST("/teams", h.Team.Create)
				admin.PUT("/teams/:id", h.Team.Update)
				admin.DELETE("/teams/:id", h.Team.Delete)

				admin.POST("/mitra", h.Mitra.Create)
				admin.PUT("/mitra/:id", h.Mitra.Update)

				admin.POST("/schedules", h.Schedule.Create)
				admin.DELETE("/schedules/:id", h.Schedule.Delete)
				admin.POST("/schedules/import-holidays", h.Schedule.ImportHolidays)

				admin.GET("/settings", h.Settings.Get)
				admin.PUT("/settings", h.Settings.Update)
			}

			// pegawai directory for project/task assignment
			authorized.GET("/users/pegawai", middleware.RoleAuth("admin", "ketua_tim"), h.User.ListPegawai)

			// teams (read)
			teams := authorized.Group("/teams")
			{
				teams.GET("", h.Team.List)
				teams.GET("/:id", h.Team.GetByID)
			}

			// projects
			projects := authorized.Group("/projects")
			{
				projects.GET("", h.Project.List)
				projects.GET("/:id", h.Project.GetByID)
				projects.POST("", middleware.RoleAuth("ketua_tim"), h.Project.Create)
				projects.PUT("/:id", middleware.RoleAuth("ketua_tim"), h.Project.Update)
				projects.DELETE("/:id", middleware.RoleAuth("ketua_tim"), h.Project.Delete)
			}

			// tasks
			tasks := authorized.Group("/tasks")
			{
				tasks.GET("", h.Task.List)
				tasks.GET("/:id", h.Task.GetByID)
				tasks.GET("/:id/transport", h.Transport.TaskSummary)
				tasks.POST("", middleware.RoleAuth("ketua_tim"), h.Task.Create)
				tasks.PUT("/:id", middleware.RoleAuth("ketua_tim"), h.Task.Update)
				tasks.PUT("/:id/respond", middleware.RoleAuth("pegawai"), h.Task.Respond)
				tasks.DELETE("/:id", middleware.RoleAuth("ketua_tim"), h.Task.Delete)
			}

			// transport allocations
			transport := authorized.Group("/transport/allocations")
			{
				transport.GET("", middleware.RoleAuth("pegawai"), h.Transport.ListMine)
				transport.PUT("/:id/date", middleware.RoleAuth("pegawai"), h.Transport.AllocateDate)
				transport.DELETE("/:id", h.Transport.Cancel) // owner or project leader, checked in service
			}

			// earnings reporting
			earnings := authorized.Group("/earnings")
			{
				earnings.GET("/monthly", middleware.RoleAuth("admin", "ketua_tim"), h.Earnings.Monthly)
				earnings.GET("/daily", middleware.RoleAuth("admin", "ketua_tim"), h.Earnings.Daily)
				earnings.GET("/me", middleware.RoleAuth("pegawai"), h.Earnings.Me)
				// export is self-scoped for pegawai, so every role may call it
				earnings.GET("/export", h.Export.MonthlyRecap)
			}

			// mitra directory and reviews
			mitra := authorized.Group("/mitra")
			{
				mitra.GET("", h.Mitra.List)
				mitra.GET("/:id", h.Mitra.GetByID)
				mitra.GET("/:id/monthly-total", middleware.RoleAuth("admin", "ketua_tim"), h.Mitra.MonthlyTotal)
				mitra.GET("/:id/reviews", h.Mitra.ListReviews)
				mitra.POST("/:id/reviews", middleware.RoleAuth("pegawai"), h.Mitra.CreateReview)
			}

			// global schedules (blackout ranges, read for everyone)
			authorized.GET("/schedules", h.Schedule.List)

			// notifications
			notifications := authorized.Group("/notifications")
			{
				notifications.GET("", h.Notification.List)
				notifications.GET("/unread-count", h.Notification.CountUnread)
				notifications.PUT("/read-all", h.Notification.MarkAllRead)
				notifications.PUT("/:id/read", h.Notification.MarkRead)
			}
		}
	}

	return r
}
