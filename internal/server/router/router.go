package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jdcastellanos/granja/internal/domain/models"
	"github.com/jdcastellanos/granja/internal/server/handlers"
	"github.com/jdcastellanos/granja/internal/server/middleware"
)

// Handlers groups the HTTP adapters wired into the route table.
type Handlers struct {
	Auth    *handlers.AuthHandler
	Records *handlers.RecordHandler
	Ledger  *handlers.LedgerHandler
	Reports *handlers.ReportHandler
	Config  *handlers.ConfigHandler
	Users   *handlers.UserHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, authMW *middleware.Auth, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.POST("/api/auth/login", h.Auth.Login)

	api := r.Group("/api", authMW.RequireAuth())
	{
		api.GET("/registros", h.Records.List)
		api.POST("/registros", h.Records.Submit)

		api.GET("/saldos", h.Ledger.Balances)
		api.POST("/movimientos/alimento", h.Ledger.AddFeed)
		api.POST("/movimientos/aves", authMW.RequireRoles(models.RoleSupervisor), h.Ledger.AddBirds)
		api.POST("/movimientos/huevo", h.Ledger.AddEggs)

		api.GET("/dashboard", h.Reports.Dashboard)
		api.GET("/reportes", authMW.RequireRoles(models.RoleAdmin, models.RoleSupervisor, models.RoleEncargado), h.Reports.Report)

		admin := api.Group("", authMW.RequireRoles(models.RoleAdmin))
		{
			admin.GET("/configuracion", h.Config.Get)
			admin.PATCH("/configuracion", h.Config.Update)

			admin.GET("/usuarios", h.Users.List)
			admin.POST("/usuarios", h.Users.Create)
			admin.PATCH("/usuarios", h.Users.Update)
			admin.DELETE("/usuarios", h.Users.Delete)
		}
	}

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
