package routes

import (
	"pos-backend/configs"
	"pos-backend/controllers"
	"pos-backend/entity"
	"pos-backend/middlewares"
	"pos-backend/repository"
	"pos-backend/services"
	"pos-backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.OrderHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	invRepo := repository.NewInventoryRepository(db)
	userRepo := repository.NewUserRepository(db)
	periodRepo := repository.NewWorkPeriodRepository(db)

	// Services
	invSvc := services.NewInventoryService(db, invRepo)
	settlement := services.NewSettlementService(orderRepo, invRepo, invSvc)
	orderSvc := services.NewOrderService(db, orderRepo, settlement)
	orderSvc.Notifier = hub
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	userSvc := services.NewUserService(userRepo)
	periodSvc := services.NewWorkPeriodService(periodRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	userCtrl := controllers.NewUserController(userSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	invCtrl := controllers.NewInventoryController(invSvc)
	catCtrl := controllers.NewCategoryController(db)
	menuCtrl := controllers.NewMenuController(db)
	settingsCtrl := controllers.NewSettingsController(db)
	reportCtrl := controllers.NewReportController(db)
	periodCtrl := controllers.NewWorkPeriodController(periodSvc)

	staff := middlewares.AuthMiddleware(cfg.JWTSecret)
	managers := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin, entity.RoleManager)
	admins := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.POST("/logout", staff, authCtrl.Logout)
		a.GET("/me", staff, authCtrl.Me)
	}

	// Catalog
	r.GET("/categories", staff, catCtrl.List)
	r.POST("/categories", managers, catCtrl.Create)
	r.PATCH("/categories/:id", managers, catCtrl.Update)
	r.DELETE("/categories/:id", managers, catCtrl.Delete)

	r.GET("/menu-items", staff, menuCtrl.List)
	r.POST("/menu-items", managers, menuCtrl.Create)
	r.PATCH("/menu-items/:id", managers, menuCtrl.Update)
	r.DELETE("/menu-items/:id", managers, menuCtrl.Delete)

	// Orders
	o := r.Group("/orders", staff)
	{
		o.POST("", orderCtrl.Create)
		o.GET("", orderCtrl.List)
		o.GET("/:id", orderCtrl.Detail)
		o.PATCH("/:id/status", orderCtrl.UpdateStatus)
	}

	// Inventory
	inv := r.Group("/inventory", staff)
	{
		inv.GET("", invCtrl.List)
		inv.GET("/low-stock", invCtrl.LowStock)
		inv.GET("/:id/history", invCtrl.History)
	}
	invAdmin := r.Group("/inventory", managers)
	{
		invAdmin.POST("/:id/movements", invCtrl.ApplyMovement)
		invAdmin.PUT("/:id/stock", invCtrl.SetStock)
		invAdmin.PATCH("/:id/settings", invCtrl.UpdateSettings)
	}

	// Work periods
	wp := r.Group("/work-periods", staff)
	{
		wp.POST("", periodCtrl.Start)
		wp.PATCH("/:id/end", periodCtrl.End)
		wp.GET("/active", periodCtrl.Active)
		wp.GET("", periodCtrl.List)
	}

	// Settings & reports
	r.GET("/settings", staff, settingsCtrl.GetAll)
	r.PUT("/settings/:key", admins, settingsCtrl.Update)
	r.GET("/reports/sales", managers, reportCtrl.Sales)

	// Users (admin only)
	u := r.Group("/users", admins)
	{
		u.GET("", userCtrl.List)
		u.POST("", userCtrl.Create)
		u.PATCH("/:id", userCtrl.Update)
		u.DELETE("/:id", userCtrl.Delete)
	}

	// Live order feed for kitchen/front displays
	r.GET("/ws/orders", staff, hub.HandleWebSocket)
}
