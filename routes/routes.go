package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sauravtand/restaurant-management-system/configs"
	"github.com/sauravtand/restaurant-management-system/controllers"
	"github.com/sauravtand/restaurant-management-system/entity"
	"github.com/sauravtand/restaurant-management-system/middlewares"
	"github.com/sauravtand/restaurant-management-system/repository"
	"github.com/sauravtand/restaurant-management-system/services"
	"github.com/sauravtand/restaurant-management-system/ws"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, store *repository.Store, sessionDB *gorm.DB, hub *ws.EventHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Services
	authSvc := services.NewAuthService(store)
	sessionSvc := services.NewSessionService(authSvc, repository.NewSessionRepository(sessionDB), cfg.JWTSecret, cfg.JWTTTL)
	restSvc := services.NewRestaurantService(store)
	menuSvc := services.NewMenuService(store, hub)
	tableSvc := services.NewTableService(store, hub)
	orderSvc := services.NewOrderService(store, hub)

	// Controllers
	authCtrl := controllers.NewAuthController(sessionSvc, restSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	tableCtrl := controllers.NewTableController(tableSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(sessionSvc, cfg.JWTSecret))
	{
		aAuth.POST("/logout", authCtrl.Logout)
		aAuth.GET("/me", authCtrl.Me)
	}

	// ทุกอย่างข้างล่าง scope ด้วย restaurant code จาก session เท่านั้น
	auth := r.Group("/", middlewares.AuthMiddleware(sessionSvc, cfg.JWTSecret))
	{
		auth.GET("/restaurant", restCtrl.Detail)
		auth.GET("/restaurant/dashboard", restCtrl.Dashboard)

		auth.GET("/menu", menuCtrl.List)
		auth.GET("/tables", tableCtrl.List)
		auth.POST("/tables", tableCtrl.Create)
		auth.PATCH("/tables/:id", tableCtrl.Update)
		auth.DELETE("/tables/:id", tableCtrl.Delete)
		auth.GET("/orders", orderCtrl.List)
		auth.POST("/orders", orderCtrl.Create)
		auth.PATCH("/orders/:id", orderCtrl.Update)
		auth.DELETE("/orders/:id", orderCtrl.Delete)
	}

	// แก้เมนูได้เฉพาะ owner/manager
	manage := r.Group("/", middlewares.AuthMiddleware(sessionSvc, cfg.JWTSecret, entity.RoleOwner, entity.RoleManager))
	{
		manage.POST("/menu", menuCtrl.Create)
		manage.PATCH("/menu/:id", menuCtrl.Update)
		manage.DELETE("/menu/:id", menuCtrl.Delete)
	}

	// WS: dashboard ที่เปิดอยู่รับ event การเปลี่ยนข้อมูลของร้านตัวเอง
	r.GET("/ws/events", middlewares.WSAuthMiddleware(sessionSvc, cfg.JWTSecret), hub.HandleWebSocket)
}
