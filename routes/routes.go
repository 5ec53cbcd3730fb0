package routes

import (
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/configs"
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/controllers"
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/dispatch"
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/middlewares"
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/repository"
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/services"
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.KitchenHub, dispatcher dispatch.Dispatcher) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	tableRepo := repository.NewTableRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	staffRepo := repository.NewStaffRepository(db)

	// Services
	orderSvc := services.NewOrderService(db, orderRepo, tableRepo, menuRepo)
	tableSvc := services.NewTableService(db, tableRepo)
	paymentSvc := services.NewPaymentService(db, orderRepo, tableRepo, historyRepo, dispatcher)
	authSvc := services.NewAuthService(staffRepo, cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	tableCtrl := controllers.NewTableController(tableSvc, hub)
	orderCtrl := controllers.NewOrderController(orderSvc, hub)
	kitchenCtrl := controllers.NewKitchenController(orderSvc, hub)
	paymentCtrl := controllers.NewPaymentController(paymentSvc, hub)
	reportCtrl := controllers.NewReportController(orderSvc)
	menuCtrl := controllers.NewMenuController(menuRepo)

	// Auth (staff)
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)
	}

	// ฝั่งลูกค้า (ผ่าน QR โต๊ะ ไม่ต้อง login)
	r.GET("/menu", menuCtrl.List)
	r.POST("/tables/:id/session", tableCtrl.OpenSession)
	r.PATCH("/tables/:id/checkout-time", tableCtrl.UpdateCheckoutTime)
	r.POST("/orders", orderCtrl.Create)
	r.POST("/orders/:id/items", orderCtrl.AddItem)
	r.GET("/orders/:id/items", orderCtrl.Items)
	r.GET("/tables/:id/orders", orderCtrl.ListForTable)

	// ฝั่งพนักงาน
	staff := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		staff.GET("/tables", tableCtrl.List)
		staff.PATCH("/tables/:id/status", tableCtrl.UpdateStatus)
		staff.POST("/tables/:id/clear", tableCtrl.Clear)
		staff.GET("/ws/kitchen", hub.HandleWebSocket)
	}

	kitchen := r.Group("/kitchen", middlewares.AuthMiddleware(cfg.JWTSecret, "kitchen"))
	{
		kitchen.PATCH("/items/:id/status", kitchenCtrl.SetItemStatus)
	}

	cashier := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, "cashier"))
	{
		cashier.POST("/tables/:id/payment", paymentCtrl.Complete)
	}

	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/reports/orders", reportCtrl.OrdersByDateRange)
	}
}
