package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/order-api/config"
	"github.com/yeremiapane/order-api/controllers"
	"github.com/yeremiapane/order-api/middlewares"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSOrigin))
	r.Use(middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).RateLimit())

	// Inisialisasi controller
	customerCtrl := controllers.NewCustomerController(db)
	itemCtrl := controllers.NewItemController(db)
	orderCtrl := controllers.NewOrderController(db)
	orderListCtrl := controllers.NewOrderListController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// CUSTOMERS
	r.POST("/customers", customerCtrl.CreateCustomer)
	r.GET("/customers/:cust_id", customerCtrl.GetCustomerByID)
	r.PUT("/customers/:cust_id", customerCtrl.UpdateCustomer)
	r.DELETE("/customers/:cust_id", customerCtrl.DeleteCustomer)

	// ITEMS
	r.POST("/items", itemCtrl.CreateItem)
	r.GET("/items/:item_id", itemCtrl.GetItemByID)
	r.PUT("/items/:item_id", itemCtrl.UpdateItem)
	r.DELETE("/items/:item_id", itemCtrl.DeleteItem)

	// ORDERS (beserta daftar item)
	r.POST("/orders", orderCtrl.CreateOrder)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	r.PUT("/orders/:order_id", orderCtrl.UpdateOrder)
	r.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)

	// ORDER LIST (baris link order <-> item)
	r.POST("/order_list", orderListCtrl.CreateOrderList)
	r.GET("/order_list/:order_list_id", orderListCtrl.GetOrderListByID)
	r.PUT("/order_list/:order_list_id", orderListCtrl.UpdateOrderList)
	r.DELETE("/order_list/:order_list_id", orderListCtrl.DeleteOrderList)

	return r
}
