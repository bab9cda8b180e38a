package routes

import (
	"storefront/controllers"
	"storefront/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, pc *controllers.ProductController, oc *controllers.OrderController, hc *controllers.HealthController) {
	r.Use(middleware.RequestLogger())

	r.GET("/health", hc.Check)

	r.POST("/products/", pc.CreateProduct)

	r.POST("/orders/", oc.CreateOrder)
	r.GET("/orders/", oc.ListOrders)
	r.GET("/orders/:order_id", oc.GetOrderByID)
}
