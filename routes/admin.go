package routes

import (
	"github.com/gin-gonic/gin"

	adminControllers "github.com/ISSA5922/ambertek-export/controllers/admin"
	orderControllers "github.com/ISSA5922/ambertek-export/controllers/order"
	productcontroller "github.com/ISSA5922/ambertek-export/controllers/product"
	"github.com/ISSA5922/ambertek-export/middleware"
)

// SetupAdminRoutes registers the "/admin/*" endpoints, gated by API key.
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		orderGroup := adminGroup.Group("/orders")
		{
			orderGroup.GET("", orderControllers.GetAllOrders(d.DB))
			orderGroup.GET("/export", orderControllers.ExportOrdersToExcel(d.DB))
			orderGroup.GET("/feed", d.Feed.Handler)
			orderGroup.GET("/:orderID", orderControllers.GetOrderByID(d.DB))
			orderGroup.PUT("/:orderID/status", orderControllers.UpdateOrderStatus(d.DB))
			orderGroup.PUT("/:orderID/payment", orderControllers.UpdatePaymentStatus(d.DB))
			orderGroup.DELETE("/:orderID", orderControllers.DeleteOrder(d.DB))
		}

		productGroup := adminGroup.Group("/products")
		{
			productGroup.POST("", productcontroller.CreateProduct(d.DB))
			productGroup.PUT("/:id", productcontroller.UpdateProduct(d.DB))
			productGroup.DELETE("/:id", productcontroller.DeleteProduct(d.DB))
		}

		bannerGroup := adminGroup.Group("/banners")
		{
			bannerGroup.GET("", adminControllers.GetBanners(d.DB))
			bannerGroup.POST("", adminControllers.CreateBanner(d.DB))
			bannerGroup.PUT("/:id", adminControllers.UpdateBanner(d.DB))
			bannerGroup.DELETE("/:id", adminControllers.DeleteBanner(d.DB))
		}
	}
}
