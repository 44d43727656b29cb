package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/ISSA5922/ambertek-export/controllers/cart"
	orderControllers "github.com/ISSA5922/ambertek-export/controllers/order"
	userControllers "github.com/ISSA5922/ambertek-export/controllers/user"
	"github.com/ISSA5922/ambertek-export/middleware"
)

// SetupUserRoutes registers the "/user/*" endpoints. The cart, checkout and
// order namespaces sit behind the access guard so unauthenticated visitors
// get the login redirect with their intended path remembered.
func SetupUserRoutes(r *gin.Engine, d Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.AuthOptional, d.Guard.RequireAuth)
	{
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(d.Catalog, d.Carts))
			cartGroup.POST("/:product_id", cartControllers.AddToCart(d.Catalog, d.Carts))
			cartGroup.PUT("/:product_id", cartControllers.UpdateCartItem(d.Catalog, d.Carts))
			cartGroup.DELETE("/:product_id", cartControllers.RemoveFromCart(d.Carts))
			cartGroup.DELETE("", cartControllers.ClearCart(d.Carts))
		}

		userGroup.GET("/checkout", cartControllers.CheckoutView(d.DB, d.Catalog, d.Carts))

		orderGroup := userGroup.Group("/orders")
		{
			orderGroup.POST("", orderControllers.PlaceOrderHandler(d.Assembler))
			orderGroup.GET("", orderControllers.MyOrders(d.DB))
			orderGroup.GET("/:orderID", orderControllers.OrderConfirmation(d.OrderStore))
		}
	}

	profileGroup := r.Group("/user/profile")
	profileGroup.Use(middleware.ValidateToken)
	{
		profileGroup.GET("", userControllers.GetProfile(d.DB))
		profileGroup.PUT("", userControllers.UpdateProfile(d.DB))
	}
}
