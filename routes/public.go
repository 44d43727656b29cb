package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ISSA5922/ambertek-export/auth"
	orderControllers "github.com/ISSA5922/ambertek-export/controllers/order"
	productcontroller "github.com/ISSA5922/ambertek-export/controllers/product"
)

// SetupPublicRoutes registers the endpoints that need no authentication:
// browsing, order tracking and the auth entry points.
func SetupPublicRoutes(r *gin.Engine, d Deps) {
	r.GET("/", productcontroller.Home(d.DB))
	r.GET("/products", productcontroller.GetProducts(d.DB))
	r.GET("/products/:id", productcontroller.GetProductByID(d.DB))

	r.GET("/orders/track/:orderNumber", orderControllers.TrackOrder(d.OrderStore))

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.RegisterHandler(d.DB))
		authGroup.POST("/login", auth.LoginHandler(d.DB, d.Guard))
	}
}
