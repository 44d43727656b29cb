package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ISSA5922/ambertek-export/cart"
	"github.com/ISSA5922/ambertek-export/catalog"
	orderControllers "github.com/ISSA5922/ambertek-export/controllers/order"
	"github.com/ISSA5922/ambertek-export/middleware"
	"github.com/ISSA5922/ambertek-export/orders"
)

// Deps carries the composed collaborators the route groups wire handlers
// against.
type Deps struct {
	DB         *gorm.DB
	Catalog    *catalog.Store
	Carts      *cart.Store
	Assembler  *orders.Assembler
	OrderStore *orders.GormStore
	Guard      *middleware.Guard
	Feed       *orderControllers.Feed
}

// SetupRoutes is the single entry point that wires up the public, user and
// admin route groups.
func SetupRoutes(r *gin.Engine, d Deps) {
	r.Use(middleware.EnsureSession, middleware.ResolveLocale)

	SetupPublicRoutes(r, d)
	SetupUserRoutes(r, d)
	SetupAdminRoutes(r, d)
}
