package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ISSA5922/ambertek-export/auth"
	"github.com/ISSA5922/ambertek-export/cart"
	"github.com/ISSA5922/ambertek-export/catalog"
	"github.com/ISSA5922/ambertek-export/i18n"
	"github.com/ISSA5922/ambertek-export/middleware"
	"github.com/ISSA5922/ambertek-export/models"
)

// GET /user/checkout
//
// Checkout summary: the priced cart plus contact fields pre-filled from the
// account profile, for the client to render the checkout form.
func CheckoutView(db *gorm.DB, cat *catalog.Store, store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		loc := middleware.Locale(c)
		sid := middleware.SessionID(c)

		lines, total, itemsCount := renderCart(cat, store, sid)
		if len(lines) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":    i18n.T(loc, "cart.empty"),
				"redirect": "/user/cart",
			})
			return
		}

		prefill := gin.H{}
		if userID, ok := middleware.UserID(c); ok {
			var user models.User
			if err := db.First(&user, "id = ?", userID).Error; err == nil {
				prefill["customer_name"] = user.FullName()
				prefill["customer_email"] = user.Email
				if profile, err := auth.EnsureProfile(db, &user); err == nil {
					prefill["customer_phone"] = profile.Phone
					prefill["customer_address"] = profile.Address
					prefill["customer_city"] = profile.City
					prefill["customer_region"] = profile.Region
				}
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"items":       lines,
			"cart_total":  total,
			"items_count": itemsCount,
			"prefill":     prefill,
		})
	}
}
