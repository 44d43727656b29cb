package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ISSA5922/ambertek-export/models"
)

// GET /
//
// Home content: active banners, category tiles and featured products in
// display order.
func Home(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banners []models.HomepageBanner
		var categoryBanners []models.CategoryBanner
		var featured []models.FeaturedProduct

		db.Where("is_active = ?", true).Order("display_order, created_at DESC").Find(&banners)
		db.Where("is_active = ?", true).Order("display_order").Find(&categoryBanners)
		db.Where("is_active = ?", true).Order("display_order").Find(&featured)

		c.JSON(http.StatusOK, gin.H{
			"homepage_banners":  banners,
			"category_banners":  categoryBanners,
			"featured_products": featured,
		})
	}
}

// GET /products?category=<id>
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Category").Where("available = ?", true)

		if raw := c.Query("category"); raw != "" {
			categoryID, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
				return
			}
			query = query.Where("category_id = ?", categoryID)
		}

		var products []models.Product
		if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		var categories []models.Category
		db.Order("name").Find(&categories)

		c.JSON(http.StatusOK, gin.H{
			"products":   products,
			"categories": categories,
		})
	}
}

// GET /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.Preload("Category").First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
