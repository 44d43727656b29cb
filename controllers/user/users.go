package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ISSA5922/ambertek-export/auth"
	"github.com/ISSA5922/ambertek-export/middleware"
	"github.com/ISSA5922/ambertek-export/models"
)

type updateProfileInput struct {
	FirstName            *string `json:"first_name"`
	LastName             *string `json:"last_name"`
	Phone                *string `json:"phone"`
	Address              *string `json:"address"`
	City                 *string `json:"city"`
	Region               *string `json:"region"`
	NewsletterSubscribed *bool   `json:"newsletter_subscribed"`
}

// GET /user/profile
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.UserID(c)

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		profile, err := auth.EnsureProfile(db, &user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
			return
		}
		user.Profile = profile
		c.JSON(http.StatusOK, user)
	}
}

// PUT /user/profile
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.UserID(c)

		var input updateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		if input.FirstName != nil {
			user.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			user.LastName = *input.LastName
		}
		if err := db.Save(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}

		profile, err := auth.EnsureProfile(db, &user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
			return
		}
		if input.Phone != nil {
			profile.Phone = *input.Phone
		}
		if input.Address != nil {
			profile.Address = *input.Address
		}
		if input.City != nil {
			profile.City = *input.City
		}
		if input.Region != nil {
			profile.Region = *input.Region
		}
		if input.NewsletterSubscribed != nil {
			profile.NewsletterSubscribed = *input.NewsletterSubscribed
		}
		if err := db.Save(profile).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}

		user.Profile = profile
		c.JSON(http.StatusOK, user)
	}
}
