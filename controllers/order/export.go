package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/ISSA5922/ambertek-export/models"
)

// GET /admin/orders/export
//
// Downloads the full order book as a spreadsheet, one row per order.
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var list []models.Order
		if err := db.Preload("Items").Order("created_at DESC").Find(&list).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"OrderNumber", "Status", "PaymentMethod", "Paid", "Customer",
			"Email", "Phone", "Address", "City", "Region", "Items",
			"TotalAmount", "EstimatedDelivery", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, order := range list {
			row := sheet.AddRow()
			row.AddCell().SetValue(order.OrderNumber)
			row.AddCell().SetValue(string(order.Status))
			row.AddCell().SetValue(order.PaymentMethodDisplay())
			row.AddCell().SetValue(order.PaymentStatus)
			row.AddCell().SetValue(order.CustomerName)
			row.AddCell().SetValue(order.CustomerEmail)
			row.AddCell().SetValue(order.CustomerPhone)
			row.AddCell().SetValue(order.CustomerAddress)
			row.AddCell().SetValue(order.CustomerCity)
			row.AddCell().SetValue(order.CustomerRegion)
			row.AddCell().SetValue(len(order.Items))
			row.AddCell().SetValue(order.TotalAmount.StringFixed(2))
			if order.EstimatedDelivery != nil {
				row.AddCell().SetValue(order.EstimatedDelivery.Format("2006-01-02"))
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(order.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
