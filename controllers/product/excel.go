package productControllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tealeg/xlsx"

	"github.com/premstore-git/premium-store-api/catalog"
	"github.com/premstore-git/premium-store-api/models"
)

// GET /admin/products/export-excel
func ExportProductsToExcel(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := cat.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Name", "Description", "Price", "OriginalPrice",
			"Category", "Stock", "Image", "CreatedAt", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Price)
			if p.OriginalPrice != nil {
				row.AddCell().SetValue(*p.OriginalPrice)
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(p.Stock)
			row.AddCell().SetValue(p.Image)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(p.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}

// POST /admin/products/import-excel
func ImportProductsFromExcel(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}
		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		importedCount, skippedCount := 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			id := get(0)
			name := get(1)
			description := get(2)
			price, priceErr := strconv.ParseFloat(get(3), 64)
			category := get(5)
			stock, _ := strconv.Atoi(get(6))
			image := get(7)

			if name == "" || priceErr != nil || price <= 0 {
				skippedCount++
				continue
			}

			var originalPrice *float64
			if v, err := strconv.ParseFloat(get(4), 64); err == nil && v > 0 {
				originalPrice = &v
			}

			if id == "" {
				id = "prod-" + uuid.NewString()
			}
			now := time.Now()
			product := models.Product{
				ID:            id,
				Name:          name,
				Description:   description,
				Price:         price,
				OriginalPrice: originalPrice,
				Category:      category,
				Stock:         stock,
				Image:         image,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if existing, err := cat.Get(c.Request.Context(), id); err == nil && existing != nil {
				product.CreatedAt = existing.CreatedAt
			}

			if err := cat.Upsert(c.Request.Context(), product); err != nil {
				skippedCount++
				continue
			}
			importedCount++
		}

		c.JSON(http.StatusOK, gin.H{
			"imported": importedCount,
			"skipped":  skippedCount,
		})
	}
}
