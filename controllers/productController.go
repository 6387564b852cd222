package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Kariqs/carta-vendor-portal/backend"
	"github.com/Kariqs/carta-vendor-portal/initializers"
	"github.com/Kariqs/carta-vendor-portal/models"
	"github.com/Kariqs/carta-vendor-portal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type productRow struct {
	Name            string          `json:"name"`
	SKU             string          `json:"sku"`
	Price           decimal.Decimal `json:"price"`
	QuantityInStock int             `json:"quantity_in_stock"`
}

func GetProducts(ctx *gin.Context) {
	products := initializers.App.Inventory.Products(ctx.Request.Context())

	rows := make([]productRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, productRow{Name: p.Name, SKU: p.SKU, Price: p.Price, QuantityInStock: p.QuantityInStock})
	}

	response := gin.H{"products": rows}
	if len(rows) == 0 {
		response["message"] = "No products found."
	}
	sendJSONResponse(ctx, http.StatusOK, response)
}

func CreateProduct(ctx *gin.Context) {
	var product models.NewProduct
	if err := ctx.ShouldBindJSON(&product); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	err := initializers.App.Inventory.AddProduct(ctx.Request.Context(), product)
	if err == nil {
		sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": msgProductAdded})
		return
	}

	var reqErr *backend.RequestError
	switch {
	case errors.Is(err, models.ErrInvalidProduct):
		sendJSONResponse(ctx, http.StatusBadRequest, gin.H{"message": msgInvalidProduct, "error": err.Error()})
	case errors.As(err, &reqErr):
		sendJSONResponse(ctx, http.StatusBadGateway, gin.H{"message": msgFailedToAddProduct, "error": reqErr.Body})
	default:
		sendJSONResponse(ctx, http.StatusBadGateway, gin.H{"message": msgFailedToAddProduct, "error": err.Error()})
	}
}

// UploadProductImage stores an image and returns the URL to use as the
// product's image_url.
func UploadProductImage(ctx *gin.Context) {
	file, err := ctx.FormFile("image")
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgMissingImage)
		return
	}

	f, err := file.Open()
	if err != nil {
		log.Printf("Error opening file %s: %v", file.Filename, err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgMissingImage)
		return
	}
	defer f.Close()

	url, err := initializers.App.Images.UploadProductImage(ctx.Request.Context(), file.Filename, file.Header.Get("Content-Type"), f)
	if err != nil {
		if errors.Is(err, utils.ErrUploadsDisabled) {
			sendErrorResponse(ctx, http.StatusNotImplemented, msgUploadsDisabled)
			return
		}
		log.Println("Image upload failed:", err)
		sendErrorResponse(ctx, http.StatusBadGateway, msgFailedToUploadImage)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"url": url})
}
