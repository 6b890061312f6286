package routes

import (
	"shop_manager/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDocuments = "/documents"
	PathInventory = "/inventory"
	PathPayments  = "/payments"
)

func addShopRoutes(
	rg *gin.RouterGroup,
	documentHandler *handlers.DocumentHandler,
	inventoryHandler *handlers.InventoryHandler,
	paymentHandler *handlers.PaymentHandler,
) {
	documents := rg.Group(PathDocuments)
	{
		documents.POST("", documentHandler.CreateDocument)
		documents.POST("/:id/photos", documentHandler.UploadPhoto)
		documents.GET("", documentHandler.ListDocuments)
		documents.GET("/:id", documentHandler.GetDocument)
		documents.PUT("/:id", documentHandler.UpdateDocument)
		documents.PATCH("/:id/convert", documentHandler.ConvertDocument)
	}

	inventory := rg.Group(PathInventory)
	{
		inventory.POST("/products", inventoryHandler.CreateProduct)
		inventory.GET("/products", inventoryHandler.ListProducts)
		inventory.GET("/products/:id/history", inventoryHandler.ListProductHistory)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:document_id", paymentHandler.RecordPayment)
		payments.GET("", paymentHandler.ListPayments)
	}
}
