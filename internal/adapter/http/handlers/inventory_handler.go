package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "shop_manager/internal/adapter/http/dto/request"
	response "shop_manager/internal/adapter/http/dto/response"
	"shop_manager/internal/usecase"
	"shop_manager/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidProductPayload = pkg.NewDomainErrorSimple("INVALID_PRODUCT_INPUT", "Invalid product payload", http.StatusBadRequest)

// InventoryHandler handles HTTP requests for catalog products and the stock
// ledger.
type InventoryHandler struct {
	usecase usecase.IInventoryUseCase
}

func NewInventoryHandler(uc usecase.IInventoryUseCase) *InventoryHandler {
	return &InventoryHandler{usecase: uc}
}

// CreateProduct creates a catalog product and its opening Purchase ledger
// entry.
func (h *InventoryHandler) CreateProduct(c *gin.Context) {
	companyID, ok := companyIDFromRequest(c)
	if !ok {
		return
	}

	var payload request.CreateProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	product, err := h.usecase.CreateProduct(c.Request.Context(), companyID, payload.ToInput())
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.SuccessData(response.FromProduct(product)))
}

func (h *InventoryHandler) ListProducts(c *gin.Context) {
	companyID, ok := companyIDFromRequest(c)
	if !ok {
		return
	}

	products, err := h.usecase.ListProducts(c.Request.Context(), companyID)
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProducts(products))
}

// ListProductHistory returns the ledger for one product, newest first.
func (h *InventoryHandler) ListProductHistory(c *gin.Context) {
	companyID, ok := companyIDFromRequest(c)
	if !ok {
		return
	}

	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	history, err := h.usecase.ListHistory(c.Request.Context(), companyID, uint(productID))
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProductHistories(history))
}

func mapInventoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
