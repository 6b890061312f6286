package handlers

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"

	request "shop_manager/internal/adapter/http/dto/request"
	response "shop_manager/internal/adapter/http/dto/response"
	"shop_manager/internal/usecase"
	"shop_manager/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidDocumentPayload = pkg.NewDomainErrorSimple("INVALID_DOCUMENT_INPUT", "Invalid document payload", http.StatusBadRequest)

// DocumentHandler handles HTTP requests for estimates and invoices.
type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

// CreateDocument creates a new estimate or invoice with its photos and line
// items.
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	companyID, ok := companyIDFromRequest(c)
	if !ok {
		return
	}

	var payload request.CreateDocumentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDocumentPayload.HTTPStatus, errInvalidDocumentPayload.ToHTTPError())
		return
	}

	doc, err := h.usecase.Create(c.Request.Context(), companyID, payload.ToInput())
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.SuccessData(response.FromDocument(doc)))
}

func (h *DocumentHandler) GetDocument(c *gin.Context) {
	companyID, ok := companyIDFromRequest(c)
	if !ok {
		return
	}

	doc, err := h.usecase.GetByID(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDocument(doc))
}

func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	companyID, ok := companyIDFromRequest(c)
	if !ok {
		return
	}

	docs, err := h.usecase.List(c.Request.Context(), companyID)
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDocuments(docs))
}

// UpdateDocument replaces the document wholesale: the full header plus the
// exact incoming set of photos, line items and tasks.
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	companyID, ok := companyIDFromRequest(c)
	if !ok {
		return
	}

	var payload request.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDocumentPayload.HTTPStatus, errInvalidDocumentPayload.ToHTTPError())
		return
	}

	if err := h.usecase.Update(c.Request.Context(), companyID, payload.ToInput(c.Param("id"))); err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.Success())
}

// UploadPhoto stores a photo file and returns its generated name. The name
// goes into the photos array of a later document update; until then the file
// is merely parked, so the :id route param is not consulted here.
func (h *DocumentHandler) UploadPhoto(c *gin.Context) {
	if _, ok := companyIDFromRequest(c); !ok {
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(errInvalidDocumentPayload.HTTPStatus, errInvalidDocumentPayload.ToHTTPError())
		return
	}
	src, err := file.Open()
	if err != nil {
		c.JSON(errInvalidDocumentPayload.HTTPStatus, errInvalidDocumentPayload.ToHTTPError())
		return
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(errInvalidDocumentPayload.HTTPStatus, errInvalidDocumentPayload.ToHTTPError())
		return
	}

	name, err := h.usecase.UploadPhoto(c.Request.Context(), filepath.Ext(file.Filename), data)
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.SuccessData(response.PhotoResponse{Photo: name}))
}

// ConvertDocument toggles Estimate<->Invoice and commits the stock impact.
func (h *DocumentHandler) ConvertDocument(c *gin.Context) {
	companyID, ok := companyIDFromRequest(c)
	if !ok {
		return
	}

	doc, err := h.usecase.Convert(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res := response.SuccessMessage("Invoice converted")
	res.Data = response.FromDocument(doc)
	c.JSON(http.StatusOK, res)
}

func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDocumentID), errors.Is(err, usecase.ErrEmptyPhotoUpload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
