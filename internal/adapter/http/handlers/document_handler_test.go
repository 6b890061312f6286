package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"shop_manager/internal/adapter/http/handlers/mocks"
	"shop_manager/internal/domain/entities"
	"shop_manager/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newDocumentRouter(h *DocumentHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/documents", h.CreateDocument)
	r.POST("/v1/documents/:id/photos", h.UploadPhoto)
	r.GET("/v1/documents", h.ListDocuments)
	r.GET("/v1/documents/:id", h.GetDocument)
	r.PUT("/v1/documents/:id", h.UpdateDocument)
	r.PATCH("/v1/documents/:id/convert", h.ConvertDocument)
	return r
}

func doJSON(r *gin.Engine, method, path, body string, companyID string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if companyID != "" {
		req.Header.Set("X-Company-ID", companyID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDocumentHandler_UpdateDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing company header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := newDocumentRouter(NewDocumentHandler(uc))

		w := doJSON(r, http.MethodPut, "/v1/documents/doc-1", `{"header":{}}`, "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := newDocumentRouter(NewDocumentHandler(uc))

		w := doJSON(r, http.MethodPut, "/v1/documents/doc-1", "{", "1")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found maps to 404 Invoice not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := newDocumentRouter(NewDocumentHandler(uc))

		uc.EXPECT().Update(gomock.Any(), uint(1), gomock.Any()).Return(usecase.ErrDocumentNotFound)

		w := doJSON(r, http.MethodPut, "/v1/documents/doc-1", `{"header":{"title":"x"}}`, "1")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "Invoice not found" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("internal error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := newDocumentRouter(NewDocumentHandler(uc))

		uc.EXPECT().Update(gomock.Any(), uint(1), gomock.Any()).Return(errors.New("db"))

		w := doJSON(r, http.MethodPut, "/v1/documents/doc-1", `{"header":{}}`, "1")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := newDocumentRouter(NewDocumentHandler(uc))

		uc.EXPECT().Update(gomock.Any(), uint(1), gomock.Any()).DoAndReturn(
			func(_ interface{}, _ uint, in usecase.UpdateDocumentInput) error {
				if in.ID != "doc-1" || in.Header.Title != "Brake job" {
					t.Fatalf("unexpected input: %+v", in)
				}
				if len(in.Tasks) != 1 || in.Tasks[0].Text != "Fix brakes:replace pads" {
					t.Fatalf("unexpected tasks: %+v", in.Tasks)
				}
				return nil
			},
		)

		payload := `{"header":{"title":"Brake job"},"photos":["a.jpg"],"tasks":[{"task":"Fix brakes:replace pads"}]}`
		w := doJSON(r, http.MethodPut, "/v1/documents/doc-1", payload, "1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["type"] != "success" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestDocumentHandler_ConvertDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := newDocumentRouter(NewDocumentHandler(uc))

		uc.EXPECT().Convert(gomock.Any(), uint(1), "doc-1").Return(entities.Document{}, usecase.ErrDocumentNotFound)

		w := doJSON(r, http.MethodPatch, "/v1/documents/doc-1/convert", "", "1")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success reports Invoice converted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := newDocumentRouter(NewDocumentHandler(uc))

		uc.EXPECT().Convert(gomock.Any(), uint(1), "doc-1").Return(
			entities.Document{ID: "doc-1", Type: entities.DocumentTypeInvoice}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/documents/doc-1/convert", "", "1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["type"] != "success" || body["message"] != "Invoice converted" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		data, _ := body["data"].(map[string]any)
		if data == nil || data["type"] != "Invoice" {
			t.Fatalf("unexpected data: %s", w.Body.String())
		}
	})
}

func TestDocumentHandler_CreateDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("id is required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := newDocumentRouter(NewDocumentHandler(uc))

		w := doJSON(r, http.MethodPost, "/v1/documents", `{"header":{"title":"x"}}`, "1")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := newDocumentRouter(NewDocumentHandler(uc))

		uc.EXPECT().Create(gomock.Any(), uint(1), gomock.Any()).Return(
			entities.Document{ID: "doc-1", Type: entities.DocumentTypeEstimate, Title: "Brake job"}, nil)

		w := doJSON(r, http.MethodPost, "/v1/documents", `{"id":"doc-1","header":{"title":"Brake job"}}`, "1")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestDocumentHandler_UploadPhoto(t *testing.T) {
	gin.SetMode(gin.TestMode)

	multipartBody := func(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
		t.Helper()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, err := mw.CreateFormFile(field, filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write(content); err != nil {
			t.Fatalf("write form file: %v", err)
		}
		_ = mw.Close()
		return &buf, mw.FormDataContentType()
	}

	t.Run("missing file field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := newDocumentRouter(NewDocumentHandler(uc))

		buf, contentType := multipartBody(t, "attachment", "x.jpg", []byte("img"))
		req := httptest.NewRequest(http.MethodPost, "/v1/documents/doc-1/photos", buf)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("X-Company-ID", "1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := newDocumentRouter(NewDocumentHandler(uc))

		uc.EXPECT().UploadPhoto(gomock.Any(), ".jpg", []byte("img")).Return("abc123.jpg", nil)

		buf, contentType := multipartBody(t, "photo", "front-bumper.jpg", []byte("img"))
		req := httptest.NewRequest(http.MethodPost, "/v1/documents/doc-1/photos", buf)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("X-Company-ID", "1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		data, _ := body["data"].(map[string]any)
		if data == nil || data["photo"] != "abc123.jpg" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestDocumentHandler_GetDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := newDocumentRouter(NewDocumentHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), uint(1), "doc-1").Return(
			entities.Document{ID: "doc-1", Type: entities.DocumentTypeEstimate}, nil)

		w := doJSON(r, http.MethodGet, "/v1/documents/doc-1", "", "1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "doc-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := newDocumentRouter(NewDocumentHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), uint(1), "missing").Return(entities.Document{}, usecase.ErrDocumentNotFound)

		w := doJSON(r, http.MethodGet, "/v1/documents/missing", "", "1")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestDocumentHandler_ListDocuments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDocumentUseCase(ctrl)
	r := newDocumentRouter(NewDocumentHandler(uc))

	uc.EXPECT().List(gomock.Any(), uint(1)).Return([]entities.Document{
		{ID: "doc-1", Type: entities.DocumentTypeEstimate},
		{ID: "doc-2", Type: entities.DocumentTypeInvoice},
	}, nil)

	w := doJSON(r, http.MethodGet, "/v1/documents", "", "1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if len(body) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(body))
	}
}
