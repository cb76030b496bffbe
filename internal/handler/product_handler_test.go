package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mwell-store/internal/model"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductHandler_GetAll(t *testing.T) {
	logger := zerolog.Nop()

	testProducts := []model.Product{
		{ID: "mv-001", Name: "Multivitamins + Iron", Price: 959, Category: "Vitamins", CreatedAt: time.Now()},
		{ID: "mc-002", Name: "Men's Care Pack", Price: 1199, Category: "Wellness", CreatedAt: time.Now()},
	}

	tests := []struct {
		name           string
		queryParams    string
		mockReturn     []model.Product
		mockError      error
		expectedStatus int
		expectService  bool
		limit          int
		offset         int
	}{
		{
			name:           "Success with default pagination",
			queryParams:    "",
			mockReturn:     testProducts,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Success with custom pagination",
			queryParams:    "?limit=5&offset=10",
			mockReturn:     testProducts,
			expectedStatus: http.StatusOK,
			expectService:  true,
			limit:          5,
			offset:         10,
		},
		{
			name:           "Invalid limit parameter",
			queryParams:    "?limit=invalid",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid offset parameter",
			queryParams:    "?offset=invalid",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Service error",
			queryParams:    "",
			mockError:      errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			handler := NewProductHandler(mockService, logger)

			if tt.expectService {
				mockService.On("GetAll", mock.Anything, tt.limit, tt.offset).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/products"+tt.queryParams, nil)
			w := httptest.NewRecorder()

			handler.GetAll(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()

	testProduct := &model.Product{ID: "mv-001", Name: "Multivitamins + Iron", Price: 959, Category: "Vitamins"}

	tests := []struct {
		name           string
		productID      string
		mockReturn     *model.Product
		mockError      error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Success",
			productID:      "mv-001",
			mockReturn:     testProduct,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Product not found",
			productID:      "zz-999",
			mockError:      model.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
			expectedCode:   model.ErrCodeProductNotFound,
		},
		{
			name:           "Unexpected error is opaque",
			productID:      "mv-001",
			mockError:      errors.New("connection reset"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   model.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			handler := NewProductHandler(mockService, logger)
			mockService.On("GetByID", mock.Anything, tt.productID).Return(tt.mockReturn, tt.mockError)

			req := httptest.NewRequest(http.MethodGet, "/api/products/"+tt.productID, nil)
			req = mux.SetURLVars(req, map[string]string{"id": tt.productID})
			w := httptest.NewRecorder()

			handler.GetByID(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				var body model.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedCode, body.Error)
				assert.NotContains(t, body.Message, "connection reset")
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		body           string
		mockReturn     *model.Product
		mockError      error
		expectService  bool
		expectedStatus int
		expectedField  string
	}{
		{
			name:           "Created",
			body:           `{"id":"bp-003","name":"Blood Pressure Monitor","category":"Devices","price":2499}`,
			mockReturn:     &model.Product{ID: "bp-003", Name: "Blood Pressure Monitor", Price: 2499},
			expectService:  true,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Malformed JSON",
			body:           `{"id":`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Validation error carries field",
			body:           `{"id":"bp-003","category":"Devices","price":2499}`,
			mockError:      model.NewValidationError("name", "Product name is required"),
			expectService:  true,
			expectedStatus: http.StatusBadRequest,
			expectedField:  "name",
		},
		{
			name:           "Duplicate product",
			body:           `{"id":"mv-001","name":"Duplicate","category":"Vitamins","price":1}`,
			mockError:      model.ErrProductExists,
			expectService:  true,
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			handler := NewProductHandler(mockService, logger)
			if tt.expectService {
				mockService.On("Create", mock.Anything, mock.AnythingOfType("*model.ProductRequest")).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.Create(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedField != "" {
				var body model.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedField, body.Field)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_UpdateAndDelete(t *testing.T) {
	logger := zerolog.Nop()
	mockService := new(MockProductService)
	handler := NewProductHandler(mockService, logger)

	mockService.On("Update", mock.Anything, "mv-001", mock.MatchedBy(func(r *model.ProductRequest) bool {
		return r.Price == 899
	})).Return(&model.Product{ID: "mv-001", Price: 899}, nil)
	mockService.On("Delete", mock.Anything, "mv-001").Return(nil)
	mockService.On("Delete", mock.Anything, "mc-002").Return(model.ErrProductInUse)

	req := httptest.NewRequest(http.MethodPut, "/api/products/mv-001",
		strings.NewReader(`{"id":"mv-001","name":"Multivitamins + Iron","category":"Vitamins","price":899}`))
	req = mux.SetURLVars(req, map[string]string{"id": "mv-001"})
	w := httptest.NewRecorder()
	handler.Update(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/api/products/mv-001", nil), map[string]string{"id": "mv-001"})
	w = httptest.NewRecorder()
	handler.Delete(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	req = mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/api/products/mc-002", nil), map[string]string{"id": "mc-002"})
	w = httptest.NewRecorder()
	handler.Delete(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)

	mockService.AssertExpectations(t)
}
